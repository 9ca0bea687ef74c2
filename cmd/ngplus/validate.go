package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doomforge/ngplus/internal/entities/loadout"
	"github.com/doomforge/ngplus/internal/errors"
	"github.com/doomforge/ngplus/internal/preset"
	loadoutsvc "github.com/doomforge/ngplus/internal/services/loadout"
)

var validatePresetPath string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a preset without writing anything",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validatePresetPath, "preset", "p", "", "preset JSON file")
	_ = validateCmd.MarkFlagRequired("preset")
}

func runValidate(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	p, err := preset.Load(validatePresetPath)
	if err != nil {
		return err
	}

	sel := loadout.NewSelection()
	if err := p.Apply(a.catalog, sel); err != nil {
		return err
	}

	created, err := a.service.CreateDraft(ctx, &loadoutsvc.CreateDraftInput{InitialSelection: sel})
	if err != nil {
		return err
	}

	result, err := a.service.ValidateDraft(ctx, &loadoutsvc.ValidateDraftInput{DraftID: created.Draft.ID})
	if err != nil {
		return err
	}

	if !result.IsValid {
		for _, issue := range result.Errors {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", issue.Code, issue.Message)
		}
		return errors.InvalidArgumentf("preset is invalid (%d problem(s))", len(result.Errors))
	}

	fmt.Fprintln(cmd.OutOrStdout(), "preset is valid")
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doomforge/ngplus/internal/entities/loadout"
	"github.com/doomforge/ngplus/internal/preset"
	loadoutsvc "github.com/doomforge/ngplus/internal/services/loadout"
)

var (
	generatePresetPath string
	generateOutputDir  string
	generateName       string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build the mod archive from a preset",
	Long: `Build a starting loadout from a preset file, validate it, and write the
mod archive. Without --out the archive lands in the detected install's Mods
directory.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generatePresetPath, "preset", "p", "", "preset JSON file (defaults to the base loadout)")
	generateCmd.Flags().StringVar(&generateOutputDir, "out", "", "output directory (defaults to <install>/Mods)")
	generateCmd.Flags().StringVar(&generateName, "name", "", "archive name without extension")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	sel := loadout.NewSelection()
	if generatePresetPath != "" {
		p, err := preset.Load(generatePresetPath)
		if err != nil {
			return err
		}
		if err := p.Apply(a.catalog, sel); err != nil {
			return err
		}
	}

	created, err := a.service.CreateDraft(ctx, &loadoutsvc.CreateDraftInput{InitialSelection: sel})
	if err != nil {
		return err
	}

	name := generateName
	if name == "" {
		name = a.cfg.ModName
	}

	generated, err := a.service.GenerateMod(ctx, &loadoutsvc.GenerateModInput{
		DraftID:   created.Draft.ID,
		OutputDir: generateOutputDir,
		Name:      name,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), generated.ArchivePath)
	return nil
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/doomforge/ngplus/internal/preset"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the preset JSON schema",
	RunE:  runSchema,
}

func runSchema(cmd *cobra.Command, args []string) error {
	data, err := preset.Schema()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

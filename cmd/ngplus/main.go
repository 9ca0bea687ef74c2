// Package main is the entry point for the ngplus CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ngplus",
	Short: "DOOM (2016) custom starting loadout builder",
	Long: `ngplus builds a custom starting loadout for DOOM (2016) and packages it
as a mod archive the game's mod loader picks up from the Mods directory.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(schemaCmd)
}

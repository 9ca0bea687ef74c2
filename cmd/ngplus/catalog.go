package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/doomforge/ngplus/internal/catalog"
	"github.com/doomforge/ngplus/internal/errors"
)

var catalogKinds = map[string]catalog.Kind{
	"argent":    catalog.KindArgentPerk,
	"praetor":   catalog.KindPraetorPerk,
	"equipment": catalog.KindEquipment,
	"weapons":   catalog.KindWeapon,
	"mods":      catalog.KindWeaponMod,
	"ammo":      catalog.KindAmmo,
	"runes":     catalog.KindRune,
}

var catalogCmd = &cobra.Command{
	Use:   "catalog [kind]",
	Short: "List catalog entries",
	Long: `List the known item identifiers, optionally filtered by kind:
argent, praetor, equipment, weapons, mods, ammo, runes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cat := catalog.New()

	entries := cat.All()
	if len(args) == 1 {
		kind, ok := catalogKinds[args[0]]
		if !ok {
			return errors.InvalidArgumentf("unknown kind %q; one of %s", args[0], strings.Join(kindNames(), ", "))
		}
		entries = cat.ByKind(kind)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tNAME\tPATH")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.ID, e.Kind, e.Name, e.Path)
	}
	return w.Flush()
}

func kindNames() []string {
	names := make([]string, 0, len(catalogKinds))
	for name := range catalogKinds {
		names = append(names, name)
	}
	return names
}

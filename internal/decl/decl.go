// Package decl implements the loadout validation/serialization core.
//
// Serialize turns a vetted Selection into the ordered key/value items the
// game's devInvLoadout decl format expects; Render emits the decl text.
// The package is pure: no I/O, no partial output on validation failure.
package decl

import (
	"fmt"
	"strconv"
	"strings"
)

// BaseFileName is the root loadout decl every level decl inherits from
const BaseFileName = "base.decl;devInvLoadout"

// Field is a single rendered decl assignment
type Field struct {
	Key   string
	Value string // rendered form: strings quoted, bools and ints bare
}

// Item is one startingInventory entry, fields in emission order
type Item struct {
	Fields []Field
}

// Loadout is the serialized starting inventory, items in emission order
type Loadout struct {
	Items []Item
}

func stringField(key, value string) Field {
	return Field{Key: key, Value: strconv.Quote(value)}
}

func boolField(key string, value bool) Field {
	return Field{Key: key, Value: strconv.FormatBool(value)}
}

func intField(key string, value int) Field {
	return Field{Key: key, Value: strconv.Itoa(value)}
}

const indent = "    "

// Render produces the base decl file contents. Layout is byte-compatible
// with the files the game's modding tools consume.
func (l *Loadout) Render() string {
	var b strings.Builder

	b.WriteString("{\n" + indent)
	b.WriteString("edit = {\n" + indent + indent + "startingInventory = {")
	fmt.Fprintf(&b, "\n%snum = %d;", indent+indent+indent, len(l.Items))

	for i, item := range l.Items {
		fmt.Fprintf(&b, "\n%sitem[%d] = {", indent+indent+indent, i)
		for _, f := range item.Fields {
			fmt.Fprintf(&b, "\n%s%s = %s;", indent+indent+indent+indent, f.Key, f.Value)
		}
		b.WriteString("\n" + indent + indent + indent + "}")
	}

	b.WriteString("\n" + indent + indent + "}")
	b.WriteString("\n" + indent + "}")
	b.WriteString("\n}")
	return b.String()
}

// LevelFile names a per-level decl that inherits an earlier level's
// inventory, so a mid-campaign save picks up the custom loadout.
type LevelFile struct {
	Name     string // file name inside the archive
	Inherits string // devinvloadout resource the level inherits from
}

// LevelFiles returns the known level inheritance decls
func LevelFiles() []LevelFile {
	// TODO: map the remaining campaign levels; only these two are verified
	// against the game data so far.
	return []LevelFile{
		{Name: "argent_tower.decl;devInvLoadout", Inherits: "olympia_surface_1"},
		{Name: "bfg_division.decl;devInvLoadout", Inherits: "olympia_surface_2"},
	}
}

// RenderLevel produces a level inheritance decl
func RenderLevel(inherits string) string {
	var b strings.Builder
	b.WriteString("{\n" + indent)
	fmt.Fprintf(&b, "inherit = %q;", "devinvloadout/sp/"+inherits)
	b.WriteString("\n" + indent + "edit = {")
	b.WriteString("\n" + indent + "}")
	b.WriteString("\n}")
	return b.String()
}

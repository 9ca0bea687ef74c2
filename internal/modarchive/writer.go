// Package modarchive packages a serialized loadout into the distributable
// zip archive the game's mod loader consumes.
package modarchive

//go:generate mockgen -destination=mock/mock_writer.go -package=modarchivemock github.com/doomforge/ngplus/internal/modarchive Writer

import (
	"context"

	"github.com/doomforge/ngplus/internal/decl"
)

// DefaultArchiveName is the archive base name when the caller supplies none
const DefaultArchiveName = "Custom New Game Plus"

// declDir is where the mod loader expects the loadout decls inside the zip
const declDir = "generated/decls/devinvloadout/devinvloadout/sp/"

// WriteInput defines the input for writing a mod archive
type WriteInput struct {
	Loadout *decl.Loadout
	Dir     string // destination directory, created if missing
	Name    string // archive base name without extension; defaulted when empty
}

// WriteOutput defines the output for writing a mod archive
type WriteOutput struct {
	Path string // final path of the written zip
}

// Writer writes a serialized loadout to a distributable archive.
// Implementations must never leave partial output behind on failure.
type Writer interface {
	Write(ctx context.Context, input WriteInput) (*WriteOutput, error)
}

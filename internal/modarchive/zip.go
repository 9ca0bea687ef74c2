package modarchive

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"

	"github.com/doomforge/ngplus/internal/decl"
	"github.com/doomforge/ngplus/internal/errors"
)

type zipWriter struct{}

// NewZipWriter creates a Writer backed by archive/zip
func NewZipWriter() Writer {
	return &zipWriter{}
}

func (w *zipWriter) Write(ctx context.Context, input WriteInput) (*WriteOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "archive write canceled")
	}
	if input.Loadout == nil {
		return nil, errors.InvalidArgument("loadout cannot be nil")
	}
	if input.Dir == "" {
		return nil, errors.InvalidArgument("destination directory cannot be empty")
	}

	name := input.Name
	if name == "" {
		name = DefaultArchiveName
	}

	if err := os.MkdirAll(input.Dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create destination directory %s", input.Dir)
	}

	// Stage into a temp file in the destination directory so the final
	// archive appears atomically and failures leave nothing behind.
	tmp, err := os.CreateTemp(input.Dir, "."+name+"-*.zip")
	if err != nil {
		return nil, errors.Wrap(err, "failed to stage archive")
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath) // no-op after a successful rename
	}()

	if err := writeEntries(tmp, input.Loadout); err != nil {
		_ = tmp.Close()
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to flush archive")
	}

	finalPath := filepath.Join(input.Dir, name+".zip")
	if err := os.Rename(tmpPath, finalPath); err != nil {
		return nil, errors.Wrapf(err, "failed to place archive at %s", finalPath)
	}

	return &WriteOutput{Path: finalPath}, nil
}

func writeEntries(f *os.File, l *decl.Loadout) error {
	zw := zip.NewWriter(f)

	entries := []struct {
		name string
		body string
	}{
		{name: declDir + decl.BaseFileName, body: l.Render()},
	}
	for _, lf := range decl.LevelFiles() {
		entries = append(entries, struct {
			name string
			body string
		}{name: declDir + lf.Name, body: decl.RenderLevel(lf.Inherits)})
	}

	for _, e := range entries {
		fw, err := zw.Create(e.name)
		if err != nil {
			return errors.Wrapf(err, "failed to create archive entry %s", e.name)
		}
		if _, err := fw.Write([]byte(e.body)); err != nil {
			return errors.Wrapf(err, "failed to write archive entry %s", e.name)
		}
	}

	if err := zw.Close(); err != nil {
		return errors.Wrap(err, "failed to finalize archive")
	}
	return nil
}

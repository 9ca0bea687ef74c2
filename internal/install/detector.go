// Package install locates the DOOM (2016) installation the generated mod
// archive should be dropped into.
package install

//go:generate mockgen -destination=mock/mock_detector.go -package=installmock github.com/doomforge/ngplus/internal/install Detector

import (
	"context"
	"os"
	"path/filepath"

	"github.com/doomforge/ngplus/internal/errors"
)

// ModsDirName is the directory the game's mod loader scans, relative to
// the install root
const ModsDirName = "Mods"

// Detection describes a located game installation
type Detection struct {
	InstallDir string
	ModsDir    string
}

// Detector locates the game installation
type Detector interface {
	Detect(ctx context.Context) (*Detection, error)
}

// defaultCandidates are the Steam library locations the game ships to.
// Forward slashes keep the table portable; filepath.Clean normalizes them.
var defaultCandidates = []string{
	`C:/Program Files (x86)/Steam/steamapps/common/DOOM`,
	`C:/Program Files/Steam/steamapps/common/DOOM`,
	`D:/SteamLibrary/steamapps/common/DOOM`,
}

// Config holds detector configuration
type Config struct {
	// Override skips probing entirely when set. It is trusted to exist
	// only after a stat check, same as the candidates.
	Override string
	// Candidates replaces the built-in probe list when non-empty
	Candidates []string
}

type detector struct {
	override   string
	candidates []string
}

// New creates a Detector from the given config
func New(cfg *Config) Detector {
	d := &detector{candidates: defaultCandidates}
	if cfg != nil {
		d.override = cfg.Override
		if len(cfg.Candidates) > 0 {
			d.candidates = cfg.Candidates
		}
	}
	return d
}

func (d *detector) Detect(ctx context.Context) (*Detection, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "install detection canceled")
	}

	if d.override != "" {
		if !isDir(d.override) {
			return nil, errors.NotFoundf("configured install directory %s does not exist", d.override)
		}
		return detection(d.override), nil
	}

	for _, c := range d.candidates {
		if isDir(c) {
			return detection(c), nil
		}
	}

	return nil, errors.NotFound("no game installation found; set an explicit install directory").
		WithMeta("candidates", d.candidates)
}

func detection(installDir string) *Detection {
	installDir = filepath.Clean(installDir)
	return &Detection{
		InstallDir: installDir,
		ModsDir:    filepath.Join(installDir, ModsDirName),
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

package main

import (
	"log/slog"
	"os"

	"github.com/doomforge/ngplus/internal/catalog"
	"github.com/doomforge/ngplus/internal/config"
	"github.com/doomforge/ngplus/internal/install"
	"github.com/doomforge/ngplus/internal/modarchive"
	loadoutorch "github.com/doomforge/ngplus/internal/orchestrators/loadout"
	"github.com/doomforge/ngplus/internal/pkg/clock"
	"github.com/doomforge/ngplus/internal/pkg/idgen"
	draftrepo "github.com/doomforge/ngplus/internal/repositories/draft"
	loadoutsvc "github.com/doomforge/ngplus/internal/services/loadout"
)

// app wires the full dependency stack for one CLI invocation
type app struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	service loadoutsvc.Service
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	cat := catalog.New()
	orch, err := loadoutorch.New(&loadoutorch.Config{
		DraftRepo:     draftrepo.NewInMemory(),
		Catalog:       cat,
		ArchiveWriter: modarchive.NewZipWriter(),
		Detector:      install.New(&install.Config{Override: cfg.InstallDir}),
		IDGenerator:   idgen.NewUUID("draft"),
		Clock:         clock.New(),
	})
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, catalog: cat, service: orch}, nil
}

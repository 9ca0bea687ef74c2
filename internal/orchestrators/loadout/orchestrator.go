// Package loadout implements the loadout draft orchestrator
package loadout

import (
	"context"
	"log/slog"

	"github.com/doomforge/ngplus/internal/catalog"
	"github.com/doomforge/ngplus/internal/decl"
	"github.com/doomforge/ngplus/internal/entities/loadout"
	"github.com/doomforge/ngplus/internal/errors"
	"github.com/doomforge/ngplus/internal/install"
	"github.com/doomforge/ngplus/internal/modarchive"
	"github.com/doomforge/ngplus/internal/pkg/clock"
	"github.com/doomforge/ngplus/internal/pkg/idgen"
	draftrepo "github.com/doomforge/ngplus/internal/repositories/draft"
	loadoutsvc "github.com/doomforge/ngplus/internal/services/loadout"
)

// Config holds the dependencies for the loadout orchestrator
type Config struct {
	DraftRepo     draftrepo.Repository
	Catalog       *catalog.Catalog
	ArchiveWriter modarchive.Writer
	Detector      install.Detector
	IDGenerator   idgen.Generator
	Clock         clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DraftRepo == nil {
		vb.RequiredField("DraftRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.ArchiveWriter == nil {
		vb.RequiredField("ArchiveWriter")
	}
	if c.Detector == nil {
		vb.RequiredField("Detector")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// Orchestrator implements the loadout.Service interface
type Orchestrator struct {
	draftRepo     draftrepo.Repository
	catalog       *catalog.Catalog
	archiveWriter modarchive.Writer
	detector      install.Detector
	idGen         idgen.Generator
	clock         clock.Clock
}

// New creates a new loadout orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		draftRepo:     cfg.DraftRepo,
		catalog:       cfg.Catalog,
		archiveWriter: cfg.ArchiveWriter,
		detector:      cfg.Detector,
		idGen:         cfg.IDGenerator,
		clock:         cfg.Clock,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ loadoutsvc.Service = (*Orchestrator)(nil)

// Draft lifecycle methods

// CreateDraft creates a new loadout draft with the default base inventory
func (o *Orchestrator) CreateDraft(ctx context.Context, input *loadoutsvc.CreateDraftInput) (*loadoutsvc.CreateDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sel := input.InitialSelection
	if sel == nil {
		sel = loadout.NewSelection()
	} else {
		sel = sel.Clone()
	}

	now := o.clock.Now().Unix()
	d := &loadout.Draft{
		ID:        o.idGen.Generate(),
		Selection: sel,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := o.draftRepo.Create(ctx, &draftrepo.CreateInput{Draft: d})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create draft")
	}

	slog.Info("Loadout draft created", "draft_id", d.ID)

	return &loadoutsvc.CreateDraftOutput{Draft: created.Draft}, nil
}

// GetDraft retrieves a draft by ID
func (o *Orchestrator) GetDraft(ctx context.Context, input *loadoutsvc.GetDraftInput) (*loadoutsvc.GetDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	d, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	return &loadoutsvc.GetDraftOutput{Draft: d}, nil
}

// DeleteDraft removes a draft
func (o *Orchestrator) DeleteDraft(ctx context.Context, input *loadoutsvc.DeleteDraftInput) (*loadoutsvc.DeleteDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", input.DraftID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.draftRepo.Delete(ctx, &draftrepo.DeleteInput{ID: input.DraftID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete draft")
	}

	return &loadoutsvc.DeleteDraftOutput{Success: out.Success}, nil
}

// Section update methods

// SetArgentLevel sets one Argent category's upgrade level on a draft. The
// applied level may be clamped below the request so a mandatory upgrade
// slot stays open.
func (o *Orchestrator) SetArgentLevel(ctx context.Context, input *loadoutsvc.SetArgentLevelInput) (*loadoutsvc.SetArgentLevelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, ok := o.catalog.ArgentPerk(input.Category); !ok {
		return nil, errors.InvalidArgumentf("unknown argent category: %s", input.Category)
	}

	d, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	applied := d.Selection.SetArgentLevel(input.Category, input.Level)
	if applied != input.Level {
		slog.Info("Argent level clamped",
			"draft_id", d.ID,
			"category", input.Category,
			"requested", input.Level,
			"applied", applied,
		)
	}

	if err := o.saveDraft(ctx, d); err != nil {
		return nil, err
	}

	return &loadoutsvc.SetArgentLevelOutput{Draft: d, AppliedLevel: applied}, nil
}

// UpdateSuitUpgrades replaces the draft's praetor perk selection
func (o *Orchestrator) UpdateSuitUpgrades(ctx context.Context, input *loadoutsvc.UpdateSuitUpgradesInput) (*loadoutsvc.UpdateSuitUpgradesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if err := o.checkIDs("perkIDs", input.PerkIDs, catalog.KindPraetorPerk); err != nil {
		return nil, err
	}

	d, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	d.Selection.SuitUpgrades = toSet(input.PerkIDs)

	if err := o.saveDraft(ctx, d); err != nil {
		return nil, err
	}

	return &loadoutsvc.UpdateSuitUpgradesOutput{Draft: d}, nil
}

// UpdateEquipment replaces the draft's equipment selection
func (o *Orchestrator) UpdateEquipment(ctx context.Context, input *loadoutsvc.UpdateEquipmentInput) (*loadoutsvc.UpdateEquipmentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if err := o.checkIDs("itemIDs", input.ItemIDs, catalog.KindEquipment); err != nil {
		return nil, err
	}

	d, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	d.Selection.Equipment = toSet(input.ItemIDs)

	if err := o.saveDraft(ctx, d); err != nil {
		return nil, err
	}

	return &loadoutsvc.UpdateEquipmentOutput{Draft: d}, nil
}

// UpdateWeapons replaces the draft's weapon selection
func (o *Orchestrator) UpdateWeapons(ctx context.Context, input *loadoutsvc.UpdateWeaponsInput) (*loadoutsvc.UpdateWeaponsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if err := o.checkIDs("weaponIDs", input.WeaponIDs, catalog.KindWeapon); err != nil {
		return nil, err
	}

	d, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	d.Selection.Weapons = toSet(input.WeaponIDs)

	if err := o.saveDraft(ctx, d); err != nil {
		return nil, err
	}

	return &loadoutsvc.UpdateWeaponsOutput{Draft: d}, nil
}

// UpdateWeaponMods replaces the draft's weapon mod selection
func (o *Orchestrator) UpdateWeaponMods(ctx context.Context, input *loadoutsvc.UpdateWeaponModsInput) (*loadoutsvc.UpdateWeaponModsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if err := o.checkIDs("modIDs", input.ModIDs, catalog.KindWeaponMod); err != nil {
		return nil, err
	}

	d, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	d.Selection.WeaponMods = toSet(input.ModIDs)

	if err := o.saveDraft(ctx, d); err != nil {
		return nil, err
	}

	return &loadoutsvc.UpdateWeaponModsOutput{Draft: d}, nil
}

// UpdateRunes replaces the draft's rune selection
func (o *Orchestrator) UpdateRunes(ctx context.Context, input *loadoutsvc.UpdateRunesInput) (*loadoutsvc.UpdateRunesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	for _, r := range input.Runes {
		if _, ok := o.catalog.GetKind(r.ID, catalog.KindRune); !ok {
			vb.InvalidField("runes", "unknown rune: "+r.ID)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	d, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	runes := make(map[string]loadout.RuneState, len(input.Runes))
	for _, r := range input.Runes {
		runes[r.ID] = loadout.RuneState{
			Included:  true,
			Upgraded:  r.Upgraded,
			Permanent: r.Permanent,
		}
	}
	d.Selection.Runes = runes

	if err := o.saveDraft(ctx, d); err != nil {
		return nil, err
	}

	return &loadoutsvc.UpdateRunesOutput{Draft: d}, nil
}

// Validation methods

// ValidateDraft runs the serializer's validation without producing output
func (o *Orchestrator) ValidateDraft(ctx context.Context, input *loadoutsvc.ValidateDraftInput) (*loadoutsvc.ValidateDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	d, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	if err := decl.Validate(o.catalog, d.Selection); err != nil {
		return &loadoutsvc.ValidateDraftOutput{
			IsValid: false,
			Errors: []loadoutsvc.ValidationIssue{{
				Code:    errors.GetCode(err).String(),
				Message: err.Error(),
			}},
		}, nil
	}

	return &loadoutsvc.ValidateDraftOutput{IsValid: true}, nil
}

// Generation methods

// GenerateMod validates and serializes the draft, then writes the mod
// archive. The destination is the explicit output directory when given,
// otherwise the detected install's Mods directory. Nothing is written on
// any failure.
func (o *Orchestrator) GenerateMod(ctx context.Context, input *loadoutsvc.GenerateModInput) (*loadoutsvc.GenerateModOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	d, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	serialized, err := decl.Serialize(o.catalog, d.Selection)
	if err != nil {
		return nil, err
	}

	dir := input.OutputDir
	if dir == "" {
		detection, err := o.detector.Detect(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to locate game installation")
		}
		dir = detection.ModsDir
	}

	written, err := o.archiveWriter.Write(ctx, modarchive.WriteInput{
		Loadout: serialized,
		Dir:     dir,
		Name:    input.Name,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to write mod archive")
	}

	slog.Info("Mod archive generated",
		"draft_id", d.ID,
		"path", written.Path,
	)

	return &loadoutsvc.GenerateModOutput{ArchivePath: written.Path}, nil
}

// Internal helpers

func (o *Orchestrator) loadDraft(ctx context.Context, draftID string) (*loadout.Draft, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", draftID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.draftRepo.Get(ctx, &draftrepo.GetInput{ID: draftID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get draft")
	}

	return out.Draft, nil
}

func (o *Orchestrator) saveDraft(ctx context.Context, d *loadout.Draft) error {
	d.UpdatedAt = o.clock.Now().Unix()

	if _, err := o.draftRepo.Update(ctx, &draftrepo.UpdateInput{Draft: d}); err != nil {
		return errors.Wrap(err, "failed to update draft")
	}
	return nil
}

// checkIDs validates that every ID exists in the catalog with the expected
// kind, reporting all offenders at once
func (o *Orchestrator) checkIDs(field string, ids []string, kind catalog.Kind) error {
	vb := errors.NewValidationBuilder()
	for _, id := range ids {
		if _, ok := o.catalog.GetKind(id, kind); !ok {
			vb.InvalidField(field, "unknown "+string(kind)+": "+id)
		}
	}
	return vb.Build()
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// Package loadout defines the interface for loadout draft operations
package loadout

//go:generate mockgen -destination=mock/mock_service.go -package=loadoutmock github.com/doomforge/ngplus/internal/services/loadout Service

import (
	"context"

	"github.com/doomforge/ngplus/internal/catalog"
	"github.com/doomforge/ngplus/internal/entities/loadout"
)

// Service defines the interface for loadout draft operations
type Service interface {
	// Draft lifecycle
	CreateDraft(ctx context.Context, input *CreateDraftInput) (*CreateDraftOutput, error)
	GetDraft(ctx context.Context, input *GetDraftInput) (*GetDraftOutput, error)
	DeleteDraft(ctx context.Context, input *DeleteDraftInput) (*DeleteDraftOutput, error)

	// Section-based updates
	SetArgentLevel(ctx context.Context, input *SetArgentLevelInput) (*SetArgentLevelOutput, error)
	UpdateSuitUpgrades(ctx context.Context, input *UpdateSuitUpgradesInput) (*UpdateSuitUpgradesOutput, error)
	UpdateEquipment(ctx context.Context, input *UpdateEquipmentInput) (*UpdateEquipmentOutput, error)
	UpdateWeapons(ctx context.Context, input *UpdateWeaponsInput) (*UpdateWeaponsOutput, error)
	UpdateWeaponMods(ctx context.Context, input *UpdateWeaponModsInput) (*UpdateWeaponModsOutput, error)
	UpdateRunes(ctx context.Context, input *UpdateRunesInput) (*UpdateRunesOutput, error)

	// Validation
	ValidateDraft(ctx context.Context, input *ValidateDraftInput) (*ValidateDraftOutput, error)

	// Mod generation
	GenerateMod(ctx context.Context, input *GenerateModInput) (*GenerateModOutput, error)
}

// Draft lifecycle types

// CreateDraftInput defines the request for creating a draft
type CreateDraftInput struct {
	InitialSelection *loadout.Selection // Optional; defaults to the base loadout
}

// CreateDraftOutput defines the response for creating a draft
type CreateDraftOutput struct {
	Draft *loadout.Draft
}

// GetDraftInput defines the request for getting a draft
type GetDraftInput struct {
	DraftID string
}

// GetDraftOutput defines the response for getting a draft
type GetDraftOutput struct {
	Draft *loadout.Draft
}

// DeleteDraftInput defines the request for deleting a draft
type DeleteDraftInput struct {
	DraftID string
}

// DeleteDraftOutput defines the response for deleting a draft
type DeleteDraftOutput struct {
	Success bool
}

// Section update types

// SetArgentLevelInput defines the request for setting an argent upgrade level
type SetArgentLevelInput struct {
	DraftID  string
	Category catalog.ArgentCategory
	Level    int
}

// SetArgentLevelOutput defines the response for setting an argent upgrade
// level. AppliedLevel may be lower than requested when clamping kept the
// mandatory upgrade slot open.
type SetArgentLevelOutput struct {
	Draft        *loadout.Draft
	AppliedLevel int
}

// UpdateSuitUpgradesInput defines the request for replacing the praetor perk selection
type UpdateSuitUpgradesInput struct {
	DraftID string
	PerkIDs []string
}

// UpdateSuitUpgradesOutput defines the response for replacing the praetor perk selection
type UpdateSuitUpgradesOutput struct {
	Draft *loadout.Draft
}

// UpdateEquipmentInput defines the request for replacing the equipment selection
type UpdateEquipmentInput struct {
	DraftID string
	ItemIDs []string
}

// UpdateEquipmentOutput defines the response for replacing the equipment selection
type UpdateEquipmentOutput struct {
	Draft *loadout.Draft
}

// UpdateWeaponsInput defines the request for replacing the weapon selection
type UpdateWeaponsInput struct {
	DraftID   string
	WeaponIDs []string
}

// UpdateWeaponsOutput defines the response for replacing the weapon selection
type UpdateWeaponsOutput struct {
	Draft *loadout.Draft
}

// UpdateWeaponModsInput defines the request for replacing the weapon mod selection
type UpdateWeaponModsInput struct {
	DraftID string
	ModIDs  []string
}

// UpdateWeaponModsOutput defines the response for replacing the weapon mod selection
type UpdateWeaponModsOutput struct {
	Draft *loadout.Draft
}

// RuneSelection describes one rune's flags in an update
type RuneSelection struct {
	ID        string
	Upgraded  bool
	Permanent bool
}

// UpdateRunesInput defines the request for replacing the rune selection
type UpdateRunesInput struct {
	DraftID string
	Runes   []RuneSelection
}

// UpdateRunesOutput defines the response for replacing the rune selection
type UpdateRunesOutput struct {
	Draft *loadout.Draft
}

// Validation types

// ValidateDraftInput defines the request for validating a draft
type ValidateDraftInput struct {
	DraftID string
}

// ValidateDraftOutput defines the response for validating a draft
type ValidateDraftOutput struct {
	IsValid bool
	Errors  []ValidationIssue
}

// ValidationIssue defines one validation failure
type ValidationIssue struct {
	Code    string
	Message string
}

// Generation types

// GenerateModInput defines the request for generating the mod archive
type GenerateModInput struct {
	DraftID   string
	OutputDir string // Optional; detected install's Mods directory when empty
	Name      string // Optional archive name
}

// GenerateModOutput defines the response for generating the mod archive
type GenerateModOutput struct {
	ArchivePath string
}

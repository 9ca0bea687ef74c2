// Package preset reads loadout selections from JSON files so the CLI can
// drive a full draft without interactive input.
package preset

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/doomforge/ngplus/internal/catalog"
	"github.com/doomforge/ngplus/internal/entities/loadout"
	"github.com/doomforge/ngplus/internal/errors"
)

// Rune selects one rune with its flags
type Rune struct {
	ID        string `json:"id" jsonschema:"required,description=Rune identifier from the catalog"`
	Upgraded  bool   `json:"upgraded,omitempty" jsonschema:"description=Apply the rune's upgrades at game start"`
	Permanent bool   `json:"permanent,omitempty" jsonschema:"description=Permanently equip without consuming a rune slot"`
}

// Preset is the JSON document describing a complete selection. Omitted
// sections keep their defaults.
type Preset struct {
	ArgentLevels map[string]int `json:"argentLevels,omitempty" jsonschema:"description=Argent Cell levels per category (health/armor/ammo) from 0 to 4"`
	SuitUpgrades []string       `json:"suitUpgrades,omitempty" jsonschema:"description=Praetor suit perk identifiers"`
	Equipment    []string       `json:"equipment,omitempty" jsonschema:"description=Equipment item identifiers"`
	Weapons      []string       `json:"weapons,omitempty" jsonschema:"description=Weapon identifiers (fists and pistol are always included)"`
	WeaponMods   []string       `json:"weaponMods,omitempty" jsonschema:"description=Weapon mod and mod upgrade identifiers"`
	Runes        []Rune         `json:"runes,omitempty" jsonschema:"description=Rune selections"`
}

// Load reads and decodes a preset file. Unknown fields are rejected so a
// typoed section name fails loudly instead of silently dropping items.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read preset %s", path)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	p := &Preset{}
	if err := dec.Decode(p); err != nil {
		return nil, errors.InvalidArgumentf("malformed preset %s: %v", path, err)
	}
	return p, nil
}

// Apply writes the preset onto a selection after checking every identifier
// against the catalog. Argent levels are applied as-is; range violations
// fail here, the overfill rule is the serializer's call. All problems are
// reported at once.
func (p *Preset) Apply(cat *catalog.Catalog, sel *loadout.Selection) error {
	if sel == nil {
		return errors.InvalidArgument("selection is required")
	}

	vb := errors.NewValidationBuilder()

	known := make(map[string]catalog.ArgentCategory)
	for _, c := range catalog.ArgentCategories() {
		known[string(c)] = c
	}
	for name, level := range p.ArgentLevels {
		if _, ok := known[name]; !ok {
			vb.InvalidField("argentLevels", "unknown category: "+name)
			continue
		}
		if level < 0 || level > catalog.ArgentMaxLevel {
			vb.Fieldf("argentLevels", "%s level %d outside 0..%d", name, level, catalog.ArgentMaxLevel)
		}
	}
	checkIDs(cat, vb, "suitUpgrades", p.SuitUpgrades, catalog.KindPraetorPerk)
	checkIDs(cat, vb, "equipment", p.Equipment, catalog.KindEquipment)
	checkIDs(cat, vb, "weapons", p.Weapons, catalog.KindWeapon)
	checkIDs(cat, vb, "weaponMods", p.WeaponMods, catalog.KindWeaponMod)
	for _, r := range p.Runes {
		if _, ok := cat.GetKind(r.ID, catalog.KindRune); !ok {
			vb.InvalidField("runes", "unknown rune: "+r.ID)
		}
	}

	if err := vb.Build(); err != nil {
		return err
	}

	for name, level := range p.ArgentLevels {
		sel.ArgentLevels[known[name]] = level
	}
	for _, id := range p.SuitUpgrades {
		sel.SetSuitUpgrade(id, true)
	}
	for _, id := range p.Equipment {
		sel.SetEquipment(id, true)
	}
	for _, id := range p.Weapons {
		sel.SetWeapon(id, true)
	}
	for _, id := range p.WeaponMods {
		sel.SetWeaponMod(id, true)
	}
	for _, r := range p.Runes {
		sel.SetRuneIncluded(r.ID, true)
		sel.SetRuneUpgraded(r.ID, r.Upgraded)
		sel.SetRunePermanent(r.ID, r.Permanent)
	}

	return nil
}

func checkIDs(cat *catalog.Catalog, vb *errors.ValidationBuilder, field string, ids []string, kind catalog.Kind) {
	for _, id := range ids {
		if _, ok := cat.GetKind(id, kind); !ok {
			vb.InvalidField(field, "unknown "+string(kind)+": "+id)
		}
	}
}

// Package loadout implements the starting-inventory selection entities.
//
// A Selection is a data-only value object owned by a single session: built
// fresh, mutated by the UI layer, consumed once by the serializer, then
// discarded. Serialization and validation live in internal/decl.
package loadout

import "github.com/doomforge/ngplus/internal/catalog"

// RuneState tracks the per-rune flags of a selection.
// Upgraded is only meaningful while Included is set; Permanent implies
// Included (a permanently equipped rune is necessarily in the loadout).
type RuneState struct {
	Included  bool `json:"included"`
	Upgraded  bool `json:"upgraded"`
	Permanent bool `json:"permanent"`
}

// Selection is one session's chosen starting inventory.
type Selection struct {
	// ArgentLevels always carries all three categories, 0..ArgentMaxLevel.
	// Level 0 entries are still serialized; the game expects the perk rows.
	ArgentLevels map[catalog.ArgentCategory]int `json:"argent_levels"`

	SuitUpgrades map[string]bool `json:"suit_upgrades"`
	Equipment    map[string]bool `json:"equipment"`
	Weapons      map[string]bool `json:"weapons"`

	// WeaponMods holds base mods and upgrades alike. An upgrade's inclusion
	// is independent of its base mod's: the game applies upgrade perks even
	// when the mod itself is absent.
	WeaponMods map[string]bool `json:"weapon_mods"`

	Runes map[string]RuneState `json:"runes"`
}

// NewSelection returns the default starting selection: argent levels at
// zero and nothing extra chosen. Fists and pistol are implicit and never
// tracked here.
func NewSelection() *Selection {
	return &Selection{
		ArgentLevels: map[catalog.ArgentCategory]int{
			catalog.ArgentHealth: 0,
			catalog.ArgentArmor:  0,
			catalog.ArgentAmmo:   0,
		},
		SuitUpgrades: make(map[string]bool),
		Equipment:    make(map[string]bool),
		Weapons:      make(map[string]bool),
		WeaponMods:   make(map[string]bool),
		Runes:        make(map[string]RuneState),
	}
}

// SetArgentLevel sets the category's upgrade level, clamped to the valid
// range. When the other two categories are already maxed, the level is
// clamped one below max so a mandatory upgrade slot stays open. Returns
// the level actually applied, for the caller to echo back.
func (s *Selection) SetArgentLevel(cat catalog.ArgentCategory, level int) int {
	if level < 0 {
		level = 0
	}
	if level > catalog.ArgentMaxLevel {
		level = catalog.ArgentMaxLevel
	}
	if level == catalog.ArgentMaxLevel && s.maxedCategoriesExcept(cat) >= 2 {
		level = catalog.ArgentMaxLevel - 1
	}
	s.ArgentLevels[cat] = level
	return level
}

func (s *Selection) maxedCategoriesExcept(cat catalog.ArgentCategory) int {
	n := 0
	for c, lvl := range s.ArgentLevels {
		if c != cat && lvl >= catalog.ArgentMaxLevel {
			n++
		}
	}
	return n
}

// AllArgentMaxed reports whether every argent category is at max level
func (s *Selection) AllArgentMaxed() bool {
	for _, c := range catalog.ArgentCategories() {
		if s.ArgentLevels[c] < catalog.ArgentMaxLevel {
			return false
		}
	}
	return true
}

// SetSuitUpgrade toggles a praetor suit perk
func (s *Selection) SetSuitUpgrade(id string, included bool) {
	setMember(s.SuitUpgrades, id, included)
}

// SetEquipment toggles an equipment item
func (s *Selection) SetEquipment(id string, included bool) {
	setMember(s.Equipment, id, included)
}

// SetWeapon toggles a weapon
func (s *Selection) SetWeapon(id string, included bool) {
	setMember(s.Weapons, id, included)
}

// SetWeaponMod toggles a weapon mod or mod upgrade
func (s *Selection) SetWeaponMod(id string, included bool) {
	setMember(s.WeaponMods, id, included)
}

func setMember(set map[string]bool, id string, included bool) {
	if included {
		set[id] = true
	} else {
		delete(set, id)
	}
}

// SetRuneIncluded toggles a rune's presence in the loadout. Removing a
// rune clears its other flags; a rune upgrade has no meaning on its own.
func (s *Selection) SetRuneIncluded(id string, included bool) {
	if !included {
		delete(s.Runes, id)
		return
	}
	st := s.Runes[id]
	st.Included = true
	s.Runes[id] = st
}

// SetRuneUpgraded flags a rune's upgrades for application at game start
func (s *Selection) SetRuneUpgraded(id string, upgraded bool) {
	st := s.Runes[id]
	st.Upgraded = upgraded
	s.Runes[id] = st
}

// SetRunePermanent marks a rune as permanently equipped without consuming
// a rune slot. Setting it pulls the rune into the loadout.
func (s *Selection) SetRunePermanent(id string, permanent bool) {
	st := s.Runes[id]
	st.Permanent = permanent
	if permanent {
		st.Included = true
	}
	s.Runes[id] = st
}

// Clone returns an independent deep copy of the selection
func (s *Selection) Clone() *Selection {
	if s == nil {
		return nil
	}
	out := &Selection{
		ArgentLevels: make(map[catalog.ArgentCategory]int, len(s.ArgentLevels)),
		SuitUpgrades: make(map[string]bool, len(s.SuitUpgrades)),
		Equipment:    make(map[string]bool, len(s.Equipment)),
		Weapons:      make(map[string]bool, len(s.Weapons)),
		WeaponMods:   make(map[string]bool, len(s.WeaponMods)),
		Runes:        make(map[string]RuneState, len(s.Runes)),
	}
	for k, v := range s.ArgentLevels {
		out.ArgentLevels[k] = v
	}
	for k, v := range s.SuitUpgrades {
		out.SuitUpgrades[k] = v
	}
	for k, v := range s.Equipment {
		out.Equipment[k] = v
	}
	for k, v := range s.Weapons {
		out.Weapons[k] = v
	}
	for k, v := range s.WeaponMods {
		out.WeaponMods[k] = v
	}
	for k, v := range s.Runes {
		out.Runes[k] = v
	}
	return out
}

// Draft wraps a Selection with session bookkeeping.
type Draft struct {
	ID        string     `json:"id"`
	Selection *Selection `json:"selection"`
	CreatedAt int64      `json:"created_at"`
	UpdatedAt int64      `json:"updated_at"`
}

// Clone returns an independent deep copy of the draft
func (d *Draft) Clone() *Draft {
	if d == nil {
		return nil
	}
	return &Draft{
		ID:        d.ID,
		Selection: d.Selection.Clone(),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// Package catalog holds the closed catalog of DOOM (2016) inventory items.
//
// Every identifier a selection may reference lives here: Argent Cell
// capacity perks, Praetor suit perks, runes, equipment, weapons, weapon
// mods and their upgrades, and ammo pools. Entries carry the game decl
// resource paths verbatim, including id Software's "enviroment" typo.
package catalog

// Kind classifies a catalog entry
type Kind string

// Entry kinds, in serialization order
const (
	KindArgentPerk  Kind = "argent_perk"
	KindPraetorPerk Kind = "praetor_perk"
	KindEquipment   Kind = "equipment"
	KindWeapon      Kind = "weapon"
	KindWeaponMod   Kind = "weapon_mod"
	KindAmmo        Kind = "ammo"
	KindRune        Kind = "rune"
)

// ArgentCategory identifies one of the three Argent Cell capacity pools
type ArgentCategory string

// Argent Cell categories
const (
	ArgentHealth ArgentCategory = "health"
	ArgentArmor  ArgentCategory = "armor"
	ArgentAmmo   ArgentCategory = "ammo"
)

// ArgentMaxLevel is the highest upgrade level of a single Argent category.
// Consuming all three categories to this level leaves no upgrade slot open
// for mandatory game progression.
const ArgentMaxLevel = 4

// Entry describes a single catalog item. Only the fields relevant to the
// entry's Kind are populated.
type Entry struct {
	ID          string
	Kind        Kind
	Name        string
	Path        string // decl resource path, unquoted
	Description string

	// Argent perks
	ApplyAfterLoadout bool

	// Praetor perks
	Category   string
	Unlockable string // research project path, when gated

	// Runes
	UpgradeDescription string

	// Equipment and weapons
	DefaultEquip   bool
	EquipReserve   bool
	AlwaysIncluded bool   // fists and pistol are in every loadout
	AmmoID         string // consumed ammo pool, empty when none

	// Weapon mods and their upgrades
	WeaponID  string
	ModID     string // owning base mod; empty for base mods and slotless upgrades
	IsBaseMod bool

	// Ammo
	FullCount int
}

// Catalog is an immutable, ordered view over the compiled-in entries
type Catalog struct {
	byID  map[string]Entry
	order []string
}

// New builds the catalog from the compiled-in tables
func New() *Catalog {
	c := &Catalog{byID: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		c.byID[e.ID] = e
		c.order = append(c.order, e.ID)
	}
	return c
}

// Get returns the entry for the given ID
func (c *Catalog) Get(id string) (Entry, bool) {
	e, ok := c.byID[id]
	return e, ok
}

// MustGet returns the entry for the given ID, panicking when absent.
// For compiled-in references only; user input goes through Get.
func (c *Catalog) MustGet(id string) Entry {
	e, ok := c.byID[id]
	if !ok {
		panic("catalog: unknown entry " + id)
	}
	return e
}

// GetKind returns the entry only when it exists with the expected kind
func (c *Catalog) GetKind(id string, kind Kind) (Entry, bool) {
	e, ok := c.byID[id]
	if !ok || e.Kind != kind {
		return Entry{}, false
	}
	return e, true
}

// All returns every entry in catalog order
func (c *Catalog) All() []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// ByKind returns the entries of the given kind in catalog order
func (c *Catalog) ByKind(kind Kind) []Entry {
	var out []Entry
	for _, id := range c.order {
		if e := c.byID[id]; e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// ModsForWeapon returns every mod and upgrade applicable to the weapon
func (c *Catalog) ModsForWeapon(weaponID string) []Entry {
	var out []Entry
	for _, id := range c.order {
		if e := c.byID[id]; e.Kind == KindWeaponMod && e.WeaponID == weaponID {
			out = append(out, e)
		}
	}
	return out
}

// UpgradesForMod returns the upgrades belonging to the given base mod
func (c *Catalog) UpgradesForMod(modID string) []Entry {
	var out []Entry
	for _, id := range c.order {
		if e := c.byID[id]; e.Kind == KindWeaponMod && e.ModID == modID {
			out = append(out, e)
		}
	}
	return out
}

// AmmoForWeapon returns the ammo pool consumed by the weapon, if any
func (c *Catalog) AmmoForWeapon(weaponID string) (Entry, bool) {
	w, ok := c.GetKind(weaponID, KindWeapon)
	if !ok || w.AmmoID == "" {
		return Entry{}, false
	}
	return c.GetKind(w.AmmoID, KindAmmo)
}

// ArgentPerk returns the capacity perk entry for an Argent category
func (c *Catalog) ArgentPerk(cat ArgentCategory) (Entry, bool) {
	switch cat {
	case ArgentHealth:
		return c.GetKind("healthCapacity", KindArgentPerk)
	case ArgentArmor:
		return c.GetKind("armorCapacity", KindArgentPerk)
	case ArgentAmmo:
		return c.GetKind("ammoCapacity", KindArgentPerk)
	default:
		return Entry{}, false
	}
}

// ArgentCategories lists the three categories in serialization order
func ArgentCategories() []ArgentCategory {
	return []ArgentCategory{ArgentHealth, ArgentArmor, ArgentAmmo}
}

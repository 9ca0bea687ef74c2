package decl

import (
	"sort"

	"github.com/doomforge/ngplus/internal/catalog"
	"github.com/doomforge/ngplus/internal/entities/loadout"
	"github.com/doomforge/ngplus/internal/errors"
)

// Serialize validates a selection against the catalog and produces the
// serialized loadout. On any validation failure no output is produced.
//
// Emission order matches the game's expectations: base research item,
// argent perks, praetor perks, equipment, weapons, weapon mods, ammo,
// runes. Ammo is derived from the selected weapons, one full pool per
// distinct ammo type.
func Serialize(cat *catalog.Catalog, sel *loadout.Selection) (*Loadout, error) {
	if sel == nil {
		return nil, errors.InvalidArgument("selection is required")
	}

	if err := validate(cat, sel); err != nil {
		return nil, err
	}

	out := &Loadout{}
	out.Items = append(out.Items, baseItem())
	out.Items = append(out.Items, argentItems(cat, sel)...)
	out.Items = append(out.Items, praetorItems(cat, sel)...)
	out.Items = append(out.Items, equipmentItems(cat, sel)...)
	out.Items = append(out.Items, weaponItems(cat, sel)...)
	out.Items = append(out.Items, weaponModItems(cat, sel)...)
	out.Items = append(out.Items, ammoItems(cat, sel)...)
	out.Items = append(out.Items, runeItems(cat, sel)...)
	return out, nil
}

// Validate runs the serializer's checks without producing output
func Validate(cat *catalog.Catalog, sel *loadout.Selection) error {
	if sel == nil {
		return errors.InvalidArgument("selection is required")
	}
	return validate(cat, sel)
}

func validate(cat *catalog.Catalog, sel *loadout.Selection) error {
	if unknown := unknownIDs(cat, sel); len(unknown) > 0 {
		return errors.UnknownItemf("selection references identifiers outside the catalog: %v", unknown).
			WithMeta("unknown_ids", unknown)
	}

	for _, c := range catalog.ArgentCategories() {
		lvl := sel.ArgentLevels[c]
		if lvl < 0 || lvl > catalog.ArgentMaxLevel {
			return errors.InvalidArgumentf("argent %s level %d outside 0..%d", c, lvl, catalog.ArgentMaxLevel)
		}
	}

	if sel.AllArgentMaxed() {
		return errors.ArgentCellOverfilled("all argent cell categories are at max capacity; at least one upgrade slot must stay open").
			WithMeta("max_level", catalog.ArgentMaxLevel)
	}
	return nil
}

func unknownIDs(cat *catalog.Catalog, sel *loadout.Selection) []string {
	var unknown []string
	check := func(ids map[string]bool, kind catalog.Kind) {
		for id := range ids {
			if _, ok := cat.GetKind(id, kind); !ok {
				unknown = append(unknown, id)
			}
		}
	}
	check(sel.SuitUpgrades, catalog.KindPraetorPerk)
	check(sel.Equipment, catalog.KindEquipment)
	check(sel.Weapons, catalog.KindWeapon)
	check(sel.WeaponMods, catalog.KindWeaponMod)
	for id := range sel.Runes {
		if _, ok := cat.GetKind(id, catalog.KindRune); !ok {
			unknown = append(unknown, id)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// baseItem is the research-group anchor every generated loadout starts with
func baseItem() Item {
	return Item{Fields: []Field{
		stringField("researchGroups", "main"),
		boolField("equip", true),
	}}
}

func argentItems(cat *catalog.Catalog, sel *loadout.Selection) []Item {
	var items []Item
	for _, c := range catalog.ArgentCategories() {
		perk, _ := cat.ArgentPerk(c)
		fields := []Field{
			stringField("perk", perk.Path),
			intField("count", sel.ArgentLevels[c]),
			boolField("equip", true),
		}
		if perk.ApplyAfterLoadout {
			fields = append(fields, boolField("applyAfterLoadout", true))
		}
		fields = append(fields, boolField("remove_after_equip", true))
		items = append(items, Item{Fields: fields})
	}
	return items
}

func praetorItems(cat *catalog.Catalog, sel *loadout.Selection) []Item {
	var items []Item
	for _, e := range cat.ByKind(catalog.KindPraetorPerk) {
		if !sel.SuitUpgrades[e.ID] {
			continue
		}
		fields := []Field{stringField("perk", e.Path)}
		if e.Unlockable != "" {
			fields = append(fields, stringField("unlockable", e.Unlockable))
		}
		fields = append(fields, boolField("equip", true))
		items = append(items, Item{Fields: fields})
	}
	return items
}

func equipmentItems(cat *catalog.Catalog, sel *loadout.Selection) []Item {
	var items []Item
	for _, e := range cat.ByKind(catalog.KindEquipment) {
		if !sel.Equipment[e.ID] {
			continue
		}
		fields := []Field{stringField("item", e.Path)}
		if e.DefaultEquip {
			fields = append(fields, boolField("equip", true))
		}
		items = append(items, Item{Fields: fields})
	}
	return items
}

func weaponItems(cat *catalog.Catalog, sel *loadout.Selection) []Item {
	var items []Item
	for _, e := range cat.ByKind(catalog.KindWeapon) {
		if !e.AlwaysIncluded && !sel.Weapons[e.ID] {
			continue
		}
		fields := []Field{stringField("item", e.Path)}
		switch {
		case e.DefaultEquip:
			fields = append(fields, boolField("equip", true))
		case e.EquipReserve:
			fields = append(fields, boolField("equip_reserve", true))
		}
		items = append(items, Item{Fields: fields})
	}
	return items
}

func weaponModItems(cat *catalog.Catalog, sel *loadout.Selection) []Item {
	var items []Item
	for _, e := range cat.ByKind(catalog.KindWeaponMod) {
		if !sel.WeaponMods[e.ID] {
			continue
		}
		fields := []Field{stringField("perk", e.Path)}
		// Base mods are granted unequipped; upgrades are applied outright,
		// whether or not their base mod made it into the selection.
		if !e.IsBaseMod {
			fields = append(fields, boolField("equip", true))
		}
		items = append(items, Item{Fields: fields})
	}
	return items
}

func ammoItems(cat *catalog.Catalog, sel *loadout.Selection) []Item {
	needed := make(map[string]bool)
	for _, e := range cat.ByKind(catalog.KindWeapon) {
		if e.AlwaysIncluded || sel.Weapons[e.ID] {
			if e.AmmoID != "" {
				needed[e.AmmoID] = true
			}
		}
	}

	var items []Item
	for _, e := range cat.ByKind(catalog.KindAmmo) {
		if !needed[e.ID] {
			continue
		}
		items = append(items, Item{Fields: []Field{
			stringField("item", e.Path),
			intField("count", e.FullCount),
			boolField("applyAfterLoadout", true),
		}})
	}
	return items
}

func runeItems(cat *catalog.Catalog, sel *loadout.Selection) []Item {
	var items []Item
	for _, e := range cat.ByKind(catalog.KindRune) {
		st, ok := sel.Runes[e.ID]
		if !ok || !st.Included {
			continue
		}
		fields := []Field{
			stringField("perk", e.Path),
			boolField("applyUpgradesForPerk", st.Upgraded),
		}
		if st.Permanent {
			// Permanently equipped without consuming one of the three slots.
			fields = append(fields, boolField("equip", true))
		} else {
			fields = append(fields, boolField("isRune", true))
		}
		items = append(items, Item{Fields: fields})
	}
	return items
}

package decl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doomforge/ngplus/internal/catalog"
	"github.com/doomforge/ngplus/internal/decl"
	"github.com/doomforge/ngplus/internal/entities/loadout"
	"github.com/doomforge/ngplus/internal/errors"
)

// findItem returns the first item carrying key = <quoted path>, or nil.
func findItem(l *decl.Loadout, key, path string) *decl.Item {
	for i := range l.Items {
		for _, f := range l.Items[i].Fields {
			if f.Key == key && f.Value == `"`+path+`"` {
				return &l.Items[i]
			}
		}
	}
	return nil
}

func fieldValue(item *decl.Item, key string) (string, bool) {
	for _, f := range item.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

func TestSerialize_DefaultSelection(t *testing.T) {
	cat := catalog.New()
	out, err := decl.Serialize(cat, loadout.NewSelection())
	require.NoError(t, err)

	// Base item, three argent perks, fists, pistol.
	require.Len(t, out.Items, 6)

	base := out.Items[0]
	v, ok := fieldValue(&base, "researchGroups")
	require.True(t, ok)
	assert.Equal(t, `"main"`, v)

	pistol := findItem(out, "item", "weapon/zion/player/sp/pistol")
	require.NotNil(t, pistol)
	v, ok = fieldValue(pistol, "equip")
	require.True(t, ok)
	assert.Equal(t, "true", v)

	fists := findItem(out, "item", "weapon/zion/player/sp/fists")
	require.NotNil(t, fists)
	assert.Len(t, fists.Fields, 1, "fists carry no equip flags")
}

func TestSerialize_ArgentOverfillFails(t *testing.T) {
	cat := catalog.New()
	sel := loadout.NewSelection()
	for _, c := range catalog.ArgentCategories() {
		sel.ArgentLevels[c] = catalog.ArgentMaxLevel
	}

	out, err := decl.Serialize(cat, sel)
	require.Error(t, err)
	assert.True(t, errors.IsArgentCellOverfilled(err))
	assert.Nil(t, out, "no partial output on validation failure")
}

func TestSerialize_OneArgentSlotOpenSucceeds(t *testing.T) {
	cat := catalog.New()
	sel := loadout.NewSelection()
	sel.ArgentLevels[catalog.ArgentHealth] = catalog.ArgentMaxLevel
	sel.ArgentLevels[catalog.ArgentArmor] = catalog.ArgentMaxLevel
	sel.ArgentLevels[catalog.ArgentAmmo] = catalog.ArgentMaxLevel - 1

	out, err := decl.Serialize(cat, sel)
	require.NoError(t, err)

	health := findItem(out, "perk", "perk/zion/player/sp/enviroment_suit/health_capacity")
	require.NotNil(t, health)
	v, _ := fieldValue(health, "count")
	assert.Equal(t, "4", v)
}

func TestSerialize_ArgentFieldLayout(t *testing.T) {
	cat := catalog.New()
	out, err := decl.Serialize(cat, loadout.NewSelection())
	require.NoError(t, err)

	// Only the ammo capacity perk carries applyAfterLoadout.
	ammo := findItem(out, "perk", "perk/zion/player/sp/enviroment_suit/ammo_capacity")
	require.NotNil(t, ammo)
	keys := make([]string, len(ammo.Fields))
	for i, f := range ammo.Fields {
		keys[i] = f.Key
	}
	assert.Equal(t, []string{"perk", "count", "equip", "applyAfterLoadout", "remove_after_equip"}, keys)

	armor := findItem(out, "perk", "perk/zion/player/sp/enviroment_suit/armor_capacity")
	require.NotNil(t, armor)
	_, hasApply := fieldValue(armor, "applyAfterLoadout")
	assert.False(t, hasApply)
}

func TestSerialize_ModUpgradeWithoutBaseMod(t *testing.T) {
	cat := catalog.New()
	sel := loadout.NewSelection()
	sel.SetWeapon("combatShotgun", true)
	sel.SetWeaponMod("chargedBurst_rapidFire", true)
	// chargedBurst itself deliberately left out.

	out, err := decl.Serialize(cat, sel)
	require.NoError(t, err)

	upgrade := findItem(out, "perk", "perk/zion/player/sp/weapons/shotgun/secondary_charge_burst_faster_fire_rate")
	require.NotNil(t, upgrade, "upgrade must serialize independently of its base mod")
	v, ok := fieldValue(upgrade, "equip")
	require.True(t, ok)
	assert.Equal(t, "true", v)

	baseMod := findItem(out, "perk", "perk/zion/player/sp/weapons/shotgun/secondary_charge_burst")
	assert.Nil(t, baseMod, "unselected base mod must not be emitted")
}

func TestSerialize_BaseModHasNoEquipFlag(t *testing.T) {
	cat := catalog.New()
	sel := loadout.NewSelection()
	sel.SetWeapon("gaussCannon", true)
	sel.SetWeaponMod("siegeMode", true)

	out, err := decl.Serialize(cat, sel)
	require.NoError(t, err)

	mod := findItem(out, "perk", "perk/zion/player/sp/weapons/gauss_cannon/siege_mode")
	require.NotNil(t, mod)
	assert.Len(t, mod.Fields, 1, "base mods serialize as a bare perk")
}

func TestSerialize_RuneUpgradeRequiresInclusion(t *testing.T) {
	cat := catalog.New()
	sel := loadout.NewSelection()
	sel.SetRuneUpgraded("vacuum", true) // never included

	out, err := decl.Serialize(cat, sel)
	require.NoError(t, err)

	item := findItem(out, "perk", "perk/zion/player/sp/enviroment_suit/increase_drop_radius")
	assert.Nil(t, item, "a rune's upgrade flag means nothing without the rune")
}

func TestSerialize_RuneStates(t *testing.T) {
	cat := catalog.New()
	sel := loadout.NewSelection()
	sel.SetRuneIncluded("vacuum", true)
	sel.SetRuneUpgraded("vacuum", true)
	sel.SetRunePermanent("savingThrow", true)

	out, err := decl.Serialize(cat, sel)
	require.NoError(t, err)

	slotted := findItem(out, "perk", "perk/zion/player/sp/enviroment_suit/increase_drop_radius")
	require.NotNil(t, slotted)
	v, _ := fieldValue(slotted, "applyUpgradesForPerk")
	assert.Equal(t, "true", v)
	v, ok := fieldValue(slotted, "isRune")
	require.True(t, ok)
	assert.Equal(t, "true", v)
	_, hasEquip := fieldValue(slotted, "equip")
	assert.False(t, hasEquip)

	permanent := findItem(out, "perk", "perk/zion/player/sp/enviroment_suit/activate_focus_on_death_blow")
	require.NotNil(t, permanent)
	v, ok = fieldValue(permanent, "equip")
	require.True(t, ok)
	assert.Equal(t, "true", v)
	_, hasSlot := fieldValue(permanent, "isRune")
	assert.False(t, hasSlot, "permanent runes do not consume a slot")
	v, _ = fieldValue(permanent, "applyUpgradesForPerk")
	assert.Equal(t, "false", v)
}

func TestSerialize_AmmoDerivedFromWeapons(t *testing.T) {
	cat := catalog.New()
	sel := loadout.NewSelection()
	sel.SetWeapon("combatShotgun", true)
	sel.SetWeapon("superShotgun", true)
	sel.SetWeapon("chaingun", true)

	out, err := decl.Serialize(cat, sel)
	require.NoError(t, err)

	shells := findItem(out, "item", "ammo/zion/sharedammopool/shells")
	require.NotNil(t, shells, "shared shell pool for both shotguns")
	v, _ := fieldValue(shells, "count")
	assert.Equal(t, "99", v)

	bullets := findItem(out, "item", "ammo/zion/sharedammopool/bullets")
	require.NotNil(t, bullets)
	v, _ = fieldValue(bullets, "count")
	assert.Equal(t, "999", v)

	// One entry per pool, not per weapon.
	count := 0
	for _, item := range out.Items {
		for _, f := range item.Fields {
			if f.Key == "item" && f.Value == `"ammo/zion/sharedammopool/shells"` {
				count++
			}
		}
	}
	assert.Equal(t, 1, count)

	rockets := findItem(out, "item", "ammo/zion/sharedammopool/rockets")
	assert.Nil(t, rockets, "no pool without a weapon that feeds on it")
}

func TestSerialize_UnknownIDsRejected(t *testing.T) {
	cat := catalog.New()
	sel := loadout.NewSelection()
	sel.SetWeapon("crucible", true)
	sel.SetRuneIncluded("berserk", true)

	out, err := decl.Serialize(cat, sel)
	require.Error(t, err)
	assert.True(t, errors.IsUnknownItem(err))
	assert.ErrorContains(t, err, "berserk")
	assert.ErrorContains(t, err, "crucible")
	assert.Nil(t, out)
}

func TestSerialize_KindMismatchRejected(t *testing.T) {
	cat := catalog.New()
	sel := loadout.NewSelection()
	sel.SetWeapon("vacuum", true) // a rune is not a weapon

	_, err := decl.Serialize(cat, sel)
	require.Error(t, err)
	assert.True(t, errors.IsUnknownItem(err))
}

func TestSerialize_PraetorUnlockable(t *testing.T) {
	cat := catalog.New()
	sel := loadout.NewSelection()
	sel.SetSuitUpgrade("itemAwareness", true)
	sel.SetSuitUpgrade("secretSense", true)

	out, err := decl.Serialize(cat, sel)
	require.NoError(t, err)

	gated := findItem(out, "perk", "perk/zion/player/sp/enviroment_suit/automap_1")
	require.NotNil(t, gated)
	v, ok := fieldValue(gated, "unlockable")
	require.True(t, ok)
	assert.Equal(t, `"researchprojects/find_collectibles_1"`, v)

	ungated := findItem(out, "perk", "perk/zion/player/sp/enviroment_suit/automap_2")
	require.NotNil(t, ungated)
	_, ok = fieldValue(ungated, "unlockable")
	assert.False(t, ok)
}

func TestValidate_NoOutput(t *testing.T) {
	cat := catalog.New()
	sel := loadout.NewSelection()
	require.NoError(t, decl.Validate(cat, sel))

	for _, c := range catalog.ArgentCategories() {
		sel.ArgentLevels[c] = catalog.ArgentMaxLevel
	}
	err := decl.Validate(cat, sel)
	assert.True(t, errors.IsArgentCellOverfilled(err))
}

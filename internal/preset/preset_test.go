package preset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doomforge/ngplus/internal/catalog"
	"github.com/doomforge/ngplus/internal/entities/loadout"
	"github.com/doomforge/ngplus/internal/errors"
	"github.com/doomforge/ngplus/internal/preset"
)

func writePreset(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writePreset(t, `{
		"argentLevels": {"health": 4, "armor": 4, "ammo": 3},
		"suitUpgrades": ["hazardProtection"],
		"equipment": ["doubleJumpThrustBoots"],
		"weapons": ["combatShotgun"],
		"weaponMods": ["chargedBurst", "chargedBurst_rapidFire"],
		"runes": [{"id": "vacuum", "upgraded": true}]
	}`)

	p, err := preset.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, p.ArgentLevels["health"])
	assert.Equal(t, []string{"combatShotgun"}, p.Weapons)
	require.Len(t, p.Runes, 1)
	assert.True(t, p.Runes[0].Upgraded)
	assert.False(t, p.Runes[0].Permanent)
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	path := writePreset(t, `{"wepons": ["combatShotgun"]}`)

	_, err := preset.Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := preset.Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestApply(t *testing.T) {
	p := &preset.Preset{
		ArgentLevels: map[string]int{"health": 4, "armor": 4, "ammo": 3},
		SuitUpgrades: []string{"hazardProtection"},
		Equipment:    []string{"doubleJumpThrustBoots"},
		Weapons:      []string{"combatShotgun"},
		WeaponMods:   []string{"chargedBurst", "chargedBurst_rapidFire"},
		Runes: []preset.Rune{
			{ID: "vacuum", Upgraded: true},
			{ID: "savingThrow", Permanent: true},
		},
	}

	sel := loadout.NewSelection()
	require.NoError(t, p.Apply(catalog.New(), sel))

	assert.Equal(t, 4, sel.ArgentLevels[catalog.ArgentHealth])
	assert.Equal(t, 3, sel.ArgentLevels[catalog.ArgentAmmo])
	assert.True(t, sel.SuitUpgrades["hazardProtection"])
	assert.True(t, sel.Weapons["combatShotgun"])
	assert.True(t, sel.WeaponMods["chargedBurst_rapidFire"])
	assert.True(t, sel.Runes["vacuum"].Upgraded)
	assert.True(t, sel.Runes["savingThrow"].Permanent)
	assert.True(t, sel.Runes["savingThrow"].Included)
}

func TestApply_OverfilledLevelsPassThrough(t *testing.T) {
	// 4/4/4 is a serializer failure, not a preset failure; Apply must not
	// silently clamp a file-driven selection.
	p := &preset.Preset{
		ArgentLevels: map[string]int{"health": 4, "armor": 4, "ammo": 4},
	}

	sel := loadout.NewSelection()
	require.NoError(t, p.Apply(catalog.New(), sel))
	assert.True(t, sel.AllArgentMaxed())
}

func TestApply_UnknownIDs(t *testing.T) {
	p := &preset.Preset{
		Weapons: []string{"crucible"},
		Runes:   []preset.Rune{{ID: "berserk"}},
	}

	err := p.Apply(catalog.New(), loadout.NewSelection())
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "crucible")
	assert.Contains(t, err.Error(), "berserk")
}

func TestApply_BadArgentInput(t *testing.T) {
	p := &preset.Preset{ArgentLevels: map[string]int{"plasma": 2}}
	err := p.Apply(catalog.New(), loadout.NewSelection())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plasma")

	p = &preset.Preset{ArgentLevels: map[string]int{"health": 7}}
	err = p.Apply(catalog.New(), loadout.NewSelection())
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestSchema(t *testing.T) {
	data, err := preset.Schema()
	require.NoError(t, err)

	schema := string(data)
	for _, prop := range []string{"argentLevels", "suitUpgrades", "equipment", "weapons", "weaponMods", "runes"} {
		assert.Contains(t, schema, `"`+prop+`"`)
	}
	assert.Contains(t, schema, "Loadout Preset")
}

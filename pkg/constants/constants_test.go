package constants

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, FallbackWorldSize, c.World.Size)
	assert.Equal(t, FallbackMaxRange, c.Weapons.Rifle.EffectiveMaxRange())
	assert.Equal(t, FallbackFalloffStart, c.Weapons.Rifle.EffectiveFalloffStart())
}

func TestJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(Default())
	require.NoError(t, err)

	var raw map[string]map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	for _, key := range []string{"SPEED", "HEALTH", "HEIGHT", "SENSITIVITY"} {
		assert.Contains(t, raw["PLAYER"], key)
	}
	for _, key := range []string{"SIZE", "GRAVITY", "GROUND_LEVEL"} {
		assert.Contains(t, raw["WORLD"], key)
	}
	for _, key := range []string{"UPDATE_RATE", "SERVER_PORT", "MAX_PLAYERS"} {
		assert.Contains(t, raw["NETWORKS"], key)
	}
	rifle := raw["WEAPONS"]["RIFLE"].(map[string]any)
	for _, key := range []string{"DAMAGE", "AMMO", "BULLET_SPEED"} {
		assert.Contains(t, rifle, key)
	}
	assert.NotContains(t, rifle, "MAX_RANGE", "unset fallbacks stay out of the table")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Constants)
		want   string
	}{
		{"world size", func(c *Constants) { c.World.Size = 0 }, "world.size"},
		{"health", func(c *Constants) { c.Player.Health = -1 }, "player.health"},
		{"speed", func(c *Constants) { c.Player.Speed = -1 }, "player.speed"},
		{"ammo", func(c *Constants) { c.Weapons.Rifle.Ammo = 0 }, "ammo"},
		{"damage", func(c *Constants) { c.Weapons.Rifle.Damage = -5 }, "damage"},
		{"falloff", func(c *Constants) { c.Weapons.Rifle.FalloffStart = 150 }, "falloff"},
		{"rate", func(c *Constants) { c.Networks.UpdateRate = 0 }, "update_rate"},
		{"port", func(c *Constants) { c.Networks.ServerPort = 70000 }, "server_port"},
		{"players", func(c *Constants) { c.Networks.MaxPlayers = 0 }, "max_players"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			require.ErrorIs(t, err, ErrInvalidConstants)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadYAMLAndTOMLAgree(t *testing.T) {
	fromYAML, err := Load(filepath.Join("testdata", "arena.yaml"))
	require.NoError(t, err)
	fromTOML, err := Load(filepath.Join("testdata", "arena.toml"))
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromTOML)
	assert.Equal(t, fromYAML.Fingerprint(), fromTOML.Fingerprint())

	assert.Equal(t, 6.5, fromYAML.Player.Speed)
	assert.Equal(t, 150, fromYAML.Player.Health)
	assert.Equal(t, 1.8, fromYAML.Player.Height, "unset keys keep defaults")
	assert.Equal(t, 400.0, fromYAML.World.Size)
	assert.Equal(t, 120.0, fromYAML.Weapons.Rifle.EffectiveMaxRange())
	assert.Equal(t, 60.0, fromYAML.Weapons.Rifle.EffectiveFalloffStart())
	assert.Equal(t, 32, fromYAML.Networks.MaxPlayers)
	assert.Equal(t, 3000, fromYAML.Networks.ServerPort)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "constants.ini"))
	require.ErrorIs(t, err, ErrUnknownFormat)

	typo := filepath.Join(dir, "typo.yaml")
	require.NoError(t, os.WriteFile(typo, []byte("world:\n  sise: 10\n"), 0o600))
	_, err = Load(typo)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing constants")

	invalid := filepath.Join(dir, "invalid.toml")
	require.NoError(t, os.WriteFile(invalid, []byte("[world]\nsize = -1.0\n"), 0o600))
	_, err = Load(invalid)
	require.ErrorIs(t, err, ErrInvalidConstants)

	nan := filepath.Join(dir, "nan.toml")
	require.NoError(t, os.WriteFile(nan, []byte("[world]\ngravity = nan\n"), 0o600))
	require.NotPanics(t, func() { _, err = Load(nan) })
	require.ErrorIs(t, err, ErrInvalidConstants)
	assert.Contains(t, err.Error(), "world.gravity must be finite")

	inf := filepath.Join(dir, "inf.yaml")
	require.NoError(t, os.WriteFile(inf, []byte("player:\n  speed: .inf\n"), 0o600))
	require.NotPanics(t, func() { _, err = Load(inf) })
	require.ErrorIs(t, err, ErrInvalidConstants)
	assert.Contains(t, err.Error(), "player.speed must be finite")

	unknown := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(unknown, []byte("[world]\nwidth = 3.0\n"), 0o600))
	_, err = Load(unknown)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown keys")
}

func TestDecodeEmptyDocument(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML, FormatJSON} {
		c, err := Decode(strings.NewReader(""), format)
		require.NoError(t, err, format.String())
		assert.Equal(t, Default(), c)
	}
	_, err := Decode(strings.NewReader(""), Format(42))
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestEncodeDecodeAgree(t *testing.T) {
	c := Default()
	c.World.Gravity = -20
	c.Weapons.Rifle.MaxRange = 80

	for _, format := range []Format{FormatYAML, FormatTOML, FormatJSON} {
		t.Run(format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, c, format))
			decoded, err := Decode(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, c, decoded)
		})
	}
}

func TestFingerprintTracksChanges(t *testing.T) {
	a := Default()
	b := Default()
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.Len(t, a.Fingerprint(), 16)

	b.Weapons.Rifle.Damage++
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	b.World.Gravity = math.NaN()
	require.NotPanics(t, func() { _ = b.Fingerprint() })
	b.World.Gravity = math.Inf(-1)
	assert.Len(t, b.Fingerprint(), 16)
}

func TestValidateRejectsNonFinite(t *testing.T) {
	c := Default()
	c.Weapons.Rifle.MaxRange = math.Inf(1)
	c.Player.Sensitivity = math.NaN()

	err := c.Validate()
	require.ErrorIs(t, err, ErrInvalidConstants)
	assert.Contains(t, err.Error(), "weapons.rifle.max_range must be finite")
	assert.Contains(t, err.Error(), "player.sensitivity must be finite")
}

func TestWorldEffectiveSize(t *testing.T) {
	assert.Equal(t, FallbackWorldSize, World{}.EffectiveSize())
	assert.Equal(t, 64.0, World{Size: 64}.EffectiveSize())
}

func TestInstallProvide(t *testing.T) {
	installed.Store(nil)
	t.Cleanup(func() { installed.Store(nil) })

	require.Nil(t, Provide())
	require.False(t, Install(nil))

	first := Default()
	first.World.Size = 500
	require.True(t, Install(first))
	require.False(t, Install(Default()), "first install wins")

	first.World.Size = 1
	got := Provide()
	require.NotNil(t, got)
	assert.Equal(t, 500.0, got.World.Size)

	got.World.Size = 2
	assert.Equal(t, 500.0, Provide().World.Size)
}

func TestMarshalGlobalScript(t *testing.T) {
	script, err := MarshalGlobalScript(Default(), DefaultGlobalName)
	require.NoError(t, err)

	text := string(script)
	require.True(t, strings.HasPrefix(text, "window.GAME_CONSTANTS = {"))
	require.True(t, strings.HasSuffix(text, "};\n"))

	body := strings.TrimSuffix(strings.TrimPrefix(text, "window.GAME_CONSTANTS = "), ";\n")
	var decoded Constants
	require.NoError(t, json.Unmarshal([]byte(body), &decoded))
	assert.Equal(t, *Default(), decoded)

	for _, name := range []string{"", "1abc", "a-b", "window.x"} {
		_, err = MarshalGlobalScript(Default(), name)
		require.ErrorIs(t, err, ErrInvalidGlobalName, name)
	}
	_, err = MarshalGlobalScript(Default(), "$cfg_2")
	require.NoError(t, err)
}

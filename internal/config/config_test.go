package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Config{Rounds: 30, HandSize: 6, Addr: ":8080"}, cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "ROUNDS=100\nHAND_SIZE=8\nSEED=99\nUNRELATED=x\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Rounds)
	assert.Equal(t, 8, cfg.HandSize)
	assert.Equal(t, uint64(99), cfg.Seed)

	t.Setenv("HAND_SIZE", "13")
	t.Setenv("ADDR", "127.0.0.1:9000")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Rounds)
	assert.Equal(t, 13, cfg.HandSize)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
	}{
		{"not a number", map[string]string{"ROUNDS": "many", "HAND_SIZE": "6", "ADDR": ":1"}},
		{"zero rounds", map[string]string{"ROUNDS": "0", "HAND_SIZE": "6", "ADDR": ":1"}},
		{"hand too large", map[string]string{"ROUNDS": "1", "HAND_SIZE": "53", "ADDR": ":1"}},
		{"empty hand", map[string]string{"ROUNDS": "1", "HAND_SIZE": "0", "ADDR": ":1"}},
		{"no addr", map[string]string{"ROUNDS": "1", "HAND_SIZE": "6", "ADDR": ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.values)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestConfig_DeckFactory(t *testing.T) {
	seeded := Config{Seed: 5}
	a := seeded.DeckFactory()
	b := seeded.DeckFactory()
	for i := 0; i < 3; i++ {
		assert.Equal(t, a().Cards(), b().Cards())
	}

	random := Config{}.DeckFactory()
	assert.Equal(t, 52, random().Len())
}

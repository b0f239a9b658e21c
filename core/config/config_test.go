package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 32, cfg.Server.BodyLimitMB)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "DESIGNATOR", cfg.Match.DesignatorColumn)
	assert.Equal(t, "Designator", cfg.Match.HeaderMarker)
	assert.Equal(t, "", cfg.Match.Explode)
	assert.False(t, cfg.Match.Strict)
	assert.False(t, cfg.Match.RejectHyphen)
	assert.Equal(t, []string{"COMMENT", "VALUE", "PART NUMBER", "PART", "MPN", "ITEM", "STOCK CODE"}, cfg.Match.Candidates())
	assert.Equal(t, "file", cfg.Stock.Source)
	assert.Equal(t, "stock_items", cfg.Stock.Table)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("MATCH_STRICT", "true")
	t.Setenv("MATCH_EXPLODE", "delimiters")
	t.Setenv("STOCK_SOURCE", "database")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.Match.Strict)
	assert.Equal(t, "delimiters", cfg.Match.Explode)
	assert.True(t, cfg.Stock.UsesDatabase())
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MATCH_DESIGNATOR_COLUMN=REFDES\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("MATCH_DESIGNATOR_COLUMN") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "REFDES", cfg.Match.DesignatorColumn)
}

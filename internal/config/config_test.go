package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/ixml/internal/config"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadParsesTomlFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".ixmlrc.toml")
	require.NoError(t, os.WriteFile(path, []byte("trace = \"Debug\"\nno_color = true\nworkers = 4\n"), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Debug", cfg.Trace)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, 4, cfg.Workers)
}

func TestMergePrefersCliFlags(t *testing.T) {
	cfg := config.Config{Trace: "Error", NoColor: false}
	merged := cfg.Merge("Debug", true)
	assert.Equal(t, "Debug", merged.Trace)
	assert.True(t, merged.NoColor)
}

func TestMergeKeepsFileValuesWhenFlagsEmpty(t *testing.T) {
	cfg := config.Config{Trace: "Info", NoColor: true}
	merged := cfg.Merge("", false)
	assert.Equal(t, "Info", merged.Trace)
	assert.True(t, merged.NoColor)
}

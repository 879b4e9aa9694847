package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "docs", config.OutDir)
	assert.Equal(t, "markdown", config.Format)
	assert.Equal(t, "API Commands", config.Title)
	assert.Empty(t, config.Directories)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".cmdoc.toml")
	content := `
directories = ["./handlers", "./api"]
module = "github.com/example/app"
out = "api-docs"
format = "json"
title = "My Commands"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"./handlers", "./api"}, config.Directories)
	assert.Equal(t, "github.com/example/app", config.ModuleName)
	assert.Equal(t, "api-docs", config.OutDir)
	assert.Equal(t, "json", config.Format)
	assert.Equal(t, "My Commands", config.Title)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".cmdoc.toml")
	require.NoError(t, os.WriteFile(path, []byte(`format = "yaml"`), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "yaml", config.Format)
	assert.Equal(t, "docs", config.OutDir)
	assert.Equal(t, "API Commands", config.Title)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestConfig_Override(t *testing.T) {
	config := DefaultConfig()
	config.Directories = []string{"./from-file"}
	config.Format = "json"

	config.Override(Config{
		Directories: []string{"./from-flags"},
		OutDir:      "build/docs",
		Verbose:     true,
	})

	assert.Equal(t, []string{"./from-flags"}, config.Directories)
	assert.Equal(t, "build/docs", config.OutDir)
	assert.Equal(t, "json", config.Format, "unset flags leave file values alone")
	assert.True(t, config.Verbose)
}

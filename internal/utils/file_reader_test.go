package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileReader_ParseGoFileCaches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.go")
	require.NoError(t, os.WriteFile(path, []byte("package main\n"), 0644))

	reader := NewFileReader()
	first, err := reader.ParseGoFile(path)
	require.NoError(t, err)

	second, err := reader.ParseGoFile(path)
	require.NoError(t, err)
	assert.Same(t, first, second)

	reader.ClearCache()
	third, err := reader.ParseGoFile(path)
	require.NoError(t, err)
	assert.NotSame(t, first, third)
}

func TestFileReader_ParseGoSource(t *testing.T) {
	reader := NewFileReader()

	file, err := reader.ParseGoSource("snippet.go", "package driver\n\nfunc Click() {}\n")
	require.NoError(t, err)
	assert.Equal(t, "driver", file.Name.Name)

	_, err = reader.ParseGoSource("broken.go", "package {")
	assert.Error(t, err)
}

func TestFileReader_ReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	reader := NewFileReader()
	content, err := reader.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", content)

	_, err = reader.ReadFile("")
	assert.Error(t, err)

	_, err = reader.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

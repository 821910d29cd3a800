package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadThemeFromFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(`
mailsift:
  body:
    fgColor: "#ffffff"
    bgColor: "#000000"
  email:
    unreadColor: "orange"
    readColor: "gray"
    selectedColor: "blue"
`), 0o644))

	loader := NewThemeLoader(dir)
	theme, err := loader.LoadThemeFromFile("test.yaml")
	require.NoError(t, err)

	assert.Equal(t, Color("#ffffff"), theme.Body.FgColor)
	assert.Equal(t, Color("orange"), theme.Email.UnreadColor)
}

func TestLoadThemeMissingFile(t *testing.T) {
	loader := NewThemeLoader(t.TempDir())
	_, err := loader.LoadThemeFromFile("missing.yaml")
	assert.Error(t, err)
}

func TestLoadThemeMissingRootKey(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("other: {}\n"), 0o644))

	loader := NewThemeLoader(dir)
	_, err := loader.LoadThemeFromFile("bad.yaml")
	assert.Error(t, err)
}

func TestSaveAndListThemes(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "themes")
	loader := NewThemeLoader(dir)

	require.NoError(t, loader.SaveThemeToFile(DefaultColors(), "custom.yaml"))

	themes, err := loader.ListAvailableThemes()
	require.NoError(t, err)
	assert.Contains(t, themes, "custom.yaml")

	loaded, err := loader.LoadThemeFromFile("custom.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultColors().Email.UnreadColor, loaded.Email.UnreadColor)
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "#abcdef", Color("#abcdef").String())
	assert.Equal(t, "-", DefaultColor.String())
}

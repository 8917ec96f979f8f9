package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".jsonish.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, "  ", cfg.Indent)
	assert.False(t, cfg.Compact)
	assert.False(t, cfg.Color)
	assert.Empty(t, cfg.KeyCase)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	path := writeTempConfig(t, "indent: \"\\t\"\ncompact: true\nkey_case: snake\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "\t", cfg.Indent)
	assert.True(t, cfg.Compact)
	assert.Equal(t, "snake", cfg.KeyCase)
	// Unset fields keep their defaults.
	assert.False(t, cfg.Color)
}

func TestLoadConfig_InvalidKeyCase(t *testing.T) {
	path := writeTempConfig(t, "key_case: shouty\n")
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "invalid key_case")
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := writeTempConfig(t, "indent: [unclosed\n")
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestFindConfigFile_BothSpellings(t *testing.T) {
	for _, name := range []string{".jsonish.yml", ".jsonish.yaml"} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("compact: true\n"), 0644))
			wd, err := os.Getwd()
			require.NoError(t, err)
			require.NoError(t, os.Chdir(dir))
			t.Cleanup(func() { _ = os.Chdir(wd) })
			// Compare the base name: the cwd reported by the OS may be a
			// resolved symlink of the temp dir.
			assert.Equal(t, name, filepath.Base(FindConfigFile()))
		})
	}
}

func TestLoad_ExplicitPathWins(t *testing.T) {
	path := writeTempConfig(t, "color: true\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Color)
}

func TestValidate_KeyCases(t *testing.T) {
	for _, style := range []string{"", "snake", "camel", "pascal", "kebab", "screaming"} {
		cfg := NewConfig()
		cfg.KeyCase = style
		assert.NoError(t, cfg.Validate(), "style %q", style)
	}
	cfg := NewConfig()
	cfg.KeyCase = "sarcastic"
	assert.Error(t, cfg.Validate())
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hinglish.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
mode: roman
words:
  - roman:slang.tsv
  - devanagari:reverse.yaml
workers: 4
cache_size: 1000
log_level: info
`)
	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ModeRoman, config.Mode)
	assert.Equal(t, 4, config.Workers)
	assert.Equal(t, 1000, config.CacheSize)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, []WordList{
		{Direction: DirectionRoman, Path: "slang.tsv"},
		{Direction: DirectionDevanagari, Path: "reverse.yaml"},
	}, config.WordLists())
}

func TestLoadDefaults(t *testing.T) {
	{ // equivalent of t.Chdir (Go 1.24+)
		oldWd, wdErr := os.Getwd()
		require.NoError(t, wdErr)
		require.NoError(t, os.Chdir(t.TempDir()))
		t.Cleanup(func() { _ = os.Chdir(oldWd) })
	}
	t.Setenv(EnvConfigFile, "")
	config, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), config)
}

func TestLoadFromEnvFile(t *testing.T) {
	path := writeConfig(t, "mode: hindi\n")
	t.Setenv(EnvConfigFile, path)
	config, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ModeHindi, config.Mode)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, "mode: hindi\nworkers: 2\n")
	t.Setenv("HINGLISH_MODE", "roman")
	t.Setenv("HINGLISH_WORKERS", "8")
	t.Setenv("HINGLISH_WORDS", "a.tsv,devanagari:b.tsv")
	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ModeRoman, config.Mode)
	assert.Equal(t, 8, config.Workers)
	assert.Equal(t, []WordList{
		{Direction: DirectionRoman, Path: "a.tsv"},
		{Direction: DirectionDevanagari, Path: "b.tsv"},
	}, config.WordLists())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"mode", "mode: klingon\n"},
		{"workers", "workers: -1\n"},
		{"direction", "words: [\"sideways:x.tsv\"]\n"},
		{"path", "words: [\"roman:\"]\n"},
		{"yaml", "mode: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestParseWordList(t *testing.T) {
	list, err := ParseWordList("devanagari:/tmp/words.yaml")
	require.NoError(t, err)
	assert.Equal(t, WordList{Direction: DirectionDevanagari, Path: "/tmp/words.yaml"}, list)

	list, err = ParseWordList("words.tsv")
	require.NoError(t, err)
	assert.Equal(t, DirectionRoman, list.Direction)
}

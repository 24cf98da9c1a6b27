package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/wordladder/pkg/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, IndexBucket, cfg.Index)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 7*24*time.Hour, cfg.Cache.TTL.Duration)
	assert.NoError(t, cfg.Validate())
}

func TestParse(t *testing.T) {
	cfg, err := Parse(`
dictionary = "/usr/share/dict/words"
fold_case = true
index = "SCAN"
max_depth = 6

[cache]
enabled = false
redis_addr = "localhost:6379"
ttl = "1h30m"
`)
	require.NoError(t, err)
	assert.Equal(t, "/usr/share/dict/words", cfg.Dictionary)
	assert.True(t, cfg.FoldCase)
	assert.Equal(t, IndexScan, cfg.Index)
	assert.Equal(t, 6, cfg.MaxDepth)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, 90*time.Minute, cfg.Cache.TTL.Duration)
	assert.Empty(t, cfg.Unknown)
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse(`dictionary = "words.txt"`)
	require.NoError(t, err)
	assert.Equal(t, "words.txt", cfg.Dictionary)
	assert.Equal(t, IndexBucket, cfg.Index)
	assert.True(t, cfg.Cache.Enabled)
}

func TestParseUnknownKeys(t *testing.T) {
	cfg, err := Parse("dictionary = \"w\"\ncolour = \"red\"\n[cache]\nsize = 3\n")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"colour", "cache.size"}, cfg.Unknown)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"malformed", "dictionary = "},
		{"wrong type", "max_depth = \"deep\""},
		{"bad index", "index = \"trie\""},
		{"negative depth", "max_depth = -1"},
		{"bad ttl", "[cache]\nttl = \"soon\""},
		{"negative ttl", "[cache]\nttl = \"-1h\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig), "got %v", err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("fold_case = true\n"), 0644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.FoldCase)
}

func TestPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_CACHE_HOME", "/xdg/cache")

	p, err := Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg/config", "wordladder", "config.toml"), p)

	d, err := CacheDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg/cache", "wordladder"), d)
}

func TestStringRoundTrip(t *testing.T) {
	in := Default()
	in.Dictionary = "words.txt"
	in.MaxDepth = 4

	out, err := Parse(in.String())
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

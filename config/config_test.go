package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "data/badger", cfg.DBPath)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BLOG_ADDR", ":9999")
	t.Setenv("BLOG_DB_PATH", "/tmp/blogdb")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "/tmp/blogdb", cfg.DBPath)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ogmedia.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, errs := Load("")
	require.Empty(t, errs)

	assert.False(t, cfg.AllMedia)
	assert.Equal(t, DefaultMaxPages, cfg.MaxPages)
	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
all_media: true
user_agent: "bot/1"
max_pages: 5
format: markdown
`)
	cfg, errs := Load(path)
	require.Empty(t, errs)

	assert.True(t, cfg.AllMedia)
	assert.Equal(t, "bot/1", cfg.UserAgent)
	assert.Equal(t, 5, cfg.MaxPages)
	assert.Equal(t, "markdown", cfg.Format)
	assert.Equal(t, DefaultTimeoutSeconds, cfg.TimeoutSeconds)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "all_media: true\nmax_pages: 5\n")
	t.Setenv("OGMEDIA_ALL_MEDIA", "false")
	t.Setenv("OGMEDIA_MAX_PAGES", "7")
	t.Setenv("OGMEDIA_FORMAT", "PDF")

	cfg, errs := Load(path)
	require.Empty(t, errs)

	assert.False(t, cfg.AllMedia)
	assert.Equal(t, 7, cfg.MaxPages)
	assert.Equal(t, "pdf", cfg.Format)
}

func TestLoadCollectsErrors(t *testing.T) {
	t.Setenv("OGMEDIA_ALL_MEDIA", "maybe")
	t.Setenv("OGMEDIA_TIMEOUT_SECONDS", "soon")
	t.Setenv("OGMEDIA_FORMAT", "docx")

	_, errs := Load("")
	require.Len(t, errs, 3)
	assert.ErrorIs(t, errs[0], ErrInvalidAllMedia)
	assert.ErrorIs(t, errs[1], ErrInvalidTimeout)
	assert.ErrorIs(t, errs[2], ErrInvalidFormat)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, errs := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Nil(t, cfg)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "failed to load config file")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.MaxPages = 0
	cfg.TimeoutSeconds = -1

	errs := cfg.Validate()
	require.Len(t, errs, 2)
	assert.ErrorIs(t, errs[0], ErrInvalidTimeout)
	assert.ErrorIs(t, errs[1], ErrInvalidMaxPages)
}

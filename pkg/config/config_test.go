package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "https://tier4.jp", cfg.BaseURL)
	assert.Equal(t, EngineChromium, cfg.Engine)
	assert.True(t, cfg.Headless)
	assert.Equal(t, float64(30000), cfg.TimeoutMs)
	assert.Equal(t, 1280, cfg.Viewport.Width)
	assert.Equal(t, 720, cfg.Viewport.Height)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "e2e.yaml")
	content := `
base_url: https://staging.example.com
engine: firefox
headless: false
timeout_ms: 15000
viewport:
  width: 1920
  height: 1080
skip_links:
  - "Facebook*"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.com", cfg.BaseURL)
	assert.Equal(t, EngineFirefox, cfg.Engine)
	assert.False(t, cfg.Headless)
	assert.Equal(t, float64(15000), cfg.TimeoutMs)
	assert.Equal(t, 1920, cfg.Viewport.Width)
	assert.Equal(t, []string{"Facebook*"}, cfg.SkipLinks)

	// Unspecified fields keep their defaults.
	assert.Equal(t, DefaultArtifactsDir, cfg.ArtifactsDir)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsUnknownEngine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "e2e.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine: safari\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "safari")
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvBaseURL, "http://localhost:8080")
	t.Setenv(EnvBrowser, "webkit")
	t.Setenv(EnvHeadless, "false")
	t.Setenv(EnvArtifacts, "/tmp/shots")

	cfg := Default()
	require.NoError(t, FromEnv(cfg))
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, EngineWebKit, cfg.Engine)
	assert.False(t, cfg.Headless)
	assert.Equal(t, "/tmp/shots", cfg.ArtifactsDir)
}

func TestFromEnvBadHeadless(t *testing.T) {
	t.Setenv(EnvHeadless, "maybe")

	cfg := Default()
	err := FromEnv(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvHeadless)
}

func TestFromEnvBadEngine(t *testing.T) {
	t.Setenv(EnvBrowser, "netscape")

	cfg := Default()
	assert.Error(t, FromEnv(cfg))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty base URL",
			mutate:  func(c *Config) { c.BaseURL = "" },
			wantErr: true,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.TimeoutMs = 0 },
			wantErr: true,
		},
		{
			name:    "negative viewport",
			mutate:  func(c *Config) { c.Viewport.Height = -1 },
			wantErr: true,
		},
		{
			name:    "bad skip pattern",
			mutate:  func(c *Config) { c.SkipLinks = []string{"[unclosed"} },
			wantErr: true,
		},
		{
			name:   "firefox engine",
			mutate: func(c *Config) { c.Engine = EngineFirefox },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSkipMatcher(t *testing.T) {
	cfg := Default()
	cfg.SkipLinks = []string{"Facebook*", "*(JA)"}

	skip, err := cfg.SkipMatcher()
	require.NoError(t, err)

	assert.True(t, skip("Facebook"))
	assert.True(t, skip("Facebook (corporate)"))
	assert.True(t, skip("Privacy Policy (JA)"))
	assert.False(t, skip("LinkedIn"))
	assert.False(t, skip("Privacy Policy"))
}

func TestSkipMatcherEmpty(t *testing.T) {
	skip, err := Default().SkipMatcher()
	require.NoError(t, err)
	assert.False(t, skip("anything"))
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/italia-opensource/awesome-italia-opensource/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, "italia-opensource/awesome-italia-opensource", cfg.Identity.FullName())
	assert.Equal(t, "https://github.com/italia-opensource/awesome-italia-opensource", cfg.Identity.URL())
	assert.False(t, cfg.Verbose)
	assert.NoError(t, cfg.Validate())
}

func TestLoadWithEnv_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadWithEnv("", noEnv)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadWithEnv_ValidYAML(t *testing.T) {
	content := `
root: /srv/awesome
verbose: true
watch_debounce: 2s
identity:
  organization: acme
  repository: awesome-acme
`
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadWithEnv(tmpFile, noEnv)
	require.NoError(t, err)

	assert.Equal(t, "/srv/awesome", cfg.Root)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 2*time.Second, cfg.WatchDebounce)
	assert.Equal(t, "acme/awesome-acme", cfg.Identity.FullName())
}

func TestLoadWithEnv_PartialYAMLKeepsDefaults(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("verbose: true\n"), 0644))

	cfg, err := LoadWithEnv(tmpFile, noEnv)
	require.NoError(t, err)

	assert.True(t, cfg.Verbose)
	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, "italia-opensource", cfg.Identity.Organization)
}

func TestLoadWithEnv_InvalidYAML(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("root: [unterminated"), 0644))

	cfg, err := LoadWithEnv(tmpFile, noEnv)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoadWithEnv_FileNotFound(t *testing.T) {
	cfg, err := LoadWithEnv("/nonexistent/path/config.yaml", noEnv)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadWithEnv_EnvOverrides(t *testing.T) {
	env := map[string]string{
		EnvRoot:    "/from/env",
		EnvVerbose: "true",
	}

	cfg, err := LoadWithEnv("", func(key string) string { return env[key] })
	require.NoError(t, err)

	assert.Equal(t, "/from/env", cfg.Root)
	assert.True(t, cfg.Verbose)
}

func TestLoadWithEnv_InvalidVerbose(t *testing.T) {
	_, err := LoadWithEnv("", func(key string) string {
		if key == EnvVerbose {
			return "sometimes"
		}
		return ""
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvVerbose)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "empty root", mutate: func(c *Config) { c.Root = "" }, wantErr: "Root"},
		{name: "empty organization", mutate: func(c *Config) { c.Identity.Organization = "" }, wantErr: "Organization"},
		{name: "empty repository", mutate: func(c *Config) { c.Identity.Repository = "" }, wantErr: "Repository"},
		{name: "negative debounce", mutate: func(c *Config) { c.WatchDebounce = -time.Second }, wantErr: "WatchDebounce"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDomainDirectories(t *testing.T) {
	cfg := Default()
	cfg.Root = "/repo"

	assert.Equal(t, filepath.Join("/repo", "awesome", "opensource", "data"), cfg.DataDir(types.DomainOpenSource))
	assert.Equal(t, filepath.Join("/repo", "awesome", "companies"), cfg.OutputDir(types.DomainCompanies))
}

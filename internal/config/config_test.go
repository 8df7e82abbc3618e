package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "bx", cfg.Platform.CLI)
	assert.Equal(t, "registry.ng.bluemix.net", cfg.Registry.Host)
	assert.Equal(t, "cloudantNoSQLDB", cfg.Database.Service)
	assert.Equal(t, "Lite", cfg.Database.Plan)
	assert.Equal(t, 8080, cfg.AppPort)
	assert.Equal(t, "manifest.yml", cfg.Manifest)
	assert.Equal(t, 60*time.Second, cfg.Poll.Interval)
	assert.Equal(t, uint(60), cfg.Poll.Attempts)
	assert.Len(t, cfg.SeedItems, 3)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kubedeploy.yaml")
	content := `
platform:
  cli: ibmcloud
registry:
  host: us.icr.io
poll:
  interval: 5s
  attempts: 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	// Overridden values.
	assert.Equal(t, "ibmcloud", cfg.Platform.CLI)
	assert.Equal(t, "us.icr.io", cfg.Registry.Host)
	assert.Equal(t, 5*time.Second, cfg.Poll.Interval)
	assert.Equal(t, uint(10), cfg.Poll.Attempts)

	// Defaults fill what the file left out.
	assert.Equal(t, "https://api.ng.bluemix.net", cfg.Platform.API)
	assert.Equal(t, "cloudantNoSQLDB", cfg.Database.Service)
	assert.Equal(t, "docker", cfg.DockerCLI)
	assert.Equal(t, 8080, cfg.AppPort)
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kubedeploy.toml")
	content := `
manifest = "app.yml"

[database]
plan = "Standard"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "app.yml", cfg.Manifest)
	assert.Equal(t, "Standard", cfg.Database.Plan)
	assert.Equal(t, "cloudantNoSQLDB", cfg.Database.Service)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kubedeploy.ini")
	require.NoError(t, os.WriteFile(path, []byte("x=1"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

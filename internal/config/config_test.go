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
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 1, cfg.JWT.ExpireHours)
	assert.Equal(t, 10, cfg.Security.BcryptCost)
	assert.False(t, cfg.Demo.Enabled)
	assert.Empty(t, cfg.JWT.Secret)
}

func TestLoadFileValues(t *testing.T) {
	cfg, err := load(writeConfig(t, `
server:
  port: 5000
jwt:
  secret: file-secret
`))
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
}

func TestEnvOverridesNestedKeys(t *testing.T) {
	t.Setenv("BB_SERVER_PORT", "9999")
	t.Setenv("BB_DEMO_ENABLED", "true")

	cfg, err := load(writeConfig(t, `
server:
  port: 5000
`))
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port, "env must beat the file value")
	assert.True(t, cfg.Demo.Enabled)
}

func TestEnvProvidesJWTSecret(t *testing.T) {
	t.Setenv("BB_JWT_SECRET", "from-env")

	cfg, err := load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.JWT.Secret,
		"BB_JWT_SECRET must work with no jwt section in the file")
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

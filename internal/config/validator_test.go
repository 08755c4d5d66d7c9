package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv_NoVersionDeclared(t *testing.T) {
	os.Unsetenv("ENV_SCHEMA_VERSION")

	err := ValidateEnv()
	assert.NoError(t, err, "Empty environment is valid; everything defaults")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_VersionMatch(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)

	err := ValidateEnv()
	assert.NoError(t, err)
}

func TestValidateEnvWithWarnings_NonLoopbackHost(t *testing.T) {
	os.Unsetenv("ENV_SCHEMA_VERSION")
	t.Setenv("HOST", "0.0.0.0")
	os.Unsetenv("DISCORD_WEBHOOK_TOKEN")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err, "Should not error even with warnings")
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "beyond loopback")
}

func TestValidateEnvWithWarnings_PlaceholderToken(t *testing.T) {
	os.Unsetenv("ENV_SCHEMA_VERSION")
	os.Unsetenv("HOST")
	t.Setenv("DISCORD_WEBHOOK_TOKEN", "paste_webhook_token_here")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "DISCORD_WEBHOOK_TOKEN")
}

func TestValidateEnvWithWarnings_CleanEnvironment(t *testing.T) {
	os.Unsetenv("ENV_SCHEMA_VERSION")
	os.Unsetenv("HOST")
	os.Unsetenv("DISCORD_WEBHOOK_TOKEN")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

package config

import (
	"fmt"
	"os"
)

// ExpectedEnvSchemaVersion is the .env schema version the daemon expects
const ExpectedEnvSchemaVersion = "1.0"

// ValidateEnv checks the .env schema version when one is declared. Every
// setting has a default, so an empty environment is valid; a declared
// version from an outdated .env file is not.
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return nil
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like exposing the API beyond localhost)
func ValidateEnvWithWarnings() ([]string, error) {
	// First do the critical validation
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	// The API has no authentication; binding beyond loopback exposes it
	// to the local network.
	host := os.Getenv("HOST")
	if host != "" && host != "127.0.0.1" && host != "localhost" && host != "::1" {
		warnings = append(warnings, fmt.Sprintf("HOST=%s binds the API beyond loopback - local frontends only need 127.0.0.1", host))
	}

	if os.Getenv("DISCORD_WEBHOOK_TOKEN") == "paste_webhook_token_here" {
		warnings = append(warnings, "DISCORD_WEBHOOK_TOKEN appears to be using the example value - copy the token from your Discord webhook URL")
	}

	return warnings, nil
}

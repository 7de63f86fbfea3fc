package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists the environment variables that must be set for a storage driver
var RequiredEnvVars = map[string][]string{
	StorageMemory: {"ENV_SCHEMA_VERSION"},
	StorageSQLite: {"ENV_SCHEMA_VERSION", "SQLITE_PATH"},
	StoragePostgres: {
		"ENV_SCHEMA_VERSION",
		"DB_USER",
		"DB_PASSWORD",
		"DB_HOST",
		"DB_PORT",
		"DB_NAME",
	},
}

// ValidateEnv checks that all required environment variables for the
// configured STORAGE_DRIVER are set and that the schema version matches
func ValidateEnv() error {
	// Check schema version first
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	driver := getEnv("STORAGE_DRIVER", StorageMemory)
	required, ok := RequiredEnvVars[driver]
	if !ok {
		return fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
	}

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("STORAGE_DRIVER") == StoragePostgres && os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if os.Getenv("RNG_SEED") != "" && os.Getenv("RNG_SEED") != "0" && os.Getenv("ENVIRONMENT") == "prod" {
		warnings = append(warnings, "RNG_SEED is fixed in production - encounter outcomes will repeat across restarts")
	}

	return warnings, nil
}

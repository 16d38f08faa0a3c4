package config

import (
	"fmt"
	"os"
	"time"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// ValidateEnv checks the optional .env schema marker. An absent marker is
// accepted; a present one must match.
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

// ValidateEnvWithWarnings checks the loaded configuration and returns warnings
// for settings that work but are probably not what the operator wants
func ValidateEnvWithWarnings(cfg *Config) ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if cfg.StorageDriver == StoragePostgres && cfg.DBPassword == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if cfg.StorageDriver == StorageMemory {
		warnings = append(warnings, "STORAGE_DRIVER is memory - progress is lost when the process exits")
	}

	if cfg.TickInterval > time.Second {
		warnings = append(warnings, fmt.Sprintf("TICK_INTERVAL %s is longer than one second - production will look choppy", cfg.TickInterval))
	}

	if cfg.PricingPolicy != DefaultPricingPolicy {
		warnings = append(warnings, fmt.Sprintf("PRICING_POLICY %s differs from the canonical %s - existing saves will price differently", cfg.PricingPolicy, DefaultPricingPolicy))
	}

	return warnings, nil
}

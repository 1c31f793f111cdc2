package config

import "fmt"

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is usable.
func ValidateConfig(cfg *Config) error {
	if cfg.ServerPort == "" {
		return ValidationError{Field: "ServerPort", Message: "must not be empty"}
	}

	switch cfg.DBDriver {
	case "postgres":
		if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBName == "" {
			return ValidationError{Field: "DBDriver", Message: "postgres requires DB_HOST, DB_PORT and DB_NAME"}
		}
	case "sqlite":
		if cfg.DBPath == "" {
			return ValidationError{Field: "DBPath", Message: "sqlite requires DB_PATH"}
		}
	default:
		return ValidationError{Field: "DBDriver", Message: fmt.Sprintf("unknown driver %q", cfg.DBDriver)}
	}

	if cfg.AnalysisDelay < 0 {
		return ValidationError{Field: "AnalysisDelay", Message: "must not be negative"}
	}

	return nil
}

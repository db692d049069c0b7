package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

const (
	// Discord tokens are typically 50+ characters
	minTokenLength = 50

	minLogRotationValue = 1
)

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// Validate checks every configuration value and returns all failures at once,
// joined with errors.Join:
//   - Token: at least 50 characters
//   - DiscordGuildID: empty or a numeric snowflake
//   - Logging.Level: one of debug, info, warn, error
//   - Logging rotation: size, backups and age at least 1 when a log file is set
func (c *Config) Validate() error {
	var errs []error

	if err := c.validateToken(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateGuildID(); err != nil {
		errs = append(errs, err)
	}

	if err := c.Logging.validate(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %w", errors.Join(errs...))
	}

	return nil
}

func (c *Config) validateToken() error {
	if c.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required but not set")
	}

	if len(c.Token) < minTokenLength {
		return fmt.Errorf(
			"DISCORD_TOKEN appears invalid (too short: %d chars, expected %d+)",
			len(c.Token), minTokenLength,
		)
	}

	return nil
}

func (c *Config) validateGuildID() error {
	if c.DiscordGuildID == "" {
		return nil
	}

	for _, r := range c.DiscordGuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("DISCORD_GUILD_ID must be a numeric guild ID, got %q", c.DiscordGuildID)
		}
	}

	return nil
}

func (l LoggingConfig) validate() error {
	var errs []error

	if !slices.Contains(logLevels, strings.ToLower(strings.TrimSpace(l.Level))) {
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", l.Level))
	}

	if l.File != "" {
		rotation := []struct {
			key   string
			value int
		}{
			{"LOG_MAX_SIZE_MB", l.MaxSizeMB},
			{"LOG_MAX_BACKUPS", l.MaxBackups},
			{"LOG_MAX_AGE_DAYS", l.MaxAgeDays},
		}
		for _, r := range rotation {
			if r.value < minLogRotationValue {
				errs = append(errs, fmt.Errorf("%s must be at least %d, got %d", r.key, minLogRotationValue, r.value))
			}
		}
	}

	return errors.Join(errs...)
}

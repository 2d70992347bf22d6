package config

import (
	"errors"
	"fmt"
	"time"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateScheduling(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateScheduling() error {
	if _, err := time.LoadLocation(c.Scheduling.Timezone); err != nil {
		return fmt.Errorf("scheduling.timezone %q: %w", c.Scheduling.Timezone, err)
	}
	if len(c.Scheduling.Windows) == 0 {
		return errors.New("scheduling.windows must define at least one window")
	}
	for key, window := range c.Scheduling.Windows {
		if window.Weekday < 0 || window.Weekday > 6 {
			return fmt.Errorf("scheduling.windows.%s.weekday must be 0 (Monday) through 6 (Sunday), got %d", key, window.Weekday)
		}
		if _, err := time.Parse("15:04", window.Time); err != nil {
			return fmt.Errorf("scheduling.windows.%s.time must be HH:MM, got %q", key, window.Time)
		}
		if window.ToleranceMin <= 0 {
			return fmt.Errorf("scheduling.windows.%s.tolerance_min must be positive, got %d", key, window.ToleranceMin)
		}
	}
	return nil
}

package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeCredentials(); err != nil {
		return err
	}
	c.normalizeLogging()
	c.normalizeScheduling()
	c.normalizeReddit()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.InputDir) == "" {
		c.Paths.InputDir = defaultInputDir
	}
	if c.Paths.InputDir, err = ExpandPath(c.Paths.InputDir); err != nil {
		return fmt.Errorf("paths.input_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = ExpandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = ExpandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeCredentials() error {
	var err error
	if strings.TrimSpace(c.YouTube.ClientSecretsFile) != "" {
		if c.YouTube.ClientSecretsFile, err = ExpandPath(c.YouTube.ClientSecretsFile); err != nil {
			return fmt.Errorf("youtube.client_secrets_file: %w", err)
		}
	}
	if strings.TrimSpace(c.YouTube.TokenFile) != "" {
		if c.YouTube.TokenFile, err = ExpandPath(c.YouTube.TokenFile); err != nil {
			return fmt.Errorf("youtube.token_file: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeScheduling() {
	c.Scheduling.Timezone = strings.TrimSpace(c.Scheduling.Timezone)
	if c.Scheduling.Timezone == "" {
		c.Scheduling.Timezone = defaultTimezone
	}
	if len(c.Scheduling.Windows) == 0 {
		c.Scheduling.Windows = Default().Scheduling.Windows
	}
	for key, window := range c.Scheduling.Windows {
		window.Time = strings.TrimSpace(window.Time)
		if window.ToleranceMin == 0 {
			window.ToleranceMin = defaultWindowToleranceMin
		}
		c.Scheduling.Windows[key] = window
	}
}

func (c *Config) normalizeReddit() {
	c.Reddit.DefaultSubreddit = strings.TrimPrefix(strings.TrimSpace(c.Reddit.DefaultSubreddit), "r/")
	if c.Reddit.DefaultSubreddit == "" {
		c.Reddit.DefaultSubreddit = defaultRedditSubreddit
	}
}

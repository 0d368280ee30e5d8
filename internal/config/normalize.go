package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizePresentation()
	c.normalizeVisual()
	c.normalizeLogging()
	if c.Watch.DebounceMillis <= 0 {
		c.Watch.DebounceMillis = defaultDebounceMillis
	}
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv(envDataDir); ok && strings.TrimSpace(value) != "" {
		c.Paths.DataDir = strings.TrimSpace(value)
	}
	fields := []struct {
		name  string
		value *string
		def   string
	}{
		{"paths.data_dir", &c.Paths.DataDir, defaultDataDir},
		{"paths.preview_dir", &c.Paths.PreviewDir, defaultPreviewDir},
		{"paths.state_file", &c.Paths.StateFile, defaultStateFile},
		{"paths.log_dir", &c.Paths.LogDir, defaultLogDir},
	}
	for _, field := range fields {
		if strings.TrimSpace(*field.value) == "" {
			*field.value = field.def
		}
		expanded, err := expandPath(strings.TrimSpace(*field.value))
		if err != nil {
			return fmt.Errorf("%s: %w", field.name, err)
		}
		*field.value = expanded
	}
	return nil
}

func (c *Config) normalizePresentation() {
	c.Presentation.Locale = strings.TrimSpace(c.Presentation.Locale)
	if c.Presentation.Locale == "" {
		c.Presentation.Locale = defaultLocale
	}
}

func (c *Config) normalizeVisual() {
	if c.Visual.Colors == nil {
		c.Visual.Colors = defaultColors()
	}
	if c.Visual.Fonts == nil {
		c.Visual.Fonts = defaultFonts()
	}
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

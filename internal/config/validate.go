package config

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// ErrInvalid marks configuration validation failures.
var ErrInvalid = errors.New("invalid configuration")

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePresentation(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePresentation() error {
	if c.Presentation.PageSize < 1 {
		return fmt.Errorf("%w: presentation.page_size must be at least 1, got %d", ErrInvalid, c.Presentation.PageSize)
	}
	if _, err := language.Parse(c.Presentation.Locale); err != nil {
		return fmt.Errorf("%w: presentation.locale %q: %v", ErrInvalid, c.Presentation.Locale, err)
	}
	if c.Presentation.NamesPrecedence < 0 {
		return fmt.Errorf("%w: presentation.names_precedence must not be negative", ErrInvalid)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format must be console or json, got %q", ErrInvalid, c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level must be debug, info, warn or error, got %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}

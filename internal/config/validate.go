package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateImport(); err != nil {
		return err
	}
	if err := c.validateGallery(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.VaultDir == "" {
		return errors.New("paths.vault_dir must be set")
	}
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	if c.Paths.VaultDir == c.Paths.DataDir {
		return errors.New("paths.vault_dir and paths.data_dir must differ")
	}
	return nil
}

func (c *Config) validateImport() error {
	if c.Import.MinFreeMiB < 0 {
		return errors.New("import.min_free_mib must not be negative")
	}
	return nil
}

func (c *Config) validateGallery() error {
	if len(c.Gallery.ImageExtensions) == 0 {
		return errors.New("gallery.image_extensions must list at least one extension")
	}
	if c.Gallery.EventListLimit <= 0 {
		return errors.New("gallery.event_list_limit must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"mediavault/internal/config"
	"mediavault/internal/eventstore"
	"mediavault/internal/gallery"
	"mediavault/internal/importer"
	"mediavault/internal/logging"
	"mediavault/internal/metadata"
	"mediavault/internal/vault"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.Nop()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = logging.Nop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

func (c *commandContext) openStore() (*eventstore.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return eventstore.Open(cfg)
}

func (c *commandContext) vaultStore() (*vault.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return vault.New(cfg.Paths.VaultDir, cfg.Gallery.ImageExtensions), nil
}

func (c *commandContext) importService(store *eventstore.Store) (*importer.Service, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	vaultStore, err := c.vaultStore()
	if err != nil {
		return nil, err
	}
	return importer.New(cfg, store, vaultStore, c.ensureLogger()), nil
}

func (c *commandContext) galleryBrowser() (*gallery.Browser, error) {
	vaultStore, err := c.vaultStore()
	if err != nil {
		return nil, err
	}
	extractor := metadata.NewExtractor(c.ensureLogger())
	return gallery.New(vaultStore, extractor, c.ensureLogger()), nil
}

func (c *commandContext) withStore(fn func(*eventstore.Store) error) error {
	store, err := c.openStore()
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

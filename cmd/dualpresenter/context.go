package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"dualpresenter/internal/collation"
	"dualpresenter/internal/config"
	"dualpresenter/internal/deckio"
	"dualpresenter/internal/logging"
	"dualpresenter/internal/presentation"
	"dualpresenter/internal/previewcache"
	"dualpresenter/internal/session"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
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

// log returns the process logger tagged with the invocation's correlation id.
func (c *commandContext) log(ctx context.Context) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	if c.loggerErr != nil {
		return nil, c.loggerErr
	}
	return logging.WithContext(ctx, c.logger), nil
}

// loadEngine reads the data files and resolves the deck.
func (c *commandContext) loadEngine(ctx context.Context) (*presentation.Engine, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.log(ctx)
	if err != nil {
		return nil, err
	}
	return buildEngine(cfg, logger)
}

func buildEngine(cfg *config.Config, logger *slog.Logger) (*presentation.Engine, error) {
	data, err := deckio.Load(cfg.CardsFile(), cfg.NamesFile(), logger)
	if err != nil {
		return nil, fmt.Errorf("%w (run `dualpresenter data init` to create sample files)", err)
	}
	cmp, err := collation.ForLocale(cfg.Presentation.Locale)
	if err != nil {
		return nil, err
	}
	return presentation.New(presentation.Options{
		Names:      data.Names,
		Cards:      data.Cards,
		Distribute: cfg.Presentation.DistributeNames,
		PageSize:   cfg.Presentation.PageSize,
		Visual:     cfg.FingerprintVisual(),
		Comparator: cmp,
		Logger:     logger,
	}), nil
}

func (c *commandContext) sessionStore(ctx context.Context) (*session.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.log(ctx)
	if err != nil {
		return nil, err
	}
	return session.NewStore(cfg.Paths.StateFile, logger)
}

func (c *commandContext) withPreviews(ctx context.Context, fn func(*previewcache.Cache) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.log(ctx)
	if err != nil {
		return err
	}
	cache, err := previewcache.Open(ctx, cfg.Paths.PreviewDir, logger)
	if err != nil {
		return err
	}
	defer cache.Close()
	return fn(cache)
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

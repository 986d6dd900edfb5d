package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-anim/anim/sample"
	"github.com/cwbudde/algo-anim/internal/config"
)

type commandContext struct {
	configFlag   *string
	propertyFlag *string
	verboseFlag  *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, propertyFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		propertyFlag: propertyFlag,
		verboseFlag:  verboseFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// kind resolves the property kind from --property, falling back to the
// configured default.
func (c *commandContext) kind() (sample.Kind, error) {
	if c.propertyFlag != nil {
		if p := strings.TrimSpace(*c.propertyFlag); p != "" {
			return sample.ParseKind(p), nil
		}
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return sample.KindGeneric, err
	}
	return cfg.Kind(), nil
}

func (c *commandContext) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if c.verboseFlag != nil && *c.verboseFlag {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

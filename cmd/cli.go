package cmd

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sagikazarmark/probes/internal/config"
)

type Cli struct {
	config *config.Config
	logger *zap.Logger
}

func NewCli() *Cli {
	return &Cli{
		logger: zap.NewNop(),
	}
}

func (c *Cli) Init(cfg *config.Config, verbose bool) error {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	logConfig := zap.NewProductionConfig()
	logConfig.Level = zap.NewAtomicLevelAt(level)

	logger, err := logConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	c.config = cfg
	c.logger = logger

	return nil
}

func (c *Cli) Config() *config.Config {
	return c.config
}

func (c *Cli) Logger() *zap.Logger {
	return c.logger
}

// Close flushes buffered log entries.
func (c *Cli) Close() {
	_ = c.logger.Sync()
}

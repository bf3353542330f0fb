// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig configures logging.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	// Filename is a log file rotated by size. Empty logs to stderr.
	Filename   string `toml:"filename"`
	MaxSize    int    `toml:"max_size"`
	MaxDays    int    `toml:"max_days"`
	MaxBackups int    `toml:"max_backups"`
}

func (c LogConfig) level() (zap.AtomicLevel, error) {
	if c.Level == "" {
		return zap.NewAtomicLevelAt(zap.InfoLevel), nil
	}
	return zap.ParseAtomicLevel(c.Level)
}

func (c LogConfig) encoder() (zapcore.Encoder, error) {
	switch c.Format {
	case "", "console":
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewConsoleEncoder(ec), nil
	case "json":
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), nil
	}
	return nil, fmt.Errorf("unsupported log format: %s", c.Format)
}

func (c LogConfig) syncer() zapcore.WriteSyncer {
	if c.Filename == "" {
		return zapcore.Lock(os.Stderr)
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   c.Filename,
		MaxSize:    c.MaxSize,
		MaxAge:     c.MaxDays,
		MaxBackups: c.MaxBackups,
	})
}

// NewLogger returns the logger described by c.
func (c LogConfig) NewLogger() (*zap.Logger, error) {
	lvl, err := c.level()
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	enc, err := c.encoder()
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(enc, c.syncer(), lvl)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.FatalLevel)), nil
}

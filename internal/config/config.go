// Package config holds the configuration of the yams command.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v2"
)

// Logger configures the zap logger.
type Logger struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
	File     string `yaml:"file"`
}

// Config is the configuration file format.
type Config struct {
	// Wrap is the line length of encoded output. Zero disables
	// wrapping.
	Wrap int `yaml:"wrap"`
	// Separator is written between lines and after the last
	// line of encoded output. It must only contain whitespace.
	Separator string `yaml:"separator"`
	// Strict rejects encodings with non-zero padding bits.
	Strict bool   `yaml:"strict"`
	Logger Logger `yaml:"logger"`
}

var DefaultLoggerConfig = Logger{
	Level:    "info",
	Encoding: "console",
	File:     "stderr",
}

var Default = Config{
	Wrap:      76,
	Separator: "\n",
	Logger:    DefaultLoggerConfig,
}

// Load reads the YAML file at path on top of Default.
//
// An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "unable to load config file")
	}
	if err := yaml.UnmarshalStrict(raw, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "error parsing config file %q", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config file %q", path)
	}
	return cfg, nil
}

// Validate checks c for values the command cannot work with.
func (c Config) Validate() error {
	if c.Wrap < 0 {
		return errors.Errorf("wrap must not be negative, got %d", c.Wrap)
	}
	if strings.Trim(c.Separator, " \t\r\n") != "" {
		return errors.Errorf("separator must only contain whitespace, got %q", c.Separator)
	}
	return nil
}

// Build returns a logger configured by l.
func (l Logger) Build() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(l.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "unknown log level %q", l.Level)
	}

	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.EncodeDuration = zapcore.SecondsDurationEncoder

	cfg := zap.Config{
		Level:            level,
		Encoding:         l.Encoding,
		EncoderConfig:    enc,
		OutputPaths:      []string{l.File},
		ErrorOutputPaths: []string{"stderr"},
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}
	return logger, nil
}

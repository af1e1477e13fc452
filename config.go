package bytex

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/hengadev/errsx"

	"github.com/hengadev/bytex/internal/monitoring"
)

// Config holds the process-wide defaults used by the bytex command and by
// applications that prefer configuration over code.
type Config struct {
	Endian    Endian  `yaml:"endian"`
	HexMode   HexMode `yaml:"hex_mode"`
	Digest    Digest  `yaml:"digest"`
	LogLevel  string  `yaml:"log_level"`
	LogFormat string  `yaml:"log_format"`
}

// DefaultConfig returns a configuration with every field set to its default.
func DefaultConfig() Config {
	return Config{
		Endian:    DefaultEndian,
		HexMode:   DefaultHexMode,
		Digest:    DefaultDigest,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Validate checks every field and fills empty optional ones with their
// defaults. All problems are reported together.
func (c *Config) Validate() error {
	errs := errsx.Map{}

	if !c.Endian.IsValid() {
		errs.Set("endian", fmt.Sprintf("unknown byte order %s", c.Endian))
	}
	if !c.HexMode.IsValid() {
		errs.Set("hex_mode", fmt.Sprintf("unknown hex mode %s", c.HexMode))
	}

	if c.Digest == "" {
		c.Digest = DefaultDigest
	} else if !c.Digest.IsValid() {
		errs.Set("digest", fmt.Sprintf("unknown digest '%s'", c.Digest))
	}

	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	} else if _, err := monitoring.ParseLogLevel(c.LogLevel); err != nil {
		errs.Set("log_level", err)
	}

	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	} else if _, err := monitoring.ParseLogFormat(c.LogFormat); err != nil {
		errs.Set("log_format", err)
	}

	if !errs.IsEmpty() {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, errs.AsError())
	}
	return nil
}

// Logger builds a structured logger writing to w at the configured level
// and format. Call it on a validated Config.
func (c Config) Logger(w io.Writer, component string) *slog.Logger {
	level, _ := monitoring.ParseLogLevel(c.LogLevel)
	format, _ := monitoring.ParseLogFormat(c.LogFormat)
	return monitoring.NewLogger(monitoring.LoggerConfig{
		Level:     level,
		Format:    format,
		Output:    w,
		Component: component,
		Version:   Version,
	})
}

package bytex

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LoadConfigFromEnvironment builds a Config from the BYTEX_* environment
// variables. Variables already set in the process win over those in env
// files.
//
// With no arguments a .env file in the working directory is loaded when it
// exists. Explicit files must exist.
//
// Optional environment variables (defaults are applied if not set):
//   - BYTEX_ENDIAN: little, big or native (default: little)
//   - BYTEX_HEX_MODE: lower, upper, lower0x or upper0x (default: lower)
//   - BYTEX_DIGEST: digest used for hashing (default: sha256)
//   - BYTEX_LOG_LEVEL: debug, info, warn or error (default: info)
//   - BYTEX_LOG_FORMAT: json or text (default: text)
//
// Example usage:
//
//	cfg, err := bytex.LoadConfigFromEnvironment()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data, err := bytex.EncodeWith(v, cfg.Endian)
func LoadConfigFromEnvironment(envFiles ...string) (Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return Config{}, fmt.Errorf("%w: load env files: %w", ErrInvalidConfiguration, err)
		}
	} else if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: load %s: %w", ErrInvalidConfiguration, DefaultEnvFile, err)
	}

	cfg := DefaultConfig()

	if v := os.Getenv(EnvEndian); v != "" {
		e, err := ParseEndian(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvEndian, err)
		}
		cfg.Endian = e
	}
	if v := os.Getenv(EnvHexMode); v != "" {
		m, err := ParseHexMode(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvHexMode, err)
		}
		cfg.HexMode = m
	}
	if v := os.Getenv(EnvDigest); v != "" {
		d, err := ParseDigest(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvDigest, err)
		}
		cfg.Digest = d
	}
	cfg.LogLevel = getEnvOrDefault(EnvLogLevel, DefaultLogLevel)
	cfg.LogFormat = getEnvOrDefault(EnvLogFormat, DefaultLogFormat)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML configuration file. Keys absent from the file
// keep their defaults.
//
//	endian: big
//	hex_mode: upper0x
//	digest: blake3
//	log_level: debug
//	log_format: json
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: read config file: %w", ErrInvalidConfiguration, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: parse config file %s: %w", ErrInvalidConfiguration, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// getEnvOrDefault returns the value of an environment variable, or
// defaultValue when it is unset or empty.
func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

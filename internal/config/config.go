package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/tzalign"
	"github.com/oshokin/tzalign/internal/logger"
)

// Config holds settings shared by the tzalign binaries.
type Config struct {
	// DefaultTimezone is the IANA identifier assumed for naive inputs when no
	// explicit zone accompanies a request.
	DefaultTimezone string `yaml:"default_timezone"`
	// ListenAddress is the host:port the HTTP server binds to.
	ListenAddress string `yaml:"listen_addr"`
	// RequestTimeout bounds how long a single HTTP request may run.
	RequestTimeout time.Duration `yaml:"request_timeout"`
	// LogLevel is the minimum level for log output (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "tzalign-settings.yaml"

	// DefaultTimezone is assumed when the settings name no timezone.
	DefaultTimezone = "UTC"

	// DefaultListenAddress is the default HTTP bind address.
	DefaultListenAddress = ":8080"

	// DefaultRequestTimeout is the default bound on a single request.
	DefaultRequestTimeout = 10 * time.Second

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errUnknownLogLevel is returned when the log level string is not recognized.
	errUnknownLogLevel = errors.New("unknown log level")
)

// Load reads configuration from the provided path and validates essential
// fields. A missing file is not an error: the defaults are returned so the
// binaries run without any settings on disk.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			cfg := &Config{}
			if err := Validate(cfg); err != nil {
				return nil, err
			}

			return cfg, nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for well-formed fields and fills in
// defaults for the ones left empty.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.DefaultTimezone == "" {
		cfg.DefaultTimezone = DefaultTimezone
	}

	if _, err := tzalign.ResolveZone(cfg.DefaultTimezone); err != nil {
		return fmt.Errorf("invalid default timezone: %w", err)
	}

	if cfg.ListenAddress == "" {
		cfg.ListenAddress = DefaultListenAddress
	}

	if _, err := net.ResolveTCPAddr("tcp", cfg.ListenAddress); err != nil {
		return fmt.Errorf("invalid listen address: %w", err)
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.LogLevel == "" {
		return nil
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, cfg.LogLevel)
	}

	return nil
}

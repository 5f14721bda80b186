package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestValidate checks field validation and default filling.
func TestValidate(t *testing.T) {
	t.Parallel()

	// The zero config is valid and picks up every default.
	cfg := new(Config)
	require.NoError(t, Validate(cfg))
	require.Equal(t, DefaultTimezone, cfg.DefaultTimezone)
	require.Equal(t, DefaultListenAddress, cfg.ListenAddress)
	require.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)

	// Bad timezone.
	cfg = &Config{DefaultTimezone: "Mars/Olympus_Mons"}
	require.Error(t, Validate(cfg))

	// Bad listen address.
	cfg = &Config{ListenAddress: "bad:address"}
	require.Error(t, Validate(cfg))

	// Bad log level.
	cfg = &Config{LogLevel: "loud"}
	require.Error(t, Validate(cfg))

	// Fully specified.
	cfg = &Config{
		DefaultTimezone: "Europe/Zurich",
		ListenAddress:   "127.0.0.1:0",
		RequestTimeout:  time.Second,
		LogLevel:        "debug",
	}
	require.NoError(t, Validate(cfg))

	// Nil config.
	require.Error(t, Validate(nil))
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	cfg := &Config{
		DefaultTimezone: "Europe/Zurich",
		ListenAddress:   "127.0.0.1:8090",
		RequestTimeout:  3 * time.Second,
		LogLevel:        "warn",
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

// TestLoadMissingFile verifies a missing settings file yields the defaults.
func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultTimezone, cfg.DefaultTimezone)
	require.Equal(t, DefaultListenAddress, cfg.ListenAddress)
}

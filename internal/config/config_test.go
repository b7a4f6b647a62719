package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	// Keep the search for ./xmb.yaml away from the package directory.
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	fs := pflag.NewFlagSet("xmb", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return Resolve(fs, args)
}

func TestDefaults(t *testing.T) {
	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, "disk", cfg.App.Store)
	assert.Equal(t, "~/.local/state/xmb", cfg.App.StorePath)
	assert.Equal(t, "/dev/input/js0", cfg.App.Gamepad)
	assert.Equal(t, "standard", cfg.App.Mapping)
	assert.Equal(t, 60, cfg.App.FPS)
	assert.Equal(t, "bell", cfg.App.Sound)
	assert.False(t, cfg.App.ShowFooter)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.File)
	assert.Equal(t, "60", cfg.Flags["fps"])
}

func TestFlagsOverrideDefaults(t *testing.T) {
	cfg, err := load(t,
		"--store", "sqlite",
		"--store-path", "/tmp/xmb-state",
		"--category", "work",
		"--gamepad", "none",
		"--mapping", "linux",
		"--fps", "30",
		"--sound", "none",
		"--footer",
		"--width", "90",
		"--height", "30",
		"--trace",
		"--log-file", "/tmp/xmb.log",
		"--log-level", "DEBUG",
	)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.App.Store)
	assert.Equal(t, "/tmp/xmb-state", cfg.App.StorePath)
	assert.Equal(t, "work", cfg.App.Category)
	assert.Equal(t, "none", cfg.App.Gamepad)
	assert.Equal(t, "linux", cfg.App.Mapping)
	assert.Equal(t, 30, cfg.App.FPS)
	assert.Equal(t, "none", cfg.App.Sound)
	assert.True(t, cfg.App.ShowFooter)
	assert.Equal(t, 90, cfg.App.Width)
	assert.Equal(t, 30, cfg.App.Height)
	assert.True(t, cfg.Logging.Trace)
	assert.Equal(t, "/tmp/xmb.log", cfg.Logging.FilePath)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Contains(t, cfg.Args, "--footer")
}

func TestEphemeralSelectsMemoryStore(t *testing.T) {
	cfg, err := load(t, "--store", "sqlite", "--ephemeral")
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.App.Store)
}

func TestEnvironmentFallback(t *testing.T) {
	t.Setenv("XMB_FPS", "24")
	t.Setenv("XMB_STORE", "memory")
	t.Setenv("XMB_LOG_LEVEL", "warn")
	t.Setenv("XMB_FOOTER", "true")
	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.App.FPS)
	assert.Equal(t, "memory", cfg.App.Store)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.True(t, cfg.App.ShowFooter)
}

func TestFlagBeatsEnvironment(t *testing.T) {
	t.Setenv("XMB_FPS", "24")
	cfg, err := load(t, "--fps", "120")
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.App.FPS)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sound: none\nfps: 48\nstore-path: /srv/xmb\n"), 0o644))

	cfg, err := load(t, "--config", path, "--fps", "90")
	require.NoError(t, err)
	assert.Equal(t, path, cfg.File)
	assert.Equal(t, "none", cfg.App.Sound)
	assert.Equal(t, "/srv/xmb", cfg.App.StorePath)
	assert.Equal(t, 90, cfg.App.FPS, "flag wins over file")
}

func TestConfigFileDiscoveredInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "xmb.yaml"), []byte("mapping: linux\n"), 0o644))

	fs := pflag.NewFlagSet("xmb", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(nil))
	cfg, err := Resolve(fs, nil)
	require.NoError(t, err)
	assert.Equal(t, "linux", cfg.App.Mapping)
	assert.NotEmpty(t, cfg.File)
}

func TestMissingExplicitConfigFile(t *testing.T) {
	_, err := load(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
}

func TestValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"store", []string{"--store", "redis"}, "store must be one of"},
		{"mapping", []string{"--mapping", "arcade"}, "mapping must be one of"},
		{"fps low", []string{"--fps", "0"}, "fps must be >= 1"},
		{"fps high", []string{"--fps", "241"}, "fps must be <= 240"},
		{"sound", []string{"--sound", "midi"}, "sound must be one of"},
		{"width", []string{"--width", "-1"}, "width must be >= 0"},
		{"height", []string{"--height", "-5"}, "height must be >= 0"},
		{"level", []string{"--log-level", "loud"}, "logLevel must be one of"},
		{"gamepad", []string{"--gamepad", ""}, "gamepad is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := load(t, tc.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

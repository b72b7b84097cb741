package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBinder wraps a pflag.FlagSet to satisfy the flagBinder interface.
type fakeBinder struct {
	fs *pflag.FlagSet
}

func (f *fakeBinder) Flags() *pflag.FlagSet { return f.fs }

// newFlagBinder creates a FlagSet with all config flags registered and args parsed.
func newFlagBinder(t *testing.T, defaults Config, args ...string) *fakeBinder {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs, defaults)
	require.NoError(t, fs.Parse(args))

	return &fakeBinder{fs: fs}
}

// writeConfig writes content to a temporary file with the given name.
func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// --- DefaultConfig ---

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Runtime.Parallel)
	assert.Equal(t, 0, cfg.Runtime.Workers)
	assert.Equal(t, parallel.DefaultConfig().MinChunkSize, cfg.Runtime.MinChunkSize)
	assert.Equal(t, 6, cfg.Print.Width)
	assert.Equal(t, -1, cfg.Print.Precision)
	assert.NoError(t, cfg.Validate())
}

// --- RegisterFlags ---

func TestRegisterFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs, DefaultConfig())

	checks := []struct {
		flag string
		want string
	}{
		{"log-level", "info"},
		{"runtime-parallel", "true"},
		{"runtime-workers", "0"},
		{"print-width", "6"},
		{"print-precision", "-1"},
	}

	for _, c := range checks {
		f := fs.Lookup(c.flag)
		if f == nil {
			t.Errorf("flag %q not registered", c.flag)
			continue
		}

		if f.DefValue != c.want {
			t.Errorf("flag %q default = %q; want %q", c.flag, f.DefValue, c.want)
		}
	}

	// Every bound key has a flag.
	for name := range flagKeys {
		assert.NotNil(t, fs.Lookup(name), "flag %q", name)
	}
}

// --- Load ---

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	defaults := DefaultConfig()

	cfg, err := Load(LoadOptions{
		Cmd:      newFlagBinder(t, defaults),
		Defaults: defaults,
	})
	require.NoError(t, err)
	assert.Equal(t, defaults, cfg)
}

func TestLoad_FlagOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	defaults := DefaultConfig()

	cfg, err := Load(LoadOptions{
		Cmd: newFlagBinder(t, defaults,
			"--log-level=debug",
			"--runtime-parallel=false",
			"--runtime-workers=3",
			"--print-precision=2",
		),
		Defaults: defaults,
	})
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Runtime.Parallel)
	assert.Equal(t, 3, cfg.Runtime.Workers)
	assert.Equal(t, 2, cfg.Print.Precision)
	assert.Equal(t, defaults.Print.Width, cfg.Print.Width)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NDARRAY_LOG_LEVEL", "warn")
	t.Setenv("NDARRAY_RUNTIME_WORKERS", "5")
	t.Setenv("NDARRAY_PRINT_WIDTH", "10")

	cfg, err := Load(LoadOptions{
		Defaults: DefaultConfig(),
	})
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 5, cfg.Runtime.Workers)
	assert.Equal(t, 10, cfg.Print.Width)
}

func TestLoad_ConfigFile(t *testing.T) {
	cfgFile := writeConfig(t, "ndarray.yaml", `
log_level: error
runtime:
  workers: 16
  min_chunk_size: 8
print:
  width: 9
  precision: 3
`)

	defaults := DefaultConfig()
	cfg, err := Load(LoadOptions{
		Cmd:        newFlagBinder(t, defaults),
		ConfigFile: cfgFile,
		Defaults:   defaults,
	})
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, 16, cfg.Runtime.Workers)
	assert.Equal(t, 8, cfg.Runtime.MinChunkSize)
	assert.Equal(t, 9, cfg.Print.Width)
	assert.Equal(t, 3, cfg.Print.Precision)
	assert.True(t, cfg.Runtime.Parallel)
}

func TestLoad_FlagBeatsConfigFile(t *testing.T) {
	cfgFile := writeConfig(t, "ndarray.yaml", "print:\n  width: 9\n")

	defaults := DefaultConfig()
	cfg, err := Load(LoadOptions{
		Cmd:        newFlagBinder(t, defaults, "--print-width=4"),
		ConfigFile: cfgFile,
		Defaults:   defaults,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Print.Width)
}

func TestLoad_ConfigFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ndarray.yaml"), []byte("log_level: debug\n"), 0o644))
	t.Chdir(dir)

	cfg, err := Load(LoadOptions{Defaults: DefaultConfig()})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidConfigFile(t *testing.T) {
	cfgFile := writeConfig(t, "bad.yaml", ":\t:bad yaml:::")

	_, err := Load(LoadOptions{
		ConfigFile: cfgFile,
		Defaults:   DefaultConfig(),
	})
	assert.Error(t, err)
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	_, err := Load(LoadOptions{
		ConfigFile: "/nonexistent/path/ndarray.yaml",
		Defaults:   DefaultConfig(),
	})
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name string
		args []string
	}{
		{"log level", []string{"--log-level=loud"}},
		{"workers", []string{"--runtime-workers=-1"}},
		{"min chunk", []string{"--runtime-min-chunk=-4"}},
		{"width", []string{"--print-width=-2"}},
		{"precision", []string{"--print-precision=-3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defaults := DefaultConfig()
			_, err := Load(LoadOptions{
				Cmd:      newFlagBinder(t, defaults, tt.args...),
				Defaults: defaults,
			})
			assert.Error(t, err)
		})
	}
}

// --- Conversions ---

func TestToParallel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Runtime.Workers = 3
	cfg.Runtime.MinChunkSize = 16

	par := cfg.ToParallel()
	assert.Equal(t, parallel.Config{Enabled: true, NumWorkers: 3, MinChunkSize: 16}, par)

	cfg.Runtime.Workers = 0
	assert.Positive(t, cfg.ToParallel().NumWorkers)

	cfg.Runtime.Parallel = false
	assert.Equal(t, parallel.Sequential(), cfg.ToParallel())
}

func TestPrintOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Print.Width = 3
	cfg.Print.Precision = 1

	opts := cfg.PrintOptions()
	assert.Equal(t, 3, opts.Width)
	assert.Equal(t, 1, opts.Precision)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"info", slog.LevelInfo, false},
		{"DEBUG", slog.LevelDebug, false},
		{"warning", slog.LevelWarn, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Package config loads ndarray settings from defaults, flags, environment
// variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/printer"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. NDARRAY_LOG_LEVEL.
const EnvPrefix = "NDARRAY"

type Config struct {
	LogLevel string        `mapstructure:"log_level"`
	Runtime  RuntimeConfig `mapstructure:"runtime"`
	Print    PrintConfig   `mapstructure:"print"`
}

type RuntimeConfig struct {
	Parallel     bool `mapstructure:"parallel"`
	Workers      int  `mapstructure:"workers"`
	MinChunkSize int  `mapstructure:"min_chunk_size"`
}

type PrintConfig struct {
	Width     int `mapstructure:"width"`
	Precision int `mapstructure:"precision"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"log-level":         "log_level",
	"runtime-parallel":  "runtime.parallel",
	"runtime-workers":   "runtime.workers",
	"runtime-min-chunk": "runtime.min_chunk_size",
	"print-width":       "print.width",
	"print-precision":   "print.precision",
}

func DefaultConfig() Config {
	par := parallel.DefaultConfig()
	opts := printer.DefaultOptions()

	return Config{
		LogLevel: "info",
		Runtime: RuntimeConfig{
			Parallel:     true,
			Workers:      0,
			MinChunkSize: par.MinChunkSize,
		},
		Print: PrintConfig{
			Width:     opts.Width,
			Precision: opts.Precision,
		},
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
	fs.Bool("runtime-parallel", defaults.Runtime.Parallel, "Spread matmul and conv1d kernels across goroutines")
	fs.Int("runtime-workers", defaults.Runtime.Workers, "Maximum kernel goroutines (0 = number of CPUs)")
	fs.Int("runtime-min-chunk", defaults.Runtime.MinChunkSize, "Minimum output elements per goroutine")
	fs.Int("print-width", defaults.Print.Width, "Column width for printed elements")
	fs.Int("print-precision", defaults.Print.Precision, "Digits after the decimal point for floats (-1 = shortest)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	replacer := strings.NewReplacer("-", "_", ".", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("ndarray")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Runtime.Workers < 0 {
		return fmt.Errorf("runtime.workers must be >= 0, got %d", c.Runtime.Workers)
	}
	if c.Runtime.MinChunkSize < 0 {
		return fmt.Errorf("runtime.min_chunk_size must be >= 0, got %d", c.Runtime.MinChunkSize)
	}
	if c.Print.Width < 0 {
		return fmt.Errorf("print.width must be >= 0, got %d", c.Print.Width)
	}
	if c.Print.Precision < -1 {
		return fmt.Errorf("print.precision must be >= -1, got %d", c.Print.Precision)
	}
	return nil
}

// ToParallel converts the runtime section into kernel loop settings.
func (c Config) ToParallel() parallel.Config {
	if !c.Runtime.Parallel {
		return parallel.Sequential()
	}
	return parallel.Config{
		Enabled:      true,
		NumWorkers:   c.Runtime.Workers,
		MinChunkSize: c.Runtime.MinChunkSize,
	}.Normalize()
}

// PrintOptions converts the print section into printer options.
func (c Config) PrintOptions() printer.Options {
	return printer.Options{
		Width:     c.Print.Width,
		Precision: c.Print.Precision,
	}
}

// ParseLogLevel maps a level name to its slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("runtime.parallel", c.Runtime.Parallel)
	v.SetDefault("runtime.workers", c.Runtime.Workers)
	v.SetDefault("runtime.min_chunk_size", c.Runtime.MinChunkSize)
	v.SetDefault("print.width", c.Print.Width)
	v.SetDefault("print.precision", c.Print.Precision)
}

// bindFlags binds each known flag present in fs to its config key, so a flag
// only overrides the file and environment when it was set explicitly.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %q: %w", name, err)
		}
	}
	return nil
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/born-ml/ndarray/backend/cpu"
	"github.com/born-ml/ndarray/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	activeCfg config.Config
	cfgLoaded bool
)

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:           "ndarray",
		Short:         "Multidimensional array toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			activeCfg = loaded
			cfgLoaded = true
			setupLogger(loaded.LogLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newDemoCmd())
	cmd.AddCommand(newStridesCmd())
	cmd.AddCommand(newEvalCmd())

	return cmd
}

// setupLogger configures the process-wide slog default logger.
func setupLogger(levelStr string) {
	lvl, err := config.ParseLogLevel(levelStr)
	if err != nil {
		lvl = slog.LevelInfo
	}
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}

func requireConfig() (config.Config, error) {
	if !cfgLoaded {
		return config.Config{}, fmt.Errorf("configuration not loaded")
	}
	return activeCfg, nil
}

// newBackend builds the CPU backend described by the runtime settings.
func newBackend(cfg config.Config) *cpu.Backend {
	par := cfg.ToParallel()
	slog.Debug("backend ready",
		"parallel", par.Enabled,
		"workers", par.NumWorkers,
		"min_chunk", par.MinChunkSize,
	)
	return cpu.NewWithConfig(par)
}

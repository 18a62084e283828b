// Package cmd wires the command line interface.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/johnqh/sudojo-lib/internal/config"
)

var (
	cfgPath    string
	logLevel   string
	cpuProfile string

	cfg      config.Config
	log      = logrus.New()
	profiler interface{ Stop() }
)

var rootCmd = &cobra.Command{
	Use:          "sudojo",
	Short:        "Sudoku board tooling: scramble, inspect, and track play sessions",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}

		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q", cfg.LogLevel)
		}
		log.SetLevel(level)
		log.SetOutput(cmd.ErrOrStderr())

		if cpuProfile != "" {
			profiler = profile.Start(
				profile.CPUProfile,
				profile.ProfilePath(cpuProfile),
				profile.NoShutdownHook,
			)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
			profiler = nil
		}
	},
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".sudojo", "config.yaml")
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath(), "Path to the config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&cpuProfile, "cpuprofile", "", "Write a CPU profile into this directory")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

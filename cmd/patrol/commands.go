package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"patrol/internal/config"
)

var (
	configPath string
	logLevel   string
	workers    int
	markLoops  bool

	cfg    = config.Default()
	logger = slog.Default()

	rootCmd = &cobra.Command{
		Use:           "patrol",
		Short:         "Simulate a guard patrolling a grid",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
	}

	visitedCmd = &cobra.Command{
		Use:   "visited [grid file]",
		Short: "Count the distinct cells the guard visits before leaving",
		Args:  cobra.ExactArgs(1),
		RunE:  runVisited,
	}

	loopsCmd = &cobra.Command{
		Use:   "loops [grid file]",
		Short: "Count the single obstructions that trap the guard in a loop",
		Args:  cobra.ExactArgs(1),
		RunE:  runLoops,
	}

	renderCmd = &cobra.Command{
		Use:   "render [grid file]",
		Short: "Draw the guard's path",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug|info|warn|error")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "search workers (0 = one per CPU); overrides parallel in the config")
	renderCmd.Flags().BoolVar(&markLoops, "loops", false, "mark loop-causing obstructions with O")

	rootCmd.AddCommand(visitedCmd, loopsCmd, renderCmd)
}

// setup loads the config file, applies flag overrides and installs the logger.
func setup(cmd *cobra.Command) error {
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("workers") {
		// An explicit worker count wins over parallel: false in the file.
		cfg.Workers = workers
		cfg.Parallel = workers != 1
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

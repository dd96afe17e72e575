package main

import (
	"fmt"
	"os"

	service "github.com/okian/podium/internal/app"
	"github.com/okian/podium/internal/config"
	"github.com/okian/podium/pkg/logger"
	"github.com/spf13/cobra"
)

// cli carries state shared by every subcommand.
type cli struct {
	configPath string
	logLevel   string

	cfg *config.Config
	log logger.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "podium",
		Short:         "Profile, clean and chart the Olympic Games datasets",
		Long:          "podium profiles the Olympic Games CSV files, merges and cleans them, and renders one chart per aggregate view. Without a subcommand it runs the whole pipeline.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.pipeline(cmd, func(svc *service.Service) error { return svc.Run(cmd.Context()) })
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "YAML config file (overrides "+config.EnvConfig+")")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		c.runCmd(),
		c.profileCmd(),
		c.cleanCmd(),
		c.chartsCmd(),
		c.serveCmd(),
		c.sampleCmd(),
	)
	return root
}

// setup initializes logging and loads the configuration (defaults -> file -> env).
func (c *cli) setup(cmd *cobra.Command) error {
	if err := logger.InitWithWriter(cmd.ErrOrStderr()); err != nil {
		return err
	}
	c.log = logger.Get()

	if c.configPath != "" {
		if err := os.Setenv(config.EnvConfig, c.configPath); err != nil {
			return fmt.Errorf("set %s: %w", config.EnvConfig, err)
		}
	}
	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return err
	}
	if c.logLevel != "" {
		cfg.LogLevel = c.logLevel
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		c.log.Warn(cmd.Context(), "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}
	c.cfg = cfg
	return nil
}

// pipeline builds a Service for the loaded config and runs fn on it.
func (c *cli) pipeline(cmd *cobra.Command, fn func(svc *service.Service) error) error {
	svc := service.New(
		service.WithConfig(c.cfg),
		service.WithLogger(c.log),
	)
	svc.SetConsole(cmd.OutOrStdout())
	if err := fn(svc); err != nil {
		c.log.Error(cmd.Context(), "command failed", logger.String("command", cmd.Name()), logger.Error(err))
		return err
	}
	return nil
}

func (c *cli) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run every stage: profile, clean, charts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.pipeline(cmd, func(svc *service.Service) error { return svc.Run(cmd.Context()) })
		},
	}
}

func (c *cli) profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Print and save a profile of each source table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.pipeline(cmd, func(svc *service.Service) error {
				_, err := svc.Profile(cmd.Context())
				return err
			})
		},
	}
}

func (c *cli) cleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Merge medals with athletes and write the cleaned tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.pipeline(cmd, func(svc *service.Service) error { return svc.Clean(cmd.Context()) })
		},
	}
}

func (c *cli) chartsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "charts",
		Short: "Compute the views from the cleaned tables and render them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.pipeline(cmd, func(svc *service.Service) error {
				_, err := svc.Charts(cmd.Context())
				return err
			})
		},
	}
}

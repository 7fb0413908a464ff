package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"consulta/internal/lookup"
	"consulta/internal/platform/config"
	"consulta/internal/platform/logger"
)

// commandContext carries the lazily-built service shared by all subcommands.
type commandContext struct {
	configFlag  *string
	jsonFlag    *bool
	verboseFlag *bool

	service *lookup.Service
	cfg     config.Config
}

func (c *commandContext) ensureService() (*lookup.Service, error) {
	if c.service != nil {
		return c.service, nil
	}

	cfg, err := config.Load(*c.configFlag)
	if err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if *c.verboseFlag {
		level = slog.LevelDebug
	}
	log := logger.New(level)

	// The CLI is a one-shot process; metrics registration is not useful here.
	svc, err := lookup.NewFromConfig(cfg, log, nil)
	if err != nil {
		return nil, err
	}

	c.cfg = cfg
	c.service = svc
	return svc, nil
}

func newRootCommand() *cobra.Command {
	var configFlag string
	var jsonFlag bool
	var verboseFlag bool

	ctx := &commandContext{
		configFlag:  &configFlag,
		jsonFlag:    &jsonFlag,
		verboseFlag: &verboseFlag,
	}

	rootCmd := &cobra.Command{
		Use:           "consulta",
		Short:         "Resolve Brazilian public identifiers",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runAuto(ctx, cmd, args)
		},
		Args: cobra.ArbitraryArgs,
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Emit JSON instead of tables")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")

	for _, cmd := range newLookupCommands(ctx) {
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(newAutoCommand(ctx))
	rootCmd.AddCommand(newBulkCommand(ctx))
	rootCmd.AddCommand(newSampleConfigCommand())

	return rootCmd
}

func newSampleConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sample-config",
		Short: "Print a documented sample configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Print(config.SampleConfig)
			return nil
		},
	}
}

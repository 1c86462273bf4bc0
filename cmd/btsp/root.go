package main

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func createRootCommand(input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "btsp",
		Short:        "Approximate bottleneck traveling salesman tours and paths on point sets",
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&input.configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&input.logFormat, "log-format", "text", "log format: text or json")

	rootCmd.AddCommand(createSolveCommand(input))
	rootCmd.AddCommand(createGenerateCommand())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})
	return rootCmd
}

// newLogger builds the logger for one run. level is empty unless a config
// file names one.
func newLogger(out io.Writer, verbose bool, level, format string) (*log.Logger, error) {
	logger := log.New()
	logger.Out = out

	switch format {
	case "", "text":
		logger.Formatter = &log.TextFormatter{DisableTimestamp: true}
	case "json":
		logger.Formatter = &log.JSONFormatter{}
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	if level != "" {
		lvl, err := log.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		logger.SetLevel(lvl)
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, nil
}

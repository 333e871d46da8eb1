package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theflywheel/chaintable/internal/logging"
)

var logLevelStr string

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "chaintable",
		Short:             "Fixed-capacity chained hash table tools",
		Long:              `Inspect table sizing and load student rosters into a chained hash table.`,
		SilenceUsage:      true,
		PersistentPreRunE: configureLogging,
	}

	rootCmd.PersistentFlags().StringVarP(&logLevelStr, "log-level", "l", logging.DefaultLogLevel.String(), "Set logging level [debug|info|warn|error]")
	rootCmd.PersistentFlags().BoolVarP(&logging.LogJSON, "log-json", "j", false, "Print logs in JSON format")

	rootCmd.AddCommand(newCapacityCmd())
	rootCmd.AddCommand(newRosterCmd())
	return rootCmd
}

func configureLogging(*cobra.Command, []string) error {
	level, err := logging.ParseLogLevel(logLevelStr)
	if err != nil {
		return err
	}
	logging.LogLevel = level
	logging.ConfigureLogger()
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Package cmd implements the datacraft-faker CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bbux-dev/datacraft-faker/logging"
)

var (
	verbose bool

	appVersion = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "datacraft-faker",
	Short: "Generate synthetic records with faker fields",
	Long:  "datacraft-faker generates records from data specs whose fields call faking methods by dotted path.",

	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")

	rootCmd.AddCommand(entriesCmd)
	rootCmd.AddCommand(valuesCmd)
	rootCmd.AddCommand(methodsCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(usageCmd)
}

// SetVersionInfo sets the version and commit for display.
func SetVersionInfo(version, commit string) {
	appVersion = version
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("datacraft-faker %s (commit: %s)\n", version, commit))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(cmd *cobra.Command) logging.Logger {
	return logging.NewJSONLogger(cmd.ErrOrStderr(), verbose).With(map[string]any{
		"version": appVersion,
	})
}

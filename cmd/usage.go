package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bbux-dev/datacraft-faker/plugin"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show how to use the faker field type",
	RunE:  usageRun,
}

func usageRun(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n\n", heading(out, "faker"))
	fmt.Fprint(out, plugin.New(newLogger(cmd)).Usage())
	return nil
}

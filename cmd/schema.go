package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bbux-dev/datacraft-faker/plugin"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema for faker field specs",
	RunE:  schemaRun,
}

func schemaRun(cmd *cobra.Command, args []string) error {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, plugin.New(nil).Schema(), "", "  "); err != nil {
		return fmt.Errorf("formatting schema: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), pretty.String())
	return nil
}

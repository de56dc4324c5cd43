package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	datacraftfaker "github.com/bbux-dev/datacraft-faker"
	"github.com/bbux-dev/datacraft-faker/generate"
	"github.com/bbux-dev/datacraft-faker/types"
)

var (
	entriesSpecFile string
	entriesInline   string
	entriesCount    int
	entriesStrict   bool
	entriesFormat   string
)

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "Generate records from a data spec",
	RunE:  entriesRun,
}

func init() {
	entriesCmd.Flags().StringVarP(&entriesSpecFile, "spec", "s", "", "data spec file (YAML or JSON)")
	entriesCmd.Flags().StringVar(&entriesInline, "inline", "", "data spec given inline")
	entriesCmd.Flags().IntVarP(&entriesCount, "iterations", "n", 1, "number of records to generate")
	entriesCmd.Flags().BoolVar(&entriesStrict, "strict", false, "validate field specs against their schema")
	entriesCmd.Flags().StringVar(&entriesFormat, "format", "json", "output format: json or yaml")
}

func entriesRun(cmd *cobra.Command, args []string) error {
	spec, err := loadSpec()
	if err != nil {
		return err
	}
	logger := newLogger(cmd)

	reg, err := datacraftfaker.NewRegistry(logger)
	if err != nil {
		return err
	}
	records, err := generate.Entries(cmd.Context(), reg, spec, entriesCount,
		generate.WithLogger(logger),
		generate.WithStrict(entriesStrict),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch entriesFormat {
	case "json":
		for _, rec := range records {
			data, err := json.Marshal(rec)
			if err != nil {
				return fmt.Errorf("encoding record: %w", err)
			}
			fmt.Fprintln(out, string(data))
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(records)
	}
	return fmt.Errorf("unknown format %q (use json or yaml)", entriesFormat)
}

func loadSpec() (*types.DataSpec, error) {
	switch {
	case entriesInline != "" && entriesSpecFile != "":
		return nil, errors.New("only one of --spec or --inline may be given")
	case entriesInline != "":
		return types.ParseDataSpec([]byte(entriesInline))
	case entriesSpecFile != "":
		return types.LoadDataSpec(entriesSpecFile)
	}
	return nil, errors.New("one of --spec or --inline is required")
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	datacraftfaker "github.com/bbux-dev/datacraft-faker"
	"github.com/bbux-dev/datacraft-faker/generate"
	"github.com/bbux-dev/datacraft-faker/plugin"
	"github.com/bbux-dev/datacraft-faker/types"
)

var (
	valuesData    string
	valuesLocales []string
	valuesInclude []string
	valuesSeed    int64
	valuesCount   int
)

var valuesCmd = &cobra.Command{
	Use:   "values",
	Short: "Print values of a single faking method",
	RunE:  valuesRun,
}

func init() {
	valuesCmd.Flags().StringVar(&valuesData, "data", "", "dotted faking method path, e.g. address or unique.name")
	valuesCmd.Flags().StringSliceVar(&valuesLocales, "locale", nil, "locale code (repeatable)")
	valuesCmd.Flags().StringSliceVar(&valuesInclude, "include", nil, "provider module to include (repeatable)")
	valuesCmd.Flags().Int64Var(&valuesSeed, "seed", 0, "seed for reproducible values")
	valuesCmd.Flags().IntVarP(&valuesCount, "iterations", "n", 1, "number of values to generate")
	_ = valuesCmd.MarkFlagRequired("data")
}

func valuesRun(cmd *cobra.Command, args []string) error {
	config := fakerConfig(valuesLocales, valuesInclude)
	if cmd.Flags().Changed("seed") {
		config[plugin.SeedKey] = valuesSeed
	}
	field := types.FieldSpec{Name: valuesData, Type: plugin.Key, Data: valuesData, Config: config}

	logger := newLogger(cmd)
	reg, err := datacraftfaker.NewRegistry(logger)
	if err != nil {
		return err
	}
	values, err := generate.ValuesFor(reg, field, valuesCount, generate.WithLogger(logger))
	if err != nil {
		return err
	}
	for _, v := range values {
		fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return nil
}

// fakerConfig builds a faker field config from repeatable CLI flags.
func fakerConfig(locales, include []string) map[string]any {
	config := make(map[string]any)
	if len(locales) > 0 {
		config[plugin.LocaleKey] = locales
	}
	if len(include) > 0 {
		config[plugin.IncludeKey] = include
	}
	return config
}

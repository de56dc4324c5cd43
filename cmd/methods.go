package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bbux-dev/datacraft-faker/plugin"
)

var (
	methodsLocales []string
	methodsInclude []string
)

var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List the faking methods a field can call",
	RunE:  methodsRun,
}

func init() {
	methodsCmd.Flags().StringSliceVar(&methodsLocales, "locale", nil, "locale code (repeatable)")
	methodsCmd.Flags().StringSliceVar(&methodsInclude, "include", nil, "provider module to include (repeatable)")
}

func methodsRun(cmd *cobra.Command, args []string) error {
	config := fakerConfig(methodsLocales, methodsInclude)
	f, err := plugin.NewFaker("", config)
	if err != nil {
		return err
	}
	if err := plugin.LoadProviders(config, f); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n\n", heading(out, fmt.Sprintf("Locales: %v  Providers: %v", f.Locales(), f.Providers())))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "METHOD\tEXAMPLE\n")
	for _, path := range f.Methods() {
		fn, err := plugin.ResolveMethod(f, path)
		if err != nil {
			return err
		}
		v, err := fn()
		if err != nil {
			fmt.Fprintf(w, "%s\t<error: %v>\n", path, err)
			continue
		}
		fmt.Fprintf(w, "%s\t%v\n", path, v)
	}
	return w.Flush()
}

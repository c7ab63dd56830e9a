package cli

import (
	"fmt"

	"github.com/antonsterkhov/HttpClientCLI/version"
	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	var licenses bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "http-client version %s\n", version.Current())
			if licenses {
				fmt.Fprintln(cmd.OutOrStdout())
				version.PrintLicenses(cmd.OutOrStdout())
			}
		},
	}
	cmd.Flags().BoolVar(&licenses, "licenses", false, "also print licenses of bundled dependencies")

	return cmd
}

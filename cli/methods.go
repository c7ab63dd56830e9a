package cli

import (
	"strings"

	"github.com/antonsterkhov/HttpClientCLI/input"
	"github.com/spf13/cobra"
)

func newMethodCommand(opts *options, method input.Method, short string) *cobra.Command {
	name := strings.ToLower(string(method))

	cmd := &cobra.Command{
		Use:   name + " URL",
		Short: short,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return input.NewUsageError("exactly one URL argument is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, method, args[0])
		},
	}

	if method == input.MethodPost || method == input.MethodPut {
		cmd.Flags().StringVarP(&opts.data, "data", "d", "", "request body, sent verbatim")
		cmd.Flags().StringVarP(&opts.file, "file", "f", "", "request body read from a file; wins over --data when both are given")
		cmd.Flags().BoolVar(&opts.multipart, "multipart", false, `wrap the file body in a multipart/form-data part named "file"`)
	}

	return cmd
}

package cli

import (
	"net/http"

	"github.com/antonsterkhov/HttpClientCLI/input"
	"github.com/spf13/cobra"
)

// options collects the flag values of one invocation. A fresh set is
// created per command tree so tests can run commands independently.
type options struct {
	headers   []string
	data      string
	file      string
	multipart bool

	timeout         string
	followRedirects bool
	skipVerify      bool
	auth            string
	print           string
	output          string
	overwrite       bool

	// transport overrides the HTTP transport in tests.
	transport http.RoundTripper
}

func NewRootCommand() *cobra.Command {
	return newRootCommand(&options{})
}

func newRootCommand(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "http-client",
		Short: "Send HTTP requests from the command line",
		Long: `http-client sends a single HTTP request and prints the response.

Examples:
  http-client get example.com
  http-client get example.com -H "User-Agent=MyClient"
  http-client post example.com -d '{"key": "value"}' -H "Content-Type=application/json"
  http-client put example.com -f update.txt
  http-client delete http://example.com`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return input.NewUsageError("a subcommand is required: get, post, put or delete")
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringArrayVarP(&opts.headers, "headers", "H", nil, "request header in name=value form; repeatable")
	pf.StringVar(&opts.timeout, "timeout", "10", "time allowed for the whole request; bare numbers are seconds")
	pf.BoolVar(&opts.followRedirects, "follow-redirects", false, "follow 3xx redirects instead of printing them")
	pf.BoolVar(&opts.skipVerify, "skip-verify", false, "skip TLS certificate verification")
	pf.StringVarP(&opts.auth, "auth", "a", "", "basic auth as user[:password]; prompts when the password is omitted")
	pf.StringVarP(&opts.print, "print", "p", "", "response parts to print: h (headers), b (body)")
	pf.StringVarP(&opts.output, "output", "o", "", "write the response body to FILE instead of stdout")
	pf.BoolVar(&opts.overwrite, "overwrite", false, "allow --output to overwrite an existing file")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return input.NewUsageError(err.Error())
	})

	rootCmd.AddCommand(
		newMethodCommand(opts, input.MethodGet, "Send a GET request"),
		newMethodCommand(opts, input.MethodPost, "Send a POST request with an optional data or file body"),
		newMethodCommand(opts, input.MethodPut, "Send a PUT request with an optional data or file body"),
		newMethodCommand(opts, input.MethodDelete, "Send a DELETE request"),
		newVersionCommand(),
	)

	return rootCmd
}

func Execute() error {
	return NewRootCommand().Execute()
}

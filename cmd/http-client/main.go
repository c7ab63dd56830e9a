package main

import (
	"fmt"
	"os"

	"github.com/antonsterkhov/HttpClientCLI/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		code := cli.ExitCode(err)
		if code == cli.ExitUsageError {
			fmt.Fprintln(os.Stderr, "Run 'http-client --help' for usage.")
		}
		os.Exit(code)
	}
}

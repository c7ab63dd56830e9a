package cli

import (
	"errors"

	"github.com/antonsterkhov/HttpClientCLI/exchange"
	"github.com/antonsterkhov/HttpClientCLI/input"
)

// Exit codes for the http-client CLI
const (
	// ExitSuccess indicates a completed request/response cycle,
	// regardless of the HTTP status the server returned
	ExitSuccess = 0

	// ExitFailure indicates an unclassified failure
	ExitFailure = 1

	// ExitFileError indicates the --file body could not be read
	ExitFileError = 3

	// ExitTransportError indicates a network-level failure
	ExitTransportError = 4

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

// ExitCode maps an error returned by Execute to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *input.UsageError
	var headerErr *input.HeaderFormatError
	var fileErr *exchange.FileReadError
	var transportErr *exchange.TransportError
	switch {
	case errors.As(err, &usageErr), errors.As(err, &headerErr):
		return ExitUsageError
	case errors.As(err, &fileErr):
		return ExitFileError
	case errors.As(err, &transportErr):
		return ExitTransportError
	default:
		return ExitFailure
	}
}

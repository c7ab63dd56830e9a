package cli

import (
	"regexp"
	"time"

	"github.com/antonsterkhov/HttpClientCLI/input"
)

var reNumber = regexp.MustCompile(`^[0-9.]+$`)

func parseDurationOrSeconds(timeout string) (time.Duration, error) {
	if reNumber.MatchString(timeout) {
		timeout += "s"
	}
	d, err := time.ParseDuration(timeout)
	if err != nil {
		return time.Duration(0), input.NewUsageError("Value of --timeout must be a number or duration string: " + timeout)
	}
	return d, nil
}

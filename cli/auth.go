package cli

import (
	"strings"

	"github.com/antonsterkhov/HttpClientCLI/exchange"
)

func parseAuth(s string) (exchange.AuthOptions, error) {
	if s == "" {
		return exchange.AuthOptions{}, nil
	}

	userName, password, ok := strings.Cut(s, ":")
	if !ok {
		var err error
		password, err = askPassword()
		if err != nil {
			return exchange.AuthOptions{}, err
		}
	}

	return exchange.AuthOptions{
		Enabled:  true,
		UserName: userName,
		Password: password,
	}, nil
}

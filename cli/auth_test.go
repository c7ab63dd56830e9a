package cli

import (
	"reflect"
	"testing"

	"github.com/antonsterkhov/HttpClientCLI/exchange"
)

func TestParseAuth(t *testing.T) {
	testCases := []struct {
		title    string
		auth     string
		expected exchange.AuthOptions
	}{
		{
			title:    "Not given",
			auth:     "",
			expected: exchange.AuthOptions{},
		},
		{
			title: "User and password",
			auth:  "alice:open sesame",
			expected: exchange.AuthOptions{
				Enabled:  true,
				UserName: "alice",
				Password: "open sesame",
			},
		},
		{
			title: "Empty password",
			auth:  "alice:",
			expected: exchange.AuthOptions{
				Enabled:  true,
				UserName: "alice",
			},
		},
	}
	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			actual, err := parseAuth(tt.auth)
			if err != nil {
				t.Fatalf("unexpected error: err=%+v", err)
			}
			if !reflect.DeepEqual(actual, tt.expected) {
				t.Errorf("unexpected auth options: expected=%+v, actual=%+v", tt.expected, actual)
			}
		})
	}
}

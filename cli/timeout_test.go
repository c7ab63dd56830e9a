package cli

import (
	"testing"
	"time"
)

func TestParseDurationOrSeconds(t *testing.T) {
	testCases := []struct {
		title         string
		timeout       string
		expected      time.Duration
		shouldBeError bool
	}{
		{
			title:    "Bare number is seconds",
			timeout:  "10",
			expected: 10 * time.Second,
		},
		{
			title:    "Fractional seconds",
			timeout:  "2.5",
			expected: 2500 * time.Millisecond,
		},
		{
			title:    "Duration string",
			timeout:  "500ms",
			expected: 500 * time.Millisecond,
		},
		{
			title:    "Compound duration",
			timeout:  "1m30s",
			expected: 90 * time.Second,
		},
		{
			title:         "Garbage",
			timeout:       "soon",
			shouldBeError: true,
		},
	}
	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			d, err := parseDurationOrSeconds(tt.timeout)
			if (err != nil) != tt.shouldBeError {
				t.Fatalf("unexpected error: shouldBeError=%v, err=%v", tt.shouldBeError, err)
			}
			if err != nil {
				return
			}
			if d != tt.expected {
				t.Errorf("unexpected duration: expected=%v, actual=%v", tt.expected, d)
			}
		})
	}
}

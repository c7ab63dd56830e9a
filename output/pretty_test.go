package output

import (
	"net/http"
	"strings"
	"testing"
)

func TestPrettyPrinter_PrintStatusLine(t *testing.T) {
	// Setup
	var buffer strings.Builder
	printer := NewPrettyPrinter(PrettyPrinterConfig{
		Writer:      &buffer,
		EnableColor: false,
	})
	response := &http.Response{
		Status:     "200 OK",
		StatusCode: 200,
		Proto:      "HTTP/1.1",
	}

	// Exercise
	err := printer.PrintStatusLine(response)
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	// Verify
	expected := "HTTP/1.1 200 OK\n"
	if buffer.String() != expected {
		t.Errorf("unexpected output: expected=%s, actual=%s", expected, buffer.String())
	}
}

func TestPrettyPrinter_PrintHeader(t *testing.T) {
	// Setup
	var buffer strings.Builder
	printer := NewPrettyPrinter(PrettyPrinterConfig{
		Writer:      &buffer,
		EnableColor: false,
	})
	header := http.Header{
		"Content-Type": []string{"application/json"},
		"X-Foo":        []string{"hello", "world"},
		"Date":         []string{"Tue, 12 Feb 2019 16:01:54 GMT"},
	}

	// Exercise
	err := printer.PrintHeader(header)
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	// Verify
	expected := strings.Join([]string{
		"Content-Type: application/json\n",
		"Date: Tue, 12 Feb 2019 16:01:54 GMT\n",
		"X-Foo: hello\n",
		"X-Foo: world\n",
		"\n",
	}, "")
	if buffer.String() != expected {
		t.Errorf("unexpected output: expected=\n%s\nactual=\n%s", expected, buffer.String())
	}
}

func TestPrettyPrinter_PrintBody(t *testing.T) {
	testCases := []struct {
		title       string
		body        string
		contentType string
		expected    string
	}{
		{
			title:       "JSON is re-indented",
			body:        `{"hello": "world"}`,
			contentType: "application/json",
			expected: strings.Join([]string{
				`{`,
				`    "hello": "world"`,
				"}\n",
			}, "\n"),
		},
		{
			title:       "JSON with charset parameter",
			body:        `[1, 2]`,
			contentType: "application/json; charset=utf-8",
			expected: strings.Join([]string{
				`[`,
				`    1,`,
				`    2`,
				"]\n",
			}, "\n"),
		},
		{
			title:       "Problem JSON",
			body:        `{"title": "oops"}`,
			contentType: "application/problem+json",
			expected: strings.Join([]string{
				`{`,
				`    "title": "oops"`,
				"}\n",
			}, "\n"),
		},
		{
			title:       "Non-JSON passes through",
			body:        "<html>hello</html>",
			contentType: "text/html",
			expected:    "<html>hello</html>",
		},
		{
			title:       "Claims JSON but malformed passes through",
			body:        `{not json}`,
			contentType: "application/json",
			expected:    `{not json}`,
		},
		{
			title:       "Empty body",
			body:        "",
			contentType: "application/json",
			expected:    "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			var buffer strings.Builder
			printer := NewPrettyPrinter(PrettyPrinterConfig{
				Writer:      &buffer,
				EnableColor: false,
			})

			err := printer.PrintBody(strings.NewReader(tt.body), tt.contentType)
			if err != nil {
				t.Fatalf("unexpected error: err=%+v", err)
			}

			if buffer.String() != tt.expected {
				t.Errorf("unexpected output: expected=\n%s\nactual=\n%s", tt.expected, buffer.String())
			}
		})
	}
}

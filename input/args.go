package input

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var (
	reHeaderFieldName = regexp.MustCompile("^[-!#$%&'*+.^_|~a-zA-Z0-9]+$")
	reScheme          = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+-.]*://`)
)

type UsageError string

func (e *UsageError) Error() string {
	return string(*e)
}

func NewUsageError(message string) error {
	u := UsageError(message)
	return errors.WithStack(&u)
}

// HeaderFormatError reports a --headers token that is not in name=value form.
type HeaderFormatError struct {
	Token string
}

func (e *HeaderFormatError) Error() string {
	return "header must be in name=value form: " + e.Token
}

// BodySource describes where the request body comes from, before any file
// is actually opened.
type BodySource struct {
	Data      string
	DataGiven bool
	FilePath  string
	Multipart bool
}

// ParseRequest interprets one subcommand invocation into a Request.
// It performs no I/O; file bodies are read later by the executor so that
// an unreadable file is a request-build failure, not a parse failure.
func ParseRequest(method Method, rawURL string, headers []string, body BodySource) (*Request, error) {
	u, err := ParseURL(rawURL)
	if err != nil {
		return nil, err
	}

	req := Request{
		Method: method,
		URL:    u,
	}
	for _, h := range headers {
		field, err := ParseHeader(h)
		if err != nil {
			return nil, err
		}
		req.Header.Fields = append(req.Header.Fields, field)
	}
	req.Body = resolveBody(body)

	return &req, nil
}

// ParseHeader splits a name=value token into a header field. The value may
// be empty; the name may not.
func ParseHeader(s string) (Field, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return Field{}, errors.WithStack(&HeaderFormatError{Token: s})
	}
	if !reHeaderFieldName.MatchString(name) {
		return Field{}, errors.Errorf("invalid header field name: %s", name)
	}
	return Field{Name: name, Value: value}, nil
}

// ParseURL normalizes the positional URL argument. URLs without a scheme
// get "http://" prepended; ":8080/hello" and "/hello" address localhost.
func ParseURL(s string) (*url.URL, error) {
	defaultScheme := "http"
	defaultHost := "localhost"

	if s == "" {
		return nil, NewUsageError("URL is required")
	}

	// ex) :8080/hello or /hello
	if strings.HasPrefix(s, ":") || strings.HasPrefix(s, "/") {
		s = defaultHost + s
	}

	// ex) example.com/hello
	if !reScheme.MatchString(s) {
		s = defaultScheme + "://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return nil, NewUsageError("Invalid URL: " + s)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, NewUsageError("unsupported scheme: " + u.Scheme)
	}
	u.Host = strings.TrimSuffix(u.Host, ":")
	if u.Host == "" {
		return nil, NewUsageError("Invalid URL: " + s)
	}
	if u.Path == "" {
		u.Path = "/"
	}
	return u, nil
}

// resolveBody picks the body source. When both --data and --file are given
// the file wins and the inline data is ignored.
func resolveBody(body BodySource) Body {
	if body.FilePath != "" {
		return Body{
			BodyType:  FileBody,
			FilePath:  body.FilePath,
			Multipart: body.Multipart,
		}
	}
	if body.DataGiven {
		return Body{
			BodyType: InlineBody,
			Inline:   body.Data,
		}
	}
	return Body{BodyType: EmptyBody}
}

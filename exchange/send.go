package exchange

import (
	"net/http"

	"github.com/antonsterkhov/HttpClientCLI/input"
	"github.com/pkg/errors"
)

// TransportError reports a network-level failure (DNS, connection, TLS,
// timeout) during the single request attempt.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "sending HTTP request: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// SendRequest performs exactly one request/response exchange. HTTP error
// statuses are ordinary responses; only transport failures return an error.
func SendRequest(req *input.Request, options *Options) (*http.Response, error) {
	client, err := BuildHTTPClient(options)
	if err != nil {
		return nil, err
	}
	r, err := BuildHTTPRequest(req, options)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(r)
	if err != nil {
		return nil, errors.WithStack(&TransportError{Err: err})
	}

	return resp, nil
}

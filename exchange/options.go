package exchange

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds the whole request/response cycle unless
// --timeout says otherwise.
const DefaultTimeout = 10 * time.Second

type Options struct {
	Timeout         time.Duration
	FollowRedirects bool
	SkipVerify      bool
	Auth            AuthOptions

	// Transport overrides the HTTP transport. Tests use this to observe
	// requests without touching the network.
	Transport http.RoundTripper
}

type AuthOptions struct {
	Enabled  bool
	UserName string
	Password string
}

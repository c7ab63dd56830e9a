package exchange

import (
	"net/http"
)

func BuildHTTPClient(options *Options) (*http.Client, error) {
	checkRedirect := func(req *http.Request, via []*http.Request) error {
		// Do not follow redirects
		return http.ErrUseLastResponse
	}
	if options.FollowRedirects {
		checkRedirect = nil
	}

	timeout := options.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	client := http.Client{
		CheckRedirect: checkRedirect,
		Timeout:       timeout,
	}

	var transp http.RoundTripper
	if options.Transport == nil {
		httpTransport := http.DefaultTransport.(*http.Transport).Clone()
		if options.SkipVerify {
			httpTransport.TLSClientConfig.InsecureSkipVerify = true
		}
		transp = httpTransport
	} else {
		transp = options.Transport
	}
	client.Transport = transp

	return &client, nil
}

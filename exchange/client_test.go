package exchange

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBuildHTTPClient_RedirectsAreNotFollowedByDefault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/redirect" {
			http.Redirect(w, r, "/target", http.StatusFound)
			return
		}
		w.Write([]byte("target"))
	}))
	defer server.Close()

	req := mustParseURL(t, server.URL+"/redirect")

	resp, err := SendRequest(req, &Options{})
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Errorf("unexpected status: expected=%v, actual=%v", http.StatusFound, resp.StatusCode)
	}

	resp, err = SendRequest(req, &Options{FollowRedirects: true})
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("unexpected status: expected=%v, actual=%v", http.StatusOK, resp.StatusCode)
	}
}

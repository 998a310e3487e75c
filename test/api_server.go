package test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

// Request is a request received by an API server.
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// MakeAPIServer is used during testing to create an HTTP server to return
// fixtures if the request matches the method and path.
//
// The server responds with status, and the fixture as the body if one is
// provided. The last request received is recorded in the returned Request.
func MakeAPIServer(t *testing.T, method, urlPath string, status int, fixture string) (*httptest.Server, *Request) {
	t.Helper()
	h, received := makeHandler(t, method, urlPath, status, fixture)
	ts := httptest.NewTLSServer(h)
	t.Cleanup(ts.Close)
	return ts, received
}

// MakePlainAPIServer is MakeAPIServer without TLS, for code that creates its
// own HTTP client.
func MakePlainAPIServer(t *testing.T, method, urlPath string, status int, fixture string) (*httptest.Server, *Request) {
	t.Helper()
	h, received := makeHandler(t, method, urlPath, status, fixture)
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts, received
}

func makeHandler(t *testing.T, method, urlPath string, status int, fixture string) (http.Handler, *Request) {
	t.Helper()
	var b []byte
	if fixture != "" {
		var err error
		b, err = os.ReadFile(fixture)
		if err != nil {
			t.Fatalf("failed to read %s: %s", fixture, err)
		}
	}
	received := &Request{}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("failed to read the request body: %s", err)
		}
		*received = Request{
			Method:   r.Method,
			Path:     r.URL.Path,
			RawQuery: r.URL.RawQuery,
			Header:   r.Header.Clone(),
			Body:     body,
		}
		if r.URL.Path != urlPath || r.Method != method {
			t.Errorf("request got %s %s, want %s %s", r.Method, r.URL.Path, method, urlPath)
			http.NotFound(w, r)
			return
		}
		if b != nil {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		if _, err := w.Write(b); err != nil {
			t.Errorf("failed to write out the body: %s", err)
		}
	}), received
}

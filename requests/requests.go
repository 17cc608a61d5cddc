package requests

import (
	"net/http"
	"time"

	"golang.org/x/net/http2"
	"google.golang.org/api/googleapi/transport"
)

const userAgent = "Certificate-Verifier (gzip)"

// headerTransport sets the headers that every outgoing request carries.
type headerTransport struct {
	base http.RoundTripper
}

func setupHeaders(req *http.Request) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Charset", "utf-8")
	// The transport decompresses gzip bodies only if it added the header itself,
	// so we leave Accept-Encoding to it.
}

func (h *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not modify the request they're given.
	clone := req.Clone(req.Context())
	setupHeaders(clone)
	return h.base.RoundTrip(clone)
}

// newTransport creates an HTTP/2 capable transport that pings idle connections
// so that dead ones are dropped instead of timing a request out.
func newTransport() http.RoundTripper {
	t := http.DefaultTransport.(*http.Transport).Clone()
	h2, err := http2.ConfigureTransports(t)
	if err != nil {
		return t
	}
	h2.ReadIdleTimeout = 30 * time.Second
	h2.PingTimeout = 15 * time.Second
	return t
}

// NewClient creates a client that authenticates every request with the api key,
// which is sent as the `key` query parameter.
func NewClient(apiKey string, timeout time.Duration) *http.Client {
	var rt http.RoundTripper = &headerTransport{base: newTransport()}
	if apiKey != "" {
		rt = &transport.APIKey{Key: apiKey, Transport: rt}
	}
	return &http.Client{
		Transport: rt,
		Timeout:   timeout,
	}
}

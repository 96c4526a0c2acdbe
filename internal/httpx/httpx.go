// Package httpx builds the HTTP client used to talk to upstream catalog
// sources.
//
// The client is meant to be created once per process and shared by every
// in-flight request: *http.Client and *http.Transport are safe for
// concurrent use, and reusing one transport keeps upstream connections
// pooled instead of opening a socket per call.
package httpx

import (
	"errors"
	"net"
	"net/http"
	"sync"
	"time"
)

const (
	// DefaultUserAgent is sent when the caller did not set one.
	DefaultUserAgent = "go-movie-gateway/1.0"

	defaultMaxIdleConnsPerHost = 16
	defaultIdleConnTimeout     = 90 * time.Second
)

// Options configures NewClient. The zero value is usable.
type Options struct {
	// Timeout bounds a whole request including reading the body.
	// Zero means no timeout.
	Timeout time.Duration

	// UserAgent overrides DefaultUserAgent.
	UserAgent string

	// MaxIdleConnsPerHost overrides the pool size kept per upstream host.
	MaxIdleConnsPerHost int
}

// Transport sets a User-Agent on outgoing requests and delegates to Base.
// It never retries: a failed round trip is returned to the caller as is.
type Transport struct {
	Base      http.RoundTripper
	UserAgent string
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, errors.New("nil request")
	}
	if t.Base == nil {
		return nil, errors.New("nil base transport")
	}

	if req.Header.Get("User-Agent") != "" || t.UserAgent == "" {
		return t.Base.RoundTrip(req)
	}

	// RoundTripper must not modify the caller's request.
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.UserAgent)
	return t.Base.RoundTrip(r)
}

// NewClient constructs a pooled client for upstream fetches.
func NewClient(opts Options) *http.Client {
	perHost := opts.MaxIdleConnsPerHost
	if perHost <= 0 {
		perHost = defaultMaxIdleConnsPerHost
	}
	ua := opts.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}

	base := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   perHost,
		IdleConnTimeout:       defaultIdleConnTimeout,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{
		Transport: &Transport{Base: base, UserAgent: ua},
		Timeout:   opts.Timeout,
	}
}

var (
	sharedOnce   sync.Once
	sharedClient *http.Client
)

// Shared returns the process-wide client, creating it with default options
// on first use.
func Shared() *http.Client {
	sharedOnce.Do(func() {
		sharedClient = NewClient(Options{})
	})
	return sharedClient
}

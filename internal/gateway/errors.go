package gateway

import (
	"fmt"
	"net/http"
)

// TransportError means the request never produced an HTTP response:
// DNS, connect, TLS, timeout or cancellation failures, or a URL that could
// not be turned into a request.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteFetchError means the source answered with a non-2xx status.
type RemoteFetchError struct {
	URL        string
	StatusCode int
}

func (e *RemoteFetchError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// DecodeError means the body was not a JSON array of movies.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

package apiclient

import "context"

// Response is a minimal buffered HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
	// Status returns the raw status line, e.g. "404 Not Found".
	Status() string
	Header(key string) string
}

// Transport performs exactly one HTTP exchange. Implementations must not retry.
type Transport interface {
	Do(ctx context.Context, method, url string, headers map[string]string, body []byte) (Response, error)
}

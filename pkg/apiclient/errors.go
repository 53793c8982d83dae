package apiclient

import "fmt"

// RequestError reports a response that arrived with a non-2xx status.
type RequestError struct {
	StatusCode int
	Message    string
	// Body is the decoded response body, if any.
	Body any
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// NetworkError reports an exchange that never produced a response:
// refused connections, DNS failures, timeouts and cancellations.
type NetworkError struct {
	Method  string
	URL     string
	BaseURL string
	Err     error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("connection failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

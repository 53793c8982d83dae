package apiclient

import (
	"strings"
	"sync"
)

// DefaultBaseURL is the API location used until an operator supplies another one.
const DefaultBaseURL = "http://localhost:8080"

// NormalizeBaseURL trims raw and prefixes "http://" unless it already starts with "http".
// No other validation is performed.
func NormalizeBaseURL(raw string) string {
	u := strings.TrimSpace(raw)
	if !strings.HasPrefix(u, "http") {
		u = "http://" + u
	}
	return u
}

// Endpoint holds the current API base URL shared by every operation.
type Endpoint struct {
	mu  sync.RWMutex
	url string
}

// NewEndpoint returns an Endpoint seeded with raw, or DefaultBaseURL when raw is blank.
func NewEndpoint(raw string) *Endpoint {
	if strings.TrimSpace(raw) == "" {
		raw = DefaultBaseURL
	}
	e := &Endpoint{}
	e.Set(raw)
	return e
}

// Set normalizes raw, stores it and returns the stored value.
func (e *Endpoint) Set(raw string) string {
	u := NormalizeBaseURL(raw)
	e.mu.Lock()
	e.url = u
	e.mu.Unlock()
	return u
}

// URL returns the current base URL.
func (e *Endpoint) URL() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.url
}

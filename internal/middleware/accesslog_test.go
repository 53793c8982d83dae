package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type captureLogger struct {
	mu      sync.Mutex
	entries []map[string]any
}

func (c *captureLogger) InfoObj(_ string, _ string, obj interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok := obj.(map[string]any); ok {
		c.entries = append(c.entries, m)
	}
}
func (c *captureLogger) DebugObj(string, string, interface{}) {}
func (c *captureLogger) WarnObj(string, string, interface{})  {}
func (c *captureLogger) ErrorObj(string, string, interface{}) {}

func TestAccessLogRecordsStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		write  bool
	}{
		{name: "implicit ok", status: http.StatusOK},
		{name: "explicit not found", status: http.StatusNotFound, write: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &captureLogger{}
			h := AccessLog(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.write {
					w.WriteHeader(tt.status)
				}
				_, _ = w.Write([]byte("body"))
			}))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

			if rec.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, rec.Code)
			}
			if len(log.entries) != 1 {
				t.Fatalf("expected one log entry, got %d", len(log.entries))
			}
			entry := log.entries[0]
			if entry["status"] != tt.status {
				t.Fatalf("logged status = %v", entry["status"])
			}
			if entry["path"] != "/api/products" || entry["method"] != http.MethodGet {
				t.Fatalf("unexpected entry %v", entry)
			}
		})
	}
}

func TestAccessLogToleratesNilLogger(t *testing.T) {
	h := AccessLog(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

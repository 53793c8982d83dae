package domain

import "time"

// Domain contains core models shared by the console runtime.

// Outcome kinds.
const (
	KindOK         = "ok"
	KindValidation = "validation"
	KindRequest    = "request"
	KindNetwork    = "network"
)

// Outcome is the journal entry for one console action.
type Outcome struct {
	ID         string    `json:"id"`
	Operation  string    `json:"operation"`
	Entity     string    `json:"entity"`
	Method     string    `json:"method,omitempty"`
	Path       string    `json:"path,omitempty"`
	BaseURL    string    `json:"base_url"`
	Kind       string    `json:"kind"`
	Status     int       `json:"status,omitempty"`
	Message    string    `json:"message,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	DurationMs int64     `json:"duration_ms"`
}

// Failed reports whether the action did not complete successfully.
func (o Outcome) Failed() bool { return o.Kind != KindOK }

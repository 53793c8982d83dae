package publishers

import (
	"time"

	"github.com/samvad-hq/storefront-console/internal/domain"
)

// Event represents the payload published downstream after a console action.
type Event struct {
	Operation string         `json:"operation"`
	Entity    string         `json:"entity"`
	Kind      string         `json:"kind"`
	Outcome   domain.Outcome `json:"outcome"`
	EmittedAt time.Time      `json:"emitted_at"`
}

// NewEvent constructs an Event for the given outcome.
func NewEvent(o domain.Outcome) Event {
	return Event{
		Operation: o.Operation,
		Entity:    o.Entity,
		Kind:      o.Kind,
		Outcome:   o,
		EmittedAt: time.Now().UTC(),
	}
}

// attributes are the routing attributes attached to queue and topic messages.
func (e Event) attributes() map[string]string {
	return map[string]string{
		"operation":    e.Operation,
		"outcome_kind": e.Kind,
	}
}

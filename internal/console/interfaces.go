package console

import (
	"context"

	"github.com/samvad-hq/storefront-console/internal/domain"
	"github.com/samvad-hq/storefront-console/pkg/publishers"
)

// Caller performs one request against the remote API and returns the decoded body.
type Caller interface {
	Call(ctx context.Context, baseURL, method, path string, payload any) (any, error)
}

// EventPublisher publishes action outcomes downstream.
type EventPublisher interface {
	Publish(ctx context.Context, evt publishers.Event) (int, error)
}

// Journal keeps recent action outcomes.
type Journal interface {
	Record(o domain.Outcome) error
	Recent(limit int) ([]domain.Outcome, error)
}

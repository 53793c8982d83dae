package publishers

import "context"

// Publisher sends action events to a downstream sink (SQS, SNS, Pub/Sub, HTTP).
type Publisher interface {
	ID() string
	Type() string
	Publish(ctx context.Context, evt Event) error
}

// Sender delivers one encoded event to a queue or topic.
type Sender interface {
	Send(ctx context.Context, evt Event) error
}

package messaging

import "context"

// Delivery is a single message handed to a consumer. Ack must be called
// only after the message has been fully processed; Nack with requeue=false
// drops the message permanently.
type Delivery struct {
	Body []byte
	Ack  func() error
	Nack func(requeue bool) error
}

// Broker abstracts the message transport. Publish must use durable
// delivery: the broker persists the message until a consumer acknowledges
// it. Consume returns a channel of deliveries in publish order for the
// bound queue; the channel closes when ctx is cancelled or the connection
// drops.
type Broker interface {
	Publish(ctx context.Context, body []byte) error
	Consume(ctx context.Context) (<-chan Delivery, error)
	Close() error
}

package interfaces

import (
	"context"

	"github.com/golangid/nearchat/candishared"
)

// QueueBroker abstraction of durable queue/topic broker used for store-and-forward delivery.
// Every method is a blocking network call, callers bound it with ctx.
type QueueBroker interface {
	// DeclareQueue declare durable queue, idempotent
	DeclareQueue(ctx context.Context, name string) error
	// DeleteQueue delete queue, candishared.ErrChannelNotFound if queue does not exist
	DeleteQueue(ctx context.Context, name string) error
	// DeclareTopic declare durable fanout topic, idempotent
	DeclareTopic(ctx context.Context, name string) error
	// DeleteTopic delete topic, candishared.ErrChannelNotFound if topic does not exist
	DeleteTopic(ctx context.Context, name string) error
	// BindQueue subscribe queue to topic
	BindQueue(ctx context.Context, queue, topic string) error
	// UnbindQueue unsubscribe queue from topic
	UnbindQueue(ctx context.Context, queue, topic string) error

	// Publish message to queue (args.Topic) or to fanout topic (args.Exchange)
	Publish(ctx context.Context, args *candishared.PublisherArgument) error
	// Pop remove one message from queue, ok is false when queue is empty
	Pop(ctx context.Context, queue string) (message []byte, ok bool, err error)
	// MessageCount passive inspection of ready message in queue
	MessageCount(ctx context.Context, queue string) (int, error)

	Name() string
	Health() map[string]error
	Closer
}

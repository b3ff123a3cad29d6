package usecase

import (
	"context"

	"github.com/golangid/nearchat/internal/modules/channel/domain"
)

// ChannelManager lifecycle of durable queue and topic backing store-and-forward delivery.
// Broker failure never crosses this boundary, it is logged and reported as false (or -1 for count).
type ChannelManager interface {
	// EnsureQueue declare durable queue, idempotent
	EnsureQueue(ctx context.Context, name string) bool
	// DeleteQueue false when queue does not exist
	DeleteQueue(ctx context.Context, name string) bool
	// EnsureTopic declare durable fanout topic, idempotent
	EnsureTopic(ctx context.Context, name string) bool
	DeleteTopic(ctx context.Context, name string) bool

	// Publish envelope to queue with persistent delivery mode
	Publish(ctx context.Context, queue string, envelope domain.Envelope) bool
	// PublishTopic broadcast envelope to every queue bound to topic
	PublishTopic(ctx context.Context, topic string, envelope domain.Envelope) bool
	// Drain pop every available envelope without blocking, ack on read
	Drain(ctx context.Context, queue string) ([]domain.Envelope, error)
	// MessageCount passive inspection, -1 on failure
	MessageCount(ctx context.Context, queue string) int

	BindQueue(ctx context.Context, queue, topic string) bool
	UnbindQueue(ctx context.Context, queue, topic string) bool

	// ProvisionUser declare participant dedicated queue
	ProvisionUser(ctx context.Context, participantID string) bool
	// DeprovisionUser delete participant dedicated queue
	DeprovisionUser(ctx context.Context, participantID string) bool

	ListQueues() []string
	ListTopics() []string
	HasTopic(name string) bool
}

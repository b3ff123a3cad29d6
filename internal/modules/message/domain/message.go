package domain

import (
	"errors"

	channeldomain "github.com/golangid/nearchat/internal/modules/channel/domain"
)

// DeliveryMode path chosen by router
type DeliveryMode string

const (
	// ModeDirect push to recipient mailbox endpoint
	ModeDirect DeliveryMode = "direct"
	// ModeDurable publish envelope to recipient durable queue
	ModeDurable DeliveryMode = "durable"
)

var (
	// ErrUnknownRecipient recipient is not registered, nothing delivered
	ErrUnknownRecipient = errors.New("unknown recipient")
	// ErrUnknownSender sender is not registered
	ErrUnknownSender = errors.New("unknown sender")
	// ErrUnknownTopic broadcast to undeclared topic
	ErrUnknownTopic = errors.New("unknown topic")
	// ErrDirectDeliveryFailed recipient mailbox endpoint did not accept message, no durable fallback
	ErrDirectDeliveryFailed = errors.New("direct delivery failed")
	// ErrPublishFailed durable publish failed, no retry
	ErrPublishFailed = errors.New("durable publish failed")
)

// SendRequest payload
type SendRequest struct {
	From    string `json:"from" validate:"required"`
	To      string `json:"to" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// BroadcastRequest payload
type BroadcastRequest struct {
	From    string `json:"from" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// RouteResult outcome of routing one message
type RouteResult struct {
	Mode DeliveryMode `json:"mode"`
	// Queue durable queue name, empty for direct delivery
	Queue      string  `json:"queue,omitempty"`
	DistanceKm float64 `json:"distanceKm"`
}

// Inbox pending message of participant from both delivery path
type Inbox struct {
	Sync  []string                 `json:"sync"`
	Async []channeldomain.Envelope `json:"async"`
}

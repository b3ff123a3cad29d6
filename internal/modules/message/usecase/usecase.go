package usecase

import (
	"context"

	channeldomain "github.com/golangid/nearchat/internal/modules/channel/domain"
	"github.com/golangid/nearchat/internal/modules/message/domain"
)

// RouterUsecase pick exactly one delivery path per message from one presence snapshot
type RouterUsecase interface {
	Route(ctx context.Context, senderID, recipientID, text string) (domain.RouteResult, error)
	// Broadcast publish one envelope to fanout topic
	Broadcast(ctx context.Context, senderID, topic, text string) error
}

// InboxUsecase recipient side of both delivery path
type InboxUsecase interface {
	// CheckSync drain direct delivered mailbox entries
	CheckSync(ctx context.Context, participantID string) []string
	// CheckAsync drain durable queue of participant
	CheckAsync(ctx context.Context, participantID string) ([]channeldomain.Envelope, error)
	// PendingCount ready envelope in durable queue, -1 when unknown
	PendingCount(ctx context.Context, participantID string) int
	// Restore give back drained entries that never reached the participant.
	// Sync entries go back in front of mailbox, async envelopes are republished to durable queue
	Restore(ctx context.Context, participantID string, inbox domain.Inbox) error
}

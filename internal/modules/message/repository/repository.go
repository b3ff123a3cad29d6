package repository

import "context"

// Deliverer direct delivery collaborator, push message to mailbox endpoint of recipient.
// Unreachable endpoint is mailbox domain.ErrEndpointUnreachable.
type Deliverer interface {
	Deliver(ctx context.Context, recipientID, senderID, message string) error
}

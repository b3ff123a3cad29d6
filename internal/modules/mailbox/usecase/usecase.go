package usecase

import "context"

// MailboxUsecase abstraction
type MailboxUsecase interface {
	// Open mailbox of participant and bind its endpoint, empty endpoint means this process.
	// Return false and change nothing when mailbox is already open
	Open(id, endpoint string) bool
	// Close mailbox and unbind endpoint, buffered entries are dropped
	Close(id string)
	// Deliver push formatted entry to open mailbox of recipient in this process
	Deliver(ctx context.Context, recipientID, senderID, message string) error
	// Drain return and empty mailbox of participant
	Drain(id string) []string
	// Requeue put drained entries back in front of mailbox, false when mailbox has been closed
	Requeue(id string, entries []string) bool
	// Resolve endpoint of participant mailbox
	Resolve(id string) (endpoint string, ok bool)
}

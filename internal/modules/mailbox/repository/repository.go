package repository

// MailboxRegistry open mailboxes by participant id
type MailboxRegistry interface {
	// Open return live mailbox of participant, create when absent. created is false when it was already open
	Open(id string) (mb *Mailbox, created bool)
	Get(id string) (*Mailbox, bool)
	// Close drop mailbox and its buffered entries
	Close(id string) bool
}

// EndpointRegistry naming of participant mailbox endpoint.
// Empty endpoint means mailbox lives in this process.
type EndpointRegistry interface {
	Bind(id, endpoint string)
	Resolve(id string) (endpoint string, ok bool)
	Unbind(id string)
}

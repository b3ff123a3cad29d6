package usecase

import (
	"context"
	"fmt"

	"github.com/golangid/nearchat/internal/modules/mailbox/domain"
	"github.com/golangid/nearchat/internal/modules/mailbox/repository"
	"github.com/golangid/nearchat/tracer"
)

type mailboxUsecaseImpl struct {
	mailboxes repository.MailboxRegistry
	endpoints repository.EndpointRegistry
}

// NewMailboxUsecase usecase impl constructor
func NewMailboxUsecase(mailboxes repository.MailboxRegistry, endpoints repository.EndpointRegistry) MailboxUsecase {
	return &mailboxUsecaseImpl{
		mailboxes: mailboxes,
		endpoints: endpoints,
	}
}

func (uc *mailboxUsecaseImpl) Open(id, endpoint string) bool {
	if _, created := uc.mailboxes.Open(id); !created {
		return false
	}
	uc.endpoints.Bind(id, endpoint)
	return true
}

func (uc *mailboxUsecaseImpl) Close(id string) {
	uc.endpoints.Unbind(id)
	uc.mailboxes.Close(id)
}

func (uc *mailboxUsecaseImpl) Deliver(ctx context.Context, recipientID, senderID, message string) error {
	trace := tracer.StartTrace(ctx, "MailboxUsecase:Deliver")
	defer trace.Finish()
	trace.SetTag("recipient", recipientID)

	mb, ok := uc.mailboxes.Get(recipientID)
	if !ok {
		err := fmt.Errorf("%w: %s", domain.ErrEndpointUnreachable, recipientID)
		trace.SetError(err)
		return err
	}
	mb.Push(domain.FormatEntry(senderID, recipientID, message))
	return nil
}

func (uc *mailboxUsecaseImpl) Drain(id string) []string {
	mb, ok := uc.mailboxes.Get(id)
	if !ok {
		return []string{}
	}
	return mb.DrainAll()
}

func (uc *mailboxUsecaseImpl) Requeue(id string, entries []string) bool {
	mb, ok := uc.mailboxes.Get(id)
	if !ok {
		return false
	}
	mb.Requeue(entries)
	return true
}

func (uc *mailboxUsecaseImpl) Resolve(id string) (string, bool) {
	return uc.endpoints.Resolve(id)
}

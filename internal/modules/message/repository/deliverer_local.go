package repository

import (
	"context"

	mailboxusecase "github.com/golangid/nearchat/internal/modules/mailbox/usecase"
)

type localDeliverer struct {
	mailbox mailboxusecase.MailboxUsecase
}

// NewLocalDeliverer deliver to mailbox open in this process
func NewLocalDeliverer(mailbox mailboxusecase.MailboxUsecase) Deliverer {
	return &localDeliverer{mailbox: mailbox}
}

func (d *localDeliverer) Deliver(ctx context.Context, recipientID, senderID, message string) error {
	return d.mailbox.Deliver(ctx, recipientID, senderID, message)
}

package repository

import (
	"context"
	"fmt"

	"github.com/golangid/nearchat/candiutils"
	mailboxdomain "github.com/golangid/nearchat/internal/modules/mailbox/domain"
	mailboxusecase "github.com/golangid/nearchat/internal/modules/mailbox/usecase"
)

type resolverDeliverer struct {
	mailbox mailboxusecase.MailboxUsecase
	local   Deliverer
	remote  func(endpoint string) Deliverer
}

// NewDeliverer resolve recipient endpoint from mailbox naming,
// empty endpoint is delivered in this process, other is delivered over http
func NewDeliverer(mailbox mailboxusecase.MailboxUsecase, client candiutils.HTTPRequest) Deliverer {
	return &resolverDeliverer{
		mailbox: mailbox,
		local:   NewLocalDeliverer(mailbox),
		remote: func(endpoint string) Deliverer {
			return NewHTTPDeliverer(endpoint, client)
		},
	}
}

func (d *resolverDeliverer) Deliver(ctx context.Context, recipientID, senderID, message string) error {
	endpoint, ok := d.mailbox.Resolve(recipientID)
	if !ok {
		return fmt.Errorf("%w: %s has no bound endpoint", mailboxdomain.ErrEndpointUnreachable, recipientID)
	}
	if endpoint == "" {
		return d.local.Deliver(ctx, recipientID, senderID, message)
	}
	return d.remote(endpoint).Deliver(ctx, recipientID, senderID, message)
}

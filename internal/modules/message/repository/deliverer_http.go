package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/golangid/nearchat/candihelper"
	"github.com/golangid/nearchat/candiutils"
	mailboxdomain "github.com/golangid/nearchat/internal/modules/mailbox/domain"
)

type httpDeliverer struct {
	endpoint string
	client   candiutils.HTTPRequest
}

// NewHTTPDeliverer deliver to remote mailbox endpoint, POST {endpoint}/v1/mailbox/{id}/deliver
func NewHTTPDeliverer(endpoint string, client candiutils.HTTPRequest) Deliverer {
	return &httpDeliverer{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		client:   client,
	}
}

func (d *httpDeliverer) Deliver(ctx context.Context, recipientID, senderID, message string) error {
	body := candihelper.ToBytes(mailboxdomain.DeliverRequest{Sender: senderID, Message: message})
	target := d.endpoint + candihelper.V1 + "/mailbox/" + url.PathEscape(recipientID) + "/deliver"

	_, code, err := d.client.Do(ctx, http.MethodPost, target, body, map[string]string{
		candihelper.HeaderContentType: candihelper.HeaderMIMEApplicationJSON,
	})
	if err != nil {
		return fmt.Errorf("%w: %s (code %d): %v", mailboxdomain.ErrEndpointUnreachable, recipientID, code, err)
	}
	if code != http.StatusOK {
		return fmt.Errorf("%w: %s responded %d", mailboxdomain.ErrEndpointUnreachable, recipientID, code)
	}
	return nil
}

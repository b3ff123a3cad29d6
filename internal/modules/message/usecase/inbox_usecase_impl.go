package usecase

import (
	"context"
	"fmt"

	"github.com/golangid/nearchat/candihelper"
	channeldomain "github.com/golangid/nearchat/internal/modules/channel/domain"
	channelusecase "github.com/golangid/nearchat/internal/modules/channel/usecase"
	mailboxdomain "github.com/golangid/nearchat/internal/modules/mailbox/domain"
	mailboxusecase "github.com/golangid/nearchat/internal/modules/mailbox/usecase"
	"github.com/golangid/nearchat/internal/modules/message/domain"
	"github.com/golangid/nearchat/tracer"
)

type inboxUsecaseImpl struct {
	mailbox mailboxusecase.MailboxUsecase
	channel channelusecase.ChannelManager
}

// NewInboxUsecase usecase impl constructor
func NewInboxUsecase(mailbox mailboxusecase.MailboxUsecase, channel channelusecase.ChannelManager) InboxUsecase {
	return &inboxUsecaseImpl{
		mailbox: mailbox,
		channel: channel,
	}
}

func (uc *inboxUsecaseImpl) CheckSync(ctx context.Context, participantID string) []string {
	return uc.mailbox.Drain(participantID)
}

func (uc *inboxUsecaseImpl) CheckAsync(ctx context.Context, participantID string) ([]channeldomain.Envelope, error) {
	return uc.channel.Drain(ctx, channeldomain.UserQueueName(participantID))
}

func (uc *inboxUsecaseImpl) PendingCount(ctx context.Context, participantID string) int {
	return uc.channel.MessageCount(ctx, channeldomain.UserQueueName(participantID))
}

func (uc *inboxUsecaseImpl) Restore(ctx context.Context, participantID string, inbox domain.Inbox) error {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InboxUsecase:Restore")
	defer trace.Finish()
	trace.SetTag("participant_id", participantID)

	mErr := candihelper.NewMultiError()
	if len(inbox.Sync) > 0 && !uc.mailbox.Requeue(participantID, inbox.Sync) {
		mErr.Append("sync", fmt.Errorf("%w: %d entries dropped", mailboxdomain.ErrEndpointUnreachable, len(inbox.Sync)))
	}

	queue := channeldomain.UserQueueName(participantID)
	for i, envelope := range inbox.Async {
		if !uc.channel.Publish(ctx, queue, envelope) {
			mErr.Append(fmt.Sprintf("async.%d", i), fmt.Errorf("%w: %s", domain.ErrPublishFailed, queue))
		}
	}

	if mErr.HasError() {
		trace.SetError(mErr)
		return mErr
	}
	return nil
}

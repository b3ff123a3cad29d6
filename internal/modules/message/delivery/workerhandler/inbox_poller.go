package workerhandler

import (
	"context"
	"time"

	"github.com/golangid/nearchat/internal/modules/message/domain"
	"github.com/golangid/nearchat/internal/modules/message/usecase"
	"github.com/golangid/nearchat/logger"
	"github.com/golangid/nearchat/tracer"
	"go.uber.org/zap/zapcore"
)

// InboxPoller cancellable polling loop draining inbox of one participant on a schedule
type InboxPoller struct {
	uc       usecase.InboxUsecase
	interval time.Duration
}

// NewInboxPoller constructor
func NewInboxPoller(uc usecase.InboxUsecase, interval time.Duration) *InboxPoller {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &InboxPoller{uc: uc, interval: interval}
}

// Poll drain mailbox and durable queue once, broker failure keep envelopes popped before it
func (p *InboxPoller) Poll(ctx context.Context, participantID string) domain.Inbox {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InboxPoller:Poll")
	defer trace.Finish()

	inbox := domain.Inbox{
		Sync: p.uc.CheckSync(ctx, participantID),
	}
	async, err := p.uc.CheckAsync(ctx, participantID)
	if err != nil {
		trace.SetError(err)
		logger.Log(zapcore.WarnLevel, err.Error(), "InboxPoller", participantID)
	}
	inbox.Async = async
	return inbox
}

// Run poll immediately then every interval until ctx done or handler fail, handler only receive non empty inbox.
// Nothing is drained once ctx is done, an inbox the handler failed to take is restored
func (p *InboxPoller) Run(ctx context.Context, participantID string, handler func(domain.Inbox) error) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if inbox := p.Poll(ctx, participantID); len(inbox.Sync) > 0 || len(inbox.Async) > 0 {
			if err := handler(inbox); err != nil {
				p.restore(participantID, inbox)
				return err
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// restore run detached from stream context, which is usually already canceled by a gone client
func (p *InboxPoller) restore(participantID string, inbox domain.Inbox) {
	if err := p.uc.Restore(context.Background(), participantID, inbox); err != nil {
		logger.Log(zapcore.ErrorLevel, err.Error(), "InboxPoller:Restore", participantID)
	}
}

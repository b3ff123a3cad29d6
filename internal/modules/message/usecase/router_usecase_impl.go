package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	channeldomain "github.com/golangid/nearchat/internal/modules/channel/domain"
	channelusecase "github.com/golangid/nearchat/internal/modules/channel/usecase"
	"github.com/golangid/nearchat/internal/modules/message/domain"
	"github.com/golangid/nearchat/internal/modules/message/repository"
	participantrepo "github.com/golangid/nearchat/internal/modules/participant/repository"
	"github.com/golangid/nearchat/logger"
	"github.com/golangid/nearchat/tracer"
)

type routerUsecaseImpl struct {
	store           participantrepo.PresenceStore
	channel         channelusecase.ChannelManager
	deliverer       repository.Deliverer
	deliveryTimeout time.Duration
	now             func() time.Time
}

// NewRouterUsecase usecase impl constructor, direct delivery and durable publish are bounded by deliveryTimeout
func NewRouterUsecase(store participantrepo.PresenceStore, channel channelusecase.ChannelManager,
	deliverer repository.Deliverer, deliveryTimeout time.Duration) RouterUsecase {
	return &routerUsecaseImpl{
		store:           store,
		channel:         channel,
		deliverer:       deliverer,
		deliveryTimeout: deliveryTimeout,
		now:             time.Now,
	}
}

// withTimeout run fn with deadline context and wait for its real outcome, collaborators abort on deadline.
// A failure after the deadline carries the context error
func (uc *routerUsecaseImpl) withTimeout(ctx context.Context, fn func(context.Context) error) error {
	if uc.deliveryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.deliveryTimeout)
		defer cancel()
	}

	err := fn(ctx)
	if err != nil && ctx.Err() != nil && !errors.Is(err, ctx.Err()) {
		err = fmt.Errorf("%w: %w", err, ctx.Err())
	}
	return err
}

func (uc *routerUsecaseImpl) Route(ctx context.Context, senderID, recipientID, text string) (result domain.RouteResult, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "RouterUsecase:Route")
	defer func() {
		trace.SetTag("mode", string(result.Mode))
		trace.SetError(err)
		trace.Finish()
	}()
	trace.SetTag("sender", senderID)
	trace.SetTag("recipient", recipientID)

	// presence lock is released here, no lock held during delivery
	reach := uc.store.Reachability(senderID, recipientID)
	if !reach.RecipientKnown {
		return result, fmt.Errorf("%w: %s", domain.ErrUnknownRecipient, recipientID)
	}
	result.DistanceKm = reach.DistanceKm

	if reach.Direct() {
		result.Mode = domain.ModeDirect
		err = uc.withTimeout(ctx, func(ctx context.Context) error {
			return uc.deliverer.Deliver(ctx, recipientID, senderID, text)
		})
		if err != nil {
			logger.LogEf("route %s -> %s: direct delivery failed: %v", senderID, recipientID, err)
			return result, fmt.Errorf("%w: %w", domain.ErrDirectDeliveryFailed, err)
		}
		return result, nil
	}

	result.Mode = domain.ModeDurable
	result.Queue = channeldomain.UserQueueName(recipientID)
	envelope := channeldomain.NewEnvelope(senderID, text, uc.now())
	err = uc.withTimeout(ctx, func(ctx context.Context) error {
		if !uc.channel.EnsureQueue(ctx, result.Queue) {
			return fmt.Errorf("%w: %s", channeldomain.ErrDurableChannelUnavailable, result.Queue)
		}
		if !uc.channel.Publish(ctx, result.Queue, envelope) {
			return fmt.Errorf("%w: %s", domain.ErrPublishFailed, result.Queue)
		}
		return nil
	})
	if err != nil && !isRouteError(err) {
		err = fmt.Errorf("%w: %w", domain.ErrPublishFailed, err)
	}
	return result, err
}

func (uc *routerUsecaseImpl) Broadcast(ctx context.Context, senderID, topic, text string) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "RouterUsecase:Broadcast")
	defer func() { trace.SetError(err); trace.Finish() }()
	trace.SetTag("topic", topic)

	if _, ok := uc.store.Info(senderID); !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownSender, senderID)
	}

	envelope := channeldomain.NewEnvelope(senderID, text, uc.now())
	return uc.withTimeout(ctx, func(ctx context.Context) error {
		if uc.channel.PublishTopic(ctx, topic, envelope) {
			return nil
		}
		if !uc.channel.HasTopic(topic) {
			return fmt.Errorf("%w: %s", domain.ErrUnknownTopic, topic)
		}
		return fmt.Errorf("%w: topic %s", domain.ErrPublishFailed, topic)
	})
}

func isRouteError(err error) bool {
	return errors.Is(err, channeldomain.ErrDurableChannelUnavailable) || errors.Is(err, domain.ErrPublishFailed)
}

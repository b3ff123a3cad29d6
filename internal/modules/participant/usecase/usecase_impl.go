package usecase

import (
	"context"
	"fmt"

	channeldomain "github.com/golangid/nearchat/internal/modules/channel/domain"
	channelusecase "github.com/golangid/nearchat/internal/modules/channel/usecase"
	mailboxusecase "github.com/golangid/nearchat/internal/modules/mailbox/usecase"
	"github.com/golangid/nearchat/internal/modules/participant/domain"
	"github.com/golangid/nearchat/internal/modules/participant/repository"
	"github.com/golangid/nearchat/logger"
	"github.com/golangid/nearchat/tracer"
)

type participantUsecaseImpl struct {
	store   repository.PresenceStore
	channel channelusecase.ChannelManager
	mailbox mailboxusecase.MailboxUsecase
}

// NewParticipantUsecase usecase impl constructor
func NewParticipantUsecase(store repository.PresenceStore, channel channelusecase.ChannelManager, mailbox mailboxusecase.MailboxUsecase) ParticipantUsecase {
	return &participantUsecaseImpl{
		store:   store,
		channel: channel,
		mailbox: mailbox,
	}
}

func (uc *participantUsecaseImpl) Register(ctx context.Context, req *domain.RegisterRequest) (p domain.Participant, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ParticipantUsecase:Register")
	defer func() { trace.SetError(err); trace.Finish() }()
	trace.SetTag("participant_id", req.ID)

	// queue first, a participant must never be visible without its durable queue
	if !uc.channel.ProvisionUser(ctx, req.ID) {
		return p, fmt.Errorf("%w: %s", channeldomain.ErrDurableChannelUnavailable, channeldomain.UserQueueName(req.ID))
	}

	// mailbox endpoint must exist before presence is visible to the router.
	// Declared queue is left as is on rejection, declare is idempotent
	if !uc.mailbox.Open(req.ID, req.Endpoint) {
		return p, fmt.Errorf("%w: %s", domain.ErrParticipantExists, req.ID)
	}
	p = req.ToParticipant()
	if !uc.store.Register(p) {
		uc.mailbox.Close(req.ID)
		return p, fmt.Errorf("%w: %s", domain.ErrParticipantExists, req.ID)
	}

	logger.LogIf("participant %s registered (%s) at %f,%f radius %.2f km", p.ID, p.Status, p.Location.Latitude, p.Location.Longitude, p.RadiusKm)
	return uc.Info(ctx, req.ID)
}

func (uc *participantUsecaseImpl) Update(ctx context.Context, id string, req *domain.UpdateRequest) (domain.Participant, error) {
	if !uc.store.Update(id, *req) {
		return domain.Participant{}, fmt.Errorf("%w: %s", domain.ErrParticipantNotFound, id)
	}
	return uc.Info(ctx, id)
}

func (uc *participantUsecaseImpl) SetStatus(ctx context.Context, id string, status domain.Status) error {
	_, err := uc.Update(ctx, id, &domain.UpdateRequest{Status: &status})
	return err
}

func (uc *participantUsecaseImpl) Info(ctx context.Context, id string) (domain.Participant, error) {
	p, ok := uc.store.Info(id)
	if !ok {
		return p, fmt.Errorf("%w: %s", domain.ErrParticipantNotFound, id)
	}
	return p, nil
}

func (uc *participantUsecaseImpl) List(ctx context.Context) []domain.Participant {
	return uc.store.List()
}

// Nearby of unknown participant is empty, not an error
func (uc *participantUsecaseImpl) Nearby(ctx context.Context, id string) []domain.NearbyResult {
	return uc.store.Nearby(id)
}

func (uc *participantUsecaseImpl) Remove(ctx context.Context, id string) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ParticipantUsecase:Remove")
	defer func() { trace.SetError(err); trace.Finish() }()

	topics := uc.store.Topics(id)
	if !uc.store.Remove(id) {
		return fmt.Errorf("%w: %s", domain.ErrParticipantNotFound, id)
	}
	uc.mailbox.Close(id)

	queue := channeldomain.UserQueueName(id)
	for _, topic := range topics {
		uc.channel.UnbindQueue(ctx, queue, topic)
	}
	if !uc.channel.DeprovisionUser(ctx, id) {
		logger.LogEf("participant %s removed but queue %s was not deleted", id, queue)
	}
	return nil
}

func (uc *participantUsecaseImpl) Subscribe(ctx context.Context, id, topic string) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ParticipantUsecase:Subscribe")
	defer func() { trace.SetError(err); trace.Finish() }()

	if _, err := uc.Info(ctx, id); err != nil {
		return err
	}
	if !uc.channel.BindQueue(ctx, channeldomain.UserQueueName(id), topic) {
		if !uc.channel.HasTopic(topic) {
			return fmt.Errorf("%w: %s", domain.ErrTopicNotFound, topic)
		}
		return fmt.Errorf("%w: bind %s", channeldomain.ErrDurableChannelUnavailable, topic)
	}
	if !uc.store.Subscribe(id, topic) {
		// removed while binding
		uc.channel.UnbindQueue(ctx, channeldomain.UserQueueName(id), topic)
		return fmt.Errorf("%w: %s", domain.ErrParticipantNotFound, id)
	}
	return nil
}

func (uc *participantUsecaseImpl) Unsubscribe(ctx context.Context, id, topic string) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ParticipantUsecase:Unsubscribe")
	defer func() { trace.SetError(err); trace.Finish() }()

	if _, err := uc.Info(ctx, id); err != nil {
		return err
	}
	if !uc.channel.UnbindQueue(ctx, channeldomain.UserQueueName(id), topic) {
		return fmt.Errorf("%w: unbind %s", channeldomain.ErrDurableChannelUnavailable, topic)
	}
	uc.store.Unsubscribe(id, topic)
	return nil
}

func (uc *participantUsecaseImpl) Topics(ctx context.Context, id string) ([]string, error) {
	if _, err := uc.Info(ctx, id); err != nil {
		return []string{}, err
	}
	return uc.store.Topics(id), nil
}

package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golangid/nearchat/candihelper"
	"github.com/golangid/nearchat/candishared"
	"github.com/golangid/nearchat/codebase/interfaces"
	"github.com/golangid/nearchat/internal/modules/channel/domain"
	"github.com/golangid/nearchat/logger"
	"github.com/golangid/nearchat/tracer"
	"github.com/google/uuid"
	"go.uber.org/zap/zapcore"
)

const logContext = "ChannelManager"

type channelManagerImpl struct {
	broker   interfaces.QueueBroker
	timeout  time.Duration
	maxBatch int

	mu     sync.Mutex
	queues map[string]struct{}
	topics map[string]struct{}
}

// NewChannelManager usecase impl constructor, every broker call is bounded by timeout
// and one drain pop at most maxBatch envelope
func NewChannelManager(broker interfaces.QueueBroker, timeout time.Duration, maxBatch int) ChannelManager {
	if maxBatch <= 0 {
		maxBatch = 1000
	}
	return &channelManagerImpl{
		broker:   broker,
		timeout:  timeout,
		maxBatch: maxBatch,
		queues:   make(map[string]struct{}),
		topics:   make(map[string]struct{}),
	}
}

func (uc *channelManagerImpl) call(ctx context.Context, scope string, fn func(context.Context) error) error {
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	err := fn(ctx)
	if err != nil {
		logger.Log(zapcore.ErrorLevel, err.Error(), logContext, scope)
	}
	return err
}

func (uc *channelManagerImpl) cache(set map[string]struct{}, name string, exist bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if exist {
		set[name] = struct{}{}
	} else {
		delete(set, name)
	}
}

func (uc *channelManagerImpl) EnsureQueue(ctx context.Context, name string) bool {
	err := uc.call(ctx, "ensure_queue", func(ctx context.Context) error {
		return uc.broker.DeclareQueue(ctx, name)
	})
	if err != nil {
		return false
	}
	uc.cache(uc.queues, name, true)
	return true
}

func (uc *channelManagerImpl) DeleteQueue(ctx context.Context, name string) bool {
	err := uc.call(ctx, "delete_queue", func(ctx context.Context) error {
		return uc.broker.DeleteQueue(ctx, name)
	})
	if err != nil && !errors.Is(err, candishared.ErrChannelNotFound) {
		return false
	}
	uc.cache(uc.queues, name, false)
	return err == nil
}

func (uc *channelManagerImpl) EnsureTopic(ctx context.Context, name string) bool {
	err := uc.call(ctx, "ensure_topic", func(ctx context.Context) error {
		return uc.broker.DeclareTopic(ctx, name)
	})
	if err != nil {
		return false
	}
	uc.cache(uc.topics, name, true)
	return true
}

func (uc *channelManagerImpl) DeleteTopic(ctx context.Context, name string) bool {
	err := uc.call(ctx, "delete_topic", func(ctx context.Context) error {
		return uc.broker.DeleteTopic(ctx, name)
	})
	if err != nil && !errors.Is(err, candishared.ErrChannelNotFound) {
		return false
	}
	uc.cache(uc.topics, name, false)
	return err == nil
}

func (uc *channelManagerImpl) publish(ctx context.Context, scope string, args *candishared.PublisherArgument, envelope domain.Envelope) bool {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ChannelManager:Publish")
	defer trace.Finish()
	trace.SetTag("queue", args.Topic)
	trace.SetTag("topic", args.Exchange)

	message, err := json.Marshal(envelope)
	if err != nil {
		logger.Log(zapcore.ErrorLevel, err.Error(), logContext, scope)
		return false
	}
	args.MessageID = uuid.NewString()
	args.ContentType = candihelper.HeaderMIMEApplicationJSON
	args.Message = message
	trace.Log("message", message)

	err = uc.call(ctx, scope, func(ctx context.Context) error {
		return uc.broker.Publish(ctx, args)
	})
	trace.SetError(err)
	return err == nil
}

func (uc *channelManagerImpl) Publish(ctx context.Context, queue string, envelope domain.Envelope) bool {
	return uc.publish(ctx, "publish", &candishared.PublisherArgument{Topic: queue}, envelope)
}

func (uc *channelManagerImpl) PublishTopic(ctx context.Context, topic string, envelope domain.Envelope) bool {
	return uc.publish(ctx, "publish_topic", &candishared.PublisherArgument{Exchange: topic}, envelope)
}

func (uc *channelManagerImpl) Drain(ctx context.Context, queue string) (envelopes []domain.Envelope, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ChannelManager:Drain")
	defer func() { trace.SetError(err); trace.Finish() }()
	trace.SetTag("queue", queue)

	envelopes = []domain.Envelope{}
	for len(envelopes) < uc.maxBatch {
		var (
			message []byte
			ok      bool
		)
		err = uc.call(ctx, "drain", func(ctx context.Context) (err error) {
			message, ok, err = uc.broker.Pop(ctx, queue)
			return err
		})
		if err != nil {
			// popped message already acked, keep them for caller
			return envelopes, fmt.Errorf("drain %s: %w", queue, err)
		}
		if !ok {
			break
		}

		var envelope domain.Envelope
		if err := json.Unmarshal(message, &envelope); err != nil {
			logger.LogEf("%s: skip malformed payload in %s: %v", logContext, queue, err)
			continue
		}
		envelopes = append(envelopes, envelope)
	}
	trace.SetTag("count", len(envelopes))
	return envelopes, nil
}

func (uc *channelManagerImpl) MessageCount(ctx context.Context, queue string) int {
	var count int
	err := uc.call(ctx, "message_count", func(ctx context.Context) (err error) {
		count, err = uc.broker.MessageCount(ctx, queue)
		return err
	})
	if err != nil {
		return -1
	}
	return count
}

func (uc *channelManagerImpl) BindQueue(ctx context.Context, queue, topic string) bool {
	return uc.call(ctx, "bind_queue", func(ctx context.Context) error {
		return uc.broker.BindQueue(ctx, queue, topic)
	}) == nil
}

func (uc *channelManagerImpl) UnbindQueue(ctx context.Context, queue, topic string) bool {
	return uc.call(ctx, "unbind_queue", func(ctx context.Context) error {
		return uc.broker.UnbindQueue(ctx, queue, topic)
	}) == nil
}

func (uc *channelManagerImpl) ProvisionUser(ctx context.Context, participantID string) bool {
	return uc.EnsureQueue(ctx, domain.UserQueueName(participantID))
}

func (uc *channelManagerImpl) DeprovisionUser(ctx context.Context, participantID string) bool {
	return uc.DeleteQueue(ctx, domain.UserQueueName(participantID))
}

func (uc *channelManagerImpl) ListQueues() []string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return candihelper.SortedKeys(uc.queues)
}

func (uc *channelManagerImpl) ListTopics() []string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return candihelper.SortedKeys(uc.topics)
}

func (uc *channelManagerImpl) HasTopic(name string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	_, ok := uc.topics[name]
	return ok
}

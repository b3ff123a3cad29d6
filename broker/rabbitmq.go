package broker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golangid/nearchat/candihelper"
	"github.com/golangid/nearchat/candishared"
	"github.com/golangid/nearchat/config/env"
	"github.com/golangid/nearchat/logger"
	"github.com/golangid/nearchat/tracer"
	"github.com/streadway/amqp"
)

const (
	// RabbitMQ broker name
	RabbitMQ = "rabbitmq"

	topicKind = "fanout"
)

// RabbitMQOptionFunc func type
type RabbitMQOptionFunc func(*RabbitMQBroker)

// RabbitMQSetBrokerHost set custom broker host
func RabbitMQSetBrokerHost(brokers string) RabbitMQOptionFunc {
	return func(bk *RabbitMQBroker) {
		bk.brokerHost = brokers
	}
}

// RabbitMQSetDialer set custom dial function
func RabbitMQSetDialer(dial func(url string) (*amqp.Connection, error)) RabbitMQOptionFunc {
	return func(bk *RabbitMQBroker) {
		bk.dial = dial
	}
}

// RabbitMQBroker durable queue broker using rabbitmq. Queues are durable, topics are durable fanout exchanges.
// Every operation use its own short-lived channel, so a channel error (example 404 on passive declare)
// never poisons other operations.
type RabbitMQBroker struct {
	brokerHost string
	dial       func(url string) (*amqp.Connection, error)

	mu   sync.Mutex
	conn *amqp.Connection
}

// NewRabbitMQBroker setup rabbitmq connection, default connection from RABBITMQ_BROKER environment
func NewRabbitMQBroker(opts ...RabbitMQOptionFunc) *RabbitMQBroker {
	deferFunc := logger.LogWithDefer("Load RabbitMQ broker configuration... ")
	defer deferFunc()

	rabbitmq := &RabbitMQBroker{
		brokerHost: env.BaseEnv().RabbitMQ.Broker,
		dial:       amqp.Dial,
	}
	for _, opt := range opts {
		opt(rabbitmq)
	}

	if _, err := rabbitmq.connection(); err != nil {
		panic(fmt.Sprintf("RabbitMQ: cannot connect to server broker %s: %v", candihelper.MaskingPasswordURL(rabbitmq.brokerHost), err))
	}
	return rabbitmq
}

// connection return live connection, redial once when previous connection has been closed
func (r *RabbitMQBroker) connection() (*amqp.Connection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conn != nil && !r.conn.IsClosed() {
		return r.conn, nil
	}

	conn, err := r.dial(r.brokerHost)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", candishared.ErrBrokerUnavailable, err)
	}
	r.conn = conn
	return conn, nil
}

func (r *RabbitMQBroker) withChannel(ctx context.Context, opName string, fn func(ch *amqp.Channel) error) (err error) {
	trace := tracer.StartTrace(ctx, "rabbitmq:"+opName)
	defer func() { trace.SetError(err); trace.Finish() }()

	conn, err := r.connection()
	if err != nil {
		return err
	}
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("%w: %v", candishared.ErrBrokerUnavailable, err)
	}
	defer ch.Close()

	// closing the channel abort the operation, broker requeue unacked delivery of a closed channel.
	// A broker that stopped answering is detected by amqp heartbeat, which also ends the wait
	return mapAMQPError(runBounded(ctx, func() { ch.Close() }, func() error { return fn(ch) }))
}

// runBounded run fn and always wait for it to return. When ctx is done first, abort is called to unblock fn.
// A fn that still completed successfully is reported as success, its result must not be dropped.
func runBounded(ctx context.Context, abort func(), fn func() error) error {
	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("panic: %v", r)
			}
		}()
		done <- fn()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		abort()
		if err := <-done; err != nil {
			return fmt.Errorf("%w: %v", ctx.Err(), err)
		}
		return nil
	}
}

// DeclareQueue method
func (r *RabbitMQBroker) DeclareQueue(ctx context.Context, name string) error {
	return r.withChannel(ctx, "declare_queue", func(ch *amqp.Channel) error {
		_, err := ch.QueueDeclare(
			name,
			true,  // durable
			false, // auto-deleted
			false, // exclusive
			false, // no-wait
			nil,
		)
		return err
	})
}

// DeleteQueue method
func (r *RabbitMQBroker) DeleteQueue(ctx context.Context, name string) error {
	return r.withChannel(ctx, "delete_queue", func(ch *amqp.Channel) error {
		if _, err := ch.QueueInspect(name); err != nil {
			return err
		}
		_, err := ch.QueueDelete(name, false, false, false)
		return err
	})
}

// DeclareTopic method
func (r *RabbitMQBroker) DeclareTopic(ctx context.Context, name string) error {
	return r.withChannel(ctx, "declare_topic", func(ch *amqp.Channel) error {
		return ch.ExchangeDeclare(
			name,
			topicKind,
			true,  // durable
			false, // auto-deleted
			false, // internal
			false, // no-wait
			nil,
		)
	})
}

// DeleteTopic method
func (r *RabbitMQBroker) DeleteTopic(ctx context.Context, name string) error {
	return r.withChannel(ctx, "delete_topic", func(ch *amqp.Channel) error {
		if err := ch.ExchangeDeclarePassive(name, topicKind, true, false, false, false, nil); err != nil {
			return err
		}
		return ch.ExchangeDelete(name, false, false)
	})
}

// BindQueue method
func (r *RabbitMQBroker) BindQueue(ctx context.Context, queue, topic string) error {
	return r.withChannel(ctx, "bind_queue", func(ch *amqp.Channel) error {
		// routing key is ignored by fanout exchange
		return ch.QueueBind(queue, "", topic, false, nil)
	})
}

// UnbindQueue method
func (r *RabbitMQBroker) UnbindQueue(ctx context.Context, queue, topic string) error {
	return r.withChannel(ctx, "unbind_queue", func(ch *amqp.Channel) error {
		return ch.QueueUnbind(queue, "", topic, nil)
	})
}

// Publish method
func (r *RabbitMQBroker) Publish(ctx context.Context, args *candishared.PublisherArgument) error {
	return r.withChannel(ctx, "publish", func(ch *amqp.Channel) error {
		if args.ContentType == "" {
			args.ContentType = candihelper.HeaderMIMEApplicationJSON
		}

		exchange, routingKey := "", args.Topic
		if args.Exchange != "" {
			exchange, routingKey = args.Exchange, ""
		}

		return ch.Publish(
			exchange,
			routingKey,
			false, // mandatory
			false, // immediate
			amqp.Publishing{
				DeliveryMode: amqp.Persistent,
				Timestamp:    time.Now(),
				MessageId:    args.MessageID,
				ContentType:  args.ContentType,
				Body:         args.Message,
				Headers:      amqp.Table(args.Header),
			})
	})
}

// Pop method, basic.get acked as soon as the payload is held. A pop aborted before ack is requeued by broker
func (r *RabbitMQBroker) Pop(ctx context.Context, queue string) ([]byte, bool, error) {
	var message []byte
	var ok bool
	err := r.withChannel(ctx, "pop", func(ch *amqp.Channel) error {
		msg, found, err := ch.Get(queue, false)
		if err != nil || !found {
			return err
		}
		if err := msg.Ack(false); err != nil {
			return err
		}
		message, ok = msg.Body, true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return message, ok, nil
}

// MessageCount method, passive inspection without consuming
func (r *RabbitMQBroker) MessageCount(ctx context.Context, queue string) (int, error) {
	var count int
	err := r.withChannel(ctx, "message_count", func(ch *amqp.Channel) error {
		q, err := ch.QueueInspect(queue)
		count = q.Messages
		return err
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Name method
func (r *RabbitMQBroker) Name() string {
	return RabbitMQ
}

// Health method
func (r *RabbitMQBroker) Health() map[string]error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	if r.conn == nil || r.conn.IsClosed() {
		err = candishared.ErrBrokerUnavailable
	}
	return map[string]error{RabbitMQ: err}
}

// Disconnect method
func (r *RabbitMQBroker) Disconnect(ctx context.Context) error {
	deferFunc := logger.LogWithDefer("rabbitmq: disconnect...")
	defer deferFunc()

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conn == nil || r.conn.IsClosed() {
		return nil
	}
	return r.conn.Close()
}

func mapAMQPError(err error) error {
	var amqpErr *amqp.Error
	if errors.As(err, &amqpErr) {
		switch {
		case amqpErr.Code == amqp.NotFound:
			return fmt.Errorf("%w: %s", candishared.ErrChannelNotFound, amqpErr.Reason)
		case errors.Is(err, amqp.ErrClosed):
			return fmt.Errorf("%w: %s", candishared.ErrBrokerUnavailable, amqpErr.Reason)
		}
	}
	return err
}

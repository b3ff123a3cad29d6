package broker

import (
	"context"
	"errors"
	"fmt"

	"github.com/golangid/nearchat/candishared"
	"github.com/golangid/nearchat/codebase/interfaces"
	"github.com/golangid/nearchat/tracer"
	"github.com/gomodule/redigo/redis"
)

// Redis broker name
const Redis = "redis"

// RedisBroker durable queue broker on redis lists.
// Declared queues and topics are tracked in sets, topic subscriptions are a set of queue names per topic,
// so publish to topic fan out to every bound queue list.
type RedisBroker struct {
	pool   interfaces.RedisPool
	prefix string
}

// NewRedisBroker constructor
func NewRedisBroker(pool interfaces.RedisPool, keyPrefix string) *RedisBroker {
	return &RedisBroker{pool: pool, prefix: keyPrefix}
}

func (r *RedisBroker) queuesKey() string { return r.prefix + ":queues" }

func (r *RedisBroker) topicsKey() string { return r.prefix + ":topics" }

func (r *RedisBroker) queueKey(name string) string { return r.prefix + ":queue:" + name }

func (r *RedisBroker) topicKey(name string) string { return r.prefix + ":topic:" + name }

func (r *RedisBroker) do(ctx context.Context, opName string, fn func(conn redis.Conn) error) (err error) {
	trace := tracer.StartTrace(ctx, "redis_broker:"+opName)
	defer func() { trace.SetError(err); trace.Finish() }()

	conn, err := r.pool.WritePool().GetContext(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", candishared.ErrBrokerUnavailable, err)
	}
	defer conn.Close()

	return fn(conn)
}

func isMember(ctx context.Context, conn redis.Conn, key, member string) (bool, error) {
	return redis.Bool(redis.DoContext(conn, ctx, "SISMEMBER", key, member))
}

func (r *RedisBroker) mustExist(ctx context.Context, conn redis.Conn, key, name string) error {
	ok, err := isMember(ctx, conn, key, name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", candishared.ErrChannelNotFound, name)
	}
	return nil
}

// DeclareQueue method
func (r *RedisBroker) DeclareQueue(ctx context.Context, name string) error {
	return r.do(ctx, "declare_queue", func(conn redis.Conn) error {
		_, err := redis.DoContext(conn, ctx, "SADD", r.queuesKey(), name)
		return err
	})
}

// DeleteQueue method, pending message and topic subscription of the queue are dropped
func (r *RedisBroker) DeleteQueue(ctx context.Context, name string) error {
	return r.do(ctx, "delete_queue", func(conn redis.Conn) error {
		removed, err := redis.Int(redis.DoContext(conn, ctx, "SREM", r.queuesKey(), name))
		if err != nil {
			return err
		}
		if removed == 0 {
			return fmt.Errorf("%w: %s", candishared.ErrChannelNotFound, name)
		}

		topics, err := redis.Strings(redis.DoContext(conn, ctx, "SMEMBERS", r.topicsKey()))
		if err != nil {
			return err
		}
		for _, topic := range topics {
			if _, err := redis.DoContext(conn, ctx, "SREM", r.topicKey(topic), name); err != nil {
				return err
			}
		}
		_, err = redis.DoContext(conn, ctx, "DEL", r.queueKey(name))
		return err
	})
}

// DeclareTopic method
func (r *RedisBroker) DeclareTopic(ctx context.Context, name string) error {
	return r.do(ctx, "declare_topic", func(conn redis.Conn) error {
		_, err := redis.DoContext(conn, ctx, "SADD", r.topicsKey(), name)
		return err
	})
}

// DeleteTopic method
func (r *RedisBroker) DeleteTopic(ctx context.Context, name string) error {
	return r.do(ctx, "delete_topic", func(conn redis.Conn) error {
		removed, err := redis.Int(redis.DoContext(conn, ctx, "SREM", r.topicsKey(), name))
		if err != nil {
			return err
		}
		if removed == 0 {
			return fmt.Errorf("%w: %s", candishared.ErrChannelNotFound, name)
		}
		_, err = redis.DoContext(conn, ctx, "DEL", r.topicKey(name))
		return err
	})
}

// BindQueue method
func (r *RedisBroker) BindQueue(ctx context.Context, queue, topic string) error {
	return r.do(ctx, "bind_queue", func(conn redis.Conn) error {
		if err := r.mustExist(ctx, conn, r.queuesKey(), queue); err != nil {
			return err
		}
		if err := r.mustExist(ctx, conn, r.topicsKey(), topic); err != nil {
			return err
		}
		_, err := redis.DoContext(conn, ctx, "SADD", r.topicKey(topic), queue)
		return err
	})
}

// UnbindQueue method
func (r *RedisBroker) UnbindQueue(ctx context.Context, queue, topic string) error {
	return r.do(ctx, "unbind_queue", func(conn redis.Conn) error {
		_, err := redis.DoContext(conn, ctx, "SREM", r.topicKey(topic), queue)
		return err
	})
}

// Publish method
func (r *RedisBroker) Publish(ctx context.Context, args *candishared.PublisherArgument) error {
	return r.do(ctx, "publish", func(conn redis.Conn) error {
		if args.Exchange == "" {
			if err := r.mustExist(ctx, conn, r.queuesKey(), args.Topic); err != nil {
				return err
			}
			_, err := redis.DoContext(conn, ctx, "RPUSH", r.queueKey(args.Topic), args.Message)
			return err
		}

		if err := r.mustExist(ctx, conn, r.topicsKey(), args.Exchange); err != nil {
			return err
		}
		queues, err := redis.Strings(redis.DoContext(conn, ctx, "SMEMBERS", r.topicKey(args.Exchange)))
		if err != nil {
			return err
		}
		for _, queue := range queues {
			if _, err := redis.DoContext(conn, ctx, "RPUSH", r.queueKey(queue), args.Message); err != nil {
				return err
			}
		}
		return nil
	})
}

// Pop method
func (r *RedisBroker) Pop(ctx context.Context, queue string) (message []byte, ok bool, err error) {
	err = r.do(ctx, "pop", func(conn redis.Conn) error {
		reply, popErr := redis.Bytes(redis.DoContext(conn, ctx, "LPOP", r.queueKey(queue)))
		if errors.Is(popErr, redis.ErrNil) {
			return nil
		}
		if popErr != nil {
			return popErr
		}
		message, ok = reply, true
		return nil
	})
	return message, ok, err
}

// MessageCount method
func (r *RedisBroker) MessageCount(ctx context.Context, queue string) (count int, err error) {
	err = r.do(ctx, "message_count", func(conn redis.Conn) error {
		if err := r.mustExist(ctx, conn, r.queuesKey(), queue); err != nil {
			return err
		}
		count, err = redis.Int(redis.DoContext(conn, ctx, "LLEN", r.queueKey(queue)))
		return err
	})
	return count, err
}

// Name method
func (r *RedisBroker) Name() string {
	return Redis
}

// Health method
func (r *RedisBroker) Health() map[string]error {
	return r.pool.Health()
}

// Disconnect method
func (r *RedisBroker) Disconnect(ctx context.Context) error {
	return r.pool.Disconnect(ctx)
}

package database

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/golangid/nearchat/candihelper"
	"github.com/golangid/nearchat/codebase/interfaces"
	"github.com/golangid/nearchat/config/env"
	"github.com/golangid/nearchat/logger"
	"github.com/gomodule/redigo/redis"
)

type redisInstance struct {
	read, write *redis.Pool
}

func (r *redisInstance) ReadPool() *redis.Pool {
	return r.read
}
func (r *redisInstance) WritePool() *redis.Pool {
	return r.write
}
func (r *redisInstance) Health() map[string]error {
	mErr := make(map[string]error)
	mErr["redis_read"] = ping(r.read)
	mErr["redis_write"] = ping(r.write)
	return mErr
}
func (r *redisInstance) Disconnect(ctx context.Context) (err error) {
	deferFunc := logger.LogWithDefer("redis: disconnect...")
	defer deferFunc()

	mErr := candihelper.NewMultiError()
	mErr.Append("read", r.read.Close())
	if r.write != r.read {
		mErr.Append("write", r.write.Close())
	}
	if mErr.HasError() {
		return mErr
	}
	return nil
}

// InitRedis connection from environment REDIS_HOST, REDIS_PORT, REDIS_AUTH, REDIS_TLS.
// Read and write share one pool, panic when redis is not reachable.
func InitRedis() interfaces.RedisPool {
	deferFunc := logger.LogWithDefer("Load Redis connection...")
	defer deferFunc()

	redisEnv := env.BaseEnv().Redis
	pool := NewRedisPool(redisEnv.Host, redisEnv.Port, redisEnv.Auth, redisEnv.TLS)
	if err := ping(pool); err != nil {
		panic(fmt.Errorf("redis ping: %w", err))
	}

	return &redisInstance{read: pool, write: pool}
}

// NewRedisPool construct redis pool without checking connection
func NewRedisPool(host, port, password string, useTLS bool) *redis.Pool {
	dialOpts := []redis.DialOption{
		redis.DialPassword(password),
		redis.DialUseTLS(useTLS),
		redis.DialConnectTimeout(5 * time.Second),
	}
	if useTLS {
		dialOpts = append(dialOpts, redis.DialTLSConfig(&tls.Config{ServerName: host}))
	}

	return &redis.Pool{
		MaxIdle:     10,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", fmt.Sprintf("%s:%s", host, port), dialOpts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < time.Minute {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}
}

func ping(pool *redis.Pool) error {
	conn := pool.Get()
	defer conn.Close()
	_, err := conn.Do("PING")
	return err
}

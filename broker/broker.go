package broker

import (
	"github.com/golangid/nearchat/codebase/interfaces"
	"github.com/golangid/nearchat/config/database"
	"github.com/golangid/nearchat/config/env"
)

/*
InitQueueBroker select durable channel broker from DURABLE_BACKEND environment

* rabbitmq (default), init connection from env RABBITMQ_BROKER

* redis, init pool from env REDIS_HOST, REDIS_PORT, REDIS_AUTH, REDIS_TLS and key prefix REDIS_KEY_PREFIX
*/
func InitQueueBroker() interfaces.QueueBroker {
	switch env.BaseEnv().DurableBackend {
	case env.BackendRedis:
		return NewRedisBroker(database.InitRedis(), env.BaseEnv().Redis.KeyPrefix)
	default:
		return NewRabbitMQBroker()
	}
}

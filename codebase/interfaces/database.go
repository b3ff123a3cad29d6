package interfaces

import (
	"github.com/gomodule/redigo/redis"
)

// RedisPool abstraction
type RedisPool interface {
	ReadPool() *redis.Pool
	WritePool() *redis.Pool
	Health() map[string]error
	Closer
}

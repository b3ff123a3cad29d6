package env

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golangid/nearchat/candihelper"
	"github.com/joho/godotenv"
)

const (
	// BackendRabbitMQ durable channel backend
	BackendRabbitMQ = "rabbitmq"
	// BackendRedis durable channel backend
	BackendRedis = "redis"
)

// Env model
type Env struct {
	ServiceName string
	BuildNumber string
	// Env on application
	Environment       string
	LoadConfigTimeout time.Duration

	DebugMode bool

	HTTPRootPath string
	// HTTPPort config
	HTTPPort uint16

	// BasicAuthUsername config, guard administrative routes
	BasicAuthUsername string
	// BasicAuthPassword config
	BasicAuthPassword string

	// JaegerTracingHost env, tracing disabled when empty
	JaegerTracingHost string

	// DurableBackend select broker for store-and-forward delivery, "rabbitmq" or "redis"
	DurableBackend string

	RabbitMQ struct {
		Broker string
	}

	Redis struct {
		Host, Port, Auth string
		TLS              bool
		KeyPrefix        string
	}

	// BrokerTimeout bound every call to durable channel broker
	BrokerTimeout time.Duration
	// DeliveryTimeout bound direct delivery and durable publish when routing a message
	DeliveryTimeout time.Duration
	// DrainMaxBatch max envelope popped in one drain
	DrainMaxBatch int
	// StreamPollInterval interval of inbox stream polling loop
	StreamPollInterval time.Duration

	StartAt string
}

var env Env

// BaseEnv get global basic environment
func BaseEnv() Env {
	return env
}

// SetEnv set env for mocking data env
func SetEnv(newEnv Env) {
	env = newEnv
}

// Load environment, panic when basic environment is invalid
func Load(serviceName string) {
	if err := godotenv.Load(os.Getenv(candihelper.WORKDIR) + ".env"); err != nil {
		log.Printf("Warning: load env, %v", err)
	}

	newEnv, err := Parse(serviceName)
	if err != nil {
		panic("Basic environment error: \n" + err.Error())
	}
	env = newEnv
}

// Parse environment from current process environment variables
func Parse(serviceName string) (Env, error) {
	var e Env
	var ok bool
	e.ServiceName = serviceName
	mErrs := candihelper.NewMultiError()

	e.BuildNumber = os.Getenv("BUILD_NUMBER")
	e.Environment = os.Getenv("ENVIRONMENT")
	e.DebugMode = parseBoolDefault("DEBUG_MODE", true)
	e.LoadConfigTimeout = parseDuration(mErrs, "LOAD_CONFIG_TIMEOUT", 10*time.Second)

	httpPort, err := strconv.Atoi(lookupDefault("HTTP_PORT", "8000"))
	if err != nil || httpPort <= 0 || httpPort > 65535 {
		mErrs.Append("HTTP_PORT", errors.New("HTTP_PORT environment must be a valid port number"))
	}
	e.HTTPPort = uint16(httpPort)
	e.HTTPRootPath = os.Getenv("HTTP_ROOT_PATH")

	e.BasicAuthUsername, ok = os.LookupEnv("BASIC_AUTH_USERNAME")
	if !ok {
		mErrs.Append("BASIC_AUTH_USERNAME", errors.New("missing BASIC_AUTH_USERNAME environment"))
	}
	e.BasicAuthPassword, ok = os.LookupEnv("BASIC_AUTH_PASS")
	if !ok {
		mErrs.Append("BASIC_AUTH_PASS", errors.New("missing BASIC_AUTH_PASS environment"))
	}

	e.JaegerTracingHost = os.Getenv("JAEGER_TRACING_HOST")

	e.DurableBackend = strings.ToLower(lookupDefault("DURABLE_BACKEND", BackendRabbitMQ))
	switch e.DurableBackend {
	case BackendRabbitMQ:
		e.RabbitMQ.Broker, ok = os.LookupEnv("RABBITMQ_BROKER")
		if !ok {
			mErrs.Append("RABBITMQ_BROKER", errors.New("missing RABBITMQ_BROKER environment"))
		}
	case BackendRedis:
		e.Redis.Host = lookupDefault("REDIS_HOST", "localhost")
		e.Redis.Port = lookupDefault("REDIS_PORT", "6379")
		e.Redis.Auth = os.Getenv("REDIS_AUTH")
		e.Redis.TLS = parseBoolDefault("REDIS_TLS", false)
		e.Redis.KeyPrefix = lookupDefault("REDIS_KEY_PREFIX", "nearchat")
	default:
		mErrs.Append("DURABLE_BACKEND", fmt.Errorf("unknown durable backend %q, use %q or %q",
			e.DurableBackend, BackendRabbitMQ, BackendRedis))
	}

	e.BrokerTimeout = parseDuration(mErrs, "BROKER_TIMEOUT", 5*time.Second)
	e.DeliveryTimeout = parseDuration(mErrs, "DELIVERY_TIMEOUT", 5*time.Second)
	e.StreamPollInterval = parseDuration(mErrs, "STREAM_POLL_INTERVAL", 2*time.Second)

	e.DrainMaxBatch, err = strconv.Atoi(lookupDefault("DRAIN_MAX_BATCH", "1000"))
	if err != nil || e.DrainMaxBatch <= 0 {
		mErrs.Append("DRAIN_MAX_BATCH", errors.New("DRAIN_MAX_BATCH environment must be a positive integer"))
	}

	e.StartAt = time.Now().Format(time.RFC3339)

	if mErrs.HasError() {
		return e, mErrs
	}
	return e, nil
}

func lookupDefault(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return defaultValue
}

func parseBoolDefault(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return b
}

func parseDuration(mErrs candihelper.MultiError, key string, defaultValue time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		mErrs.Append(key, fmt.Errorf("%s environment must be a positive duration (example: 5s)", key))
		return defaultValue
	}
	return d
}

package config

import (
	"context"
	"fmt"
	"time"

	"github.com/golangid/nearchat/codebase/interfaces"
	"github.com/golangid/nearchat/config/env"
	"github.com/golangid/nearchat/logger"
)

// Config app
type Config struct {
	closers []interfaces.Closer
}

// Init app config, load environment and logger
func Init(serviceName string) *Config {
	env.Load(serviceName)
	logger.InitZap()
	logger.SetDebugMode(env.BaseEnv().DebugMode)
	return new(Config)
}

// LoadFunc load selected dependency with context timeout,
// depsFunc return all dependency that must be closed when app exit
func (c *Config) LoadFunc(depsFunc func(context.Context) []interfaces.Closer) {
	ctx, cancel := context.WithTimeout(context.Background(), env.BaseEnv().LoadConfigTimeout)
	defer cancel()

	// set value from channel
	errLoadConfig := make(chan error)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				errLoadConfig <- fmt.Errorf("failed init configuration :=> %v", r)
			}
			close(errLoadConfig)
		}()
		c.closers = depsFunc(ctx)
	}()

	// with timeout to init configuration
	select {
	case <-ctx.Done():
		panic(fmt.Errorf("timeout to load selected dependencies: %w", ctx.Err()))
	case err := <-errLoadConfig:
		if err != nil {
			panic(err)
		}
	}
}

// Exit release all connection, think as deferred function in main
func (c *Config) Exit() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, cl := range c.closers {
		if err := cl.Disconnect(ctx); err != nil {
			logger.LogE(err.Error())
		}
	}
	logger.LogYellow("Config: Success close all connection")
}

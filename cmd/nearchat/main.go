package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/golangid/nearchat/broker"
	"github.com/golangid/nearchat/candihelper"
	"github.com/golangid/nearchat/codebase/app"
	"github.com/golangid/nearchat/codebase/factory/dependency"
	"github.com/golangid/nearchat/codebase/interfaces"
	"github.com/golangid/nearchat/config"
	"github.com/golangid/nearchat/config/env"
	"github.com/golangid/nearchat/internal"
	"github.com/golangid/nearchat/logger"
	"github.com/golangid/nearchat/middleware"
	"github.com/golangid/nearchat/tracer"
	"github.com/golangid/nearchat/validator"
	"github.com/spf13/cobra"
)

const serviceName = "nearchat"

var rootCmd = &cobra.Command{
	Use:   serviceName,
	Short: "Presence-aware hybrid message router",
	Long: `nearchat tracks participant location and status, delivers a message directly
to an online recipient within the sender's radius and store-and-forwards
everything else through a durable broker queue.`,
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run REST server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print service version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", serviceName, candihelper.Version)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve() (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("\x1b[31;1mFailed to start %s service: %v\x1b[0m\n", serviceName, r)
			fmt.Printf("Stack trace: \n%s\n", debug.Stack())
			err = fmt.Errorf("%v", r)
		}
	}()

	cfg := config.Init(serviceName)
	defer cfg.Exit()

	var deps dependency.Dependency
	cfg.LoadFunc(func(ctx context.Context) []interfaces.Closer {
		deps = dependency.InitDependency(
			dependency.SetMiddleware(middleware.NewMiddleware()),
			dependency.SetValidator(validator.NewValidator()),
			dependency.SetBroker(broker.InitQueueBroker()),
		)
		closers := []interfaces.Closer{deps}

		if env.BaseEnv().JaegerTracingHost != "" {
			tracerCloser, err := tracer.InitJaeger(serviceName,
				tracer.OptionSetAgentHost(env.BaseEnv().JaegerTracingHost),
				tracer.OptionSetLevel(env.BaseEnv().Environment),
				tracer.OptionSetBuildNumberTag(env.BaseEnv().BuildNumber),
			)
			if err != nil {
				logger.LogE(err.Error())
				return closers
			}
			closers = append(closers, tracerCloser)
		}
		return closers
	})

	app.New(internal.NewService(serviceName, deps)).Run()
	return nil
}

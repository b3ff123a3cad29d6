package internal

import (
	"github.com/golangid/nearchat/candiutils"
	"github.com/golangid/nearchat/codebase/factory"
	"github.com/golangid/nearchat/codebase/factory/dependency"
	"github.com/golangid/nearchat/codebase/factory/types"
	"github.com/golangid/nearchat/config/env"
	"github.com/golangid/nearchat/internal/modules/channel"
	channelusecase "github.com/golangid/nearchat/internal/modules/channel/usecase"
	"github.com/golangid/nearchat/internal/modules/mailbox"
	mailboxrepo "github.com/golangid/nearchat/internal/modules/mailbox/repository"
	mailboxusecase "github.com/golangid/nearchat/internal/modules/mailbox/usecase"
	"github.com/golangid/nearchat/internal/modules/message"
	messagerepo "github.com/golangid/nearchat/internal/modules/message/repository"
	messageusecase "github.com/golangid/nearchat/internal/modules/message/usecase"
	"github.com/golangid/nearchat/internal/modules/participant"
	participantrepo "github.com/golangid/nearchat/internal/modules/participant/repository"
	participantusecase "github.com/golangid/nearchat/internal/modules/participant/usecase"
)

// Service model
type Service struct {
	dependency dependency.Dependency
	modules    []factory.ModuleFactory
	name       types.Service
}

// NewService in this service, every shared component is built once here and injected to modules
func NewService(serviceName string, deps dependency.Dependency) factory.ServiceFactory {
	cfg := env.BaseEnv()

	presence := participantrepo.NewPresenceInMem()
	mailboxUsecase := mailboxusecase.NewMailboxUsecase(mailboxrepo.NewMailboxRegistry(), mailboxrepo.NewEndpointRegistry())
	channelManager := channelusecase.NewChannelManager(deps.GetBroker(), cfg.BrokerTimeout, cfg.DrainMaxBatch)

	// remote mailbox call is never retried, a failed direct delivery is reported to sender
	httpClient := candiutils.NewHTTPRequest(
		candiutils.HTTPRequestSetRetries(0),
		candiutils.HTTPRequestSetTimeout(cfg.DeliveryTimeout),
	)
	deliverer := messagerepo.NewDeliverer(mailboxUsecase, httpClient)

	routerUsecase := messageusecase.NewRouterUsecase(presence, channelManager, deliverer, cfg.DeliveryTimeout)
	inboxUsecase := messageusecase.NewInboxUsecase(mailboxUsecase, channelManager)
	participantUsecase := participantusecase.NewParticipantUsecase(presence, channelManager, mailboxUsecase)

	modules := []factory.ModuleFactory{
		participant.NewModule(participantUsecase, deps),
		message.NewModule(routerUsecase, inboxUsecase, cfg.StreamPollInterval, deps),
		mailbox.NewModule(mailboxUsecase, deps),
		channel.NewModule(channelManager, deps),
	}

	return &Service{
		dependency: deps,
		modules:    modules,
		name:       types.Service(serviceName),
	}
}

// GetDependency method
func (s *Service) GetDependency() dependency.Dependency {
	return s.dependency
}

// GetModules method
func (s *Service) GetModules() []factory.ModuleFactory {
	return s.modules
}

// Name method
func (s *Service) Name() types.Service {
	return s.name
}

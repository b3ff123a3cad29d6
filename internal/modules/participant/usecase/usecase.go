package usecase

import (
	"context"

	"github.com/golangid/nearchat/internal/modules/participant/domain"
)

// ParticipantUsecase abstraction
type ParticipantUsecase interface {
	// Register provision durable queue, then open mailbox, then publish presence record
	Register(ctx context.Context, req *domain.RegisterRequest) (domain.Participant, error)
	Update(ctx context.Context, id string, req *domain.UpdateRequest) (domain.Participant, error)
	SetStatus(ctx context.Context, id string, status domain.Status) error
	Info(ctx context.Context, id string) (domain.Participant, error)
	List(ctx context.Context) []domain.Participant
	Nearby(ctx context.Context, id string) []domain.NearbyResult
	// Remove administrative removal of presence, mailbox and durable queue
	Remove(ctx context.Context, id string) error

	Subscribe(ctx context.Context, id, topic string) error
	Unsubscribe(ctx context.Context, id, topic string) error
	Topics(ctx context.Context, id string) ([]string, error)
}

package mocks

import (
	context "context"

	domain "github.com/golangid/nearchat/internal/modules/participant/domain"
	mock "github.com/stretchr/testify/mock"
)

// ParticipantUsecase is a mock type for the ParticipantUsecase type
type ParticipantUsecase struct {
	mock.Mock
}

// Info provides a mock function with given fields: ctx, id
func (_m *ParticipantUsecase) Info(ctx context.Context, id string) (domain.Participant, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.Participant), ret.Error(1)
}

// List provides a mock function with given fields: ctx
func (_m *ParticipantUsecase) List(ctx context.Context) []domain.Participant {
	ret := _m.Called(ctx)

	var r0 []domain.Participant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Participant)
	}
	return r0
}

// Nearby provides a mock function with given fields: ctx, id
func (_m *ParticipantUsecase) Nearby(ctx context.Context, id string) []domain.NearbyResult {
	ret := _m.Called(ctx, id)

	var r0 []domain.NearbyResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.NearbyResult)
	}
	return r0
}

// Register provides a mock function with given fields: ctx, req
func (_m *ParticipantUsecase) Register(ctx context.Context, req *domain.RegisterRequest) (domain.Participant, error) {
	ret := _m.Called(ctx, req)
	return ret.Get(0).(domain.Participant), ret.Error(1)
}

// Remove provides a mock function with given fields: ctx, id
func (_m *ParticipantUsecase) Remove(ctx context.Context, id string) error {
	return _m.Called(ctx, id).Error(0)
}

// SetStatus provides a mock function with given fields: ctx, id, status
func (_m *ParticipantUsecase) SetStatus(ctx context.Context, id string, status domain.Status) error {
	return _m.Called(ctx, id, status).Error(0)
}

// Subscribe provides a mock function with given fields: ctx, id, topic
func (_m *ParticipantUsecase) Subscribe(ctx context.Context, id string, topic string) error {
	return _m.Called(ctx, id, topic).Error(0)
}

// Topics provides a mock function with given fields: ctx, id
func (_m *ParticipantUsecase) Topics(ctx context.Context, id string) ([]string, error) {
	ret := _m.Called(ctx, id)

	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}
	return r0, ret.Error(1)
}

// Unsubscribe provides a mock function with given fields: ctx, id, topic
func (_m *ParticipantUsecase) Unsubscribe(ctx context.Context, id string, topic string) error {
	return _m.Called(ctx, id, topic).Error(0)
}

// Update provides a mock function with given fields: ctx, id, req
func (_m *ParticipantUsecase) Update(ctx context.Context, id string, req *domain.UpdateRequest) (domain.Participant, error) {
	ret := _m.Called(ctx, id, req)
	return ret.Get(0).(domain.Participant), ret.Error(1)
}

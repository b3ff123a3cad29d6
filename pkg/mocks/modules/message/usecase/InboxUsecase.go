package mocks

import (
	context "context"

	channeldomain "github.com/golangid/nearchat/internal/modules/channel/domain"
	domain "github.com/golangid/nearchat/internal/modules/message/domain"
	mock "github.com/stretchr/testify/mock"
)

// InboxUsecase is a mock type for the InboxUsecase type
type InboxUsecase struct {
	mock.Mock
}

// CheckAsync provides a mock function with given fields: ctx, participantID
func (_m *InboxUsecase) CheckAsync(ctx context.Context, participantID string) ([]channeldomain.Envelope, error) {
	ret := _m.Called(ctx, participantID)

	var r0 []channeldomain.Envelope
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]channeldomain.Envelope)
	}
	return r0, ret.Error(1)
}

// CheckSync provides a mock function with given fields: ctx, participantID
func (_m *InboxUsecase) CheckSync(ctx context.Context, participantID string) []string {
	ret := _m.Called(ctx, participantID)

	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}
	return r0
}

// PendingCount provides a mock function with given fields: ctx, participantID
func (_m *InboxUsecase) PendingCount(ctx context.Context, participantID string) int {
	return _m.Called(ctx, participantID).Int(0)
}

// Restore provides a mock function with given fields: ctx, participantID, inbox
func (_m *InboxUsecase) Restore(ctx context.Context, participantID string, inbox domain.Inbox) error {
	return _m.Called(ctx, participantID, inbox).Error(0)
}

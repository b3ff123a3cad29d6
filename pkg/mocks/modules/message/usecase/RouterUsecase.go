package mocks

import (
	context "context"

	domain "github.com/golangid/nearchat/internal/modules/message/domain"
	mock "github.com/stretchr/testify/mock"
)

// RouterUsecase is a mock type for the RouterUsecase type
type RouterUsecase struct {
	mock.Mock
}

// Broadcast provides a mock function with given fields: ctx, senderID, topic, text
func (_m *RouterUsecase) Broadcast(ctx context.Context, senderID string, topic string, text string) error {
	return _m.Called(ctx, senderID, topic, text).Error(0)
}

// Route provides a mock function with given fields: ctx, senderID, recipientID, text
func (_m *RouterUsecase) Route(ctx context.Context, senderID string, recipientID string, text string) (domain.RouteResult, error) {
	ret := _m.Called(ctx, senderID, recipientID, text)
	return ret.Get(0).(domain.RouteResult), ret.Error(1)
}

package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// Deliverer is a mock type for the Deliverer type
type Deliverer struct {
	mock.Mock
}

// Deliver provides a mock function with given fields: ctx, recipientID, senderID, message
func (_m *Deliverer) Deliver(ctx context.Context, recipientID string, senderID string, message string) error {
	return _m.Called(ctx, recipientID, senderID, message).Error(0)
}

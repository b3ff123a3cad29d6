package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// MailboxUsecase is a mock type for the MailboxUsecase type
type MailboxUsecase struct {
	mock.Mock
}

// Close provides a mock function with given fields: id
func (_m *MailboxUsecase) Close(id string) {
	_m.Called(id)
}

// Deliver provides a mock function with given fields: ctx, recipientID, senderID, message
func (_m *MailboxUsecase) Deliver(ctx context.Context, recipientID string, senderID string, message string) error {
	return _m.Called(ctx, recipientID, senderID, message).Error(0)
}

// Drain provides a mock function with given fields: id
func (_m *MailboxUsecase) Drain(id string) []string {
	ret := _m.Called(id)

	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}
	return r0
}

// Open provides a mock function with given fields: id, endpoint
func (_m *MailboxUsecase) Open(id string, endpoint string) bool {
	return _m.Called(id, endpoint).Bool(0)
}

// Requeue provides a mock function with given fields: id, entries
func (_m *MailboxUsecase) Requeue(id string, entries []string) bool {
	return _m.Called(id, entries).Bool(0)
}

// Resolve provides a mock function with given fields: id
func (_m *MailboxUsecase) Resolve(id string) (string, bool) {
	ret := _m.Called(id)
	return ret.String(0), ret.Bool(1)
}

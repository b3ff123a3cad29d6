package mocks

import (
	context "context"

	domain "github.com/golangid/nearchat/internal/modules/channel/domain"
	mock "github.com/stretchr/testify/mock"
)

// ChannelManager is a mock type for the ChannelManager type
type ChannelManager struct {
	mock.Mock
}

// BindQueue provides a mock function with given fields: ctx, queue, topic
func (_m *ChannelManager) BindQueue(ctx context.Context, queue string, topic string) bool {
	return _m.Called(ctx, queue, topic).Bool(0)
}

// DeleteQueue provides a mock function with given fields: ctx, name
func (_m *ChannelManager) DeleteQueue(ctx context.Context, name string) bool {
	return _m.Called(ctx, name).Bool(0)
}

// DeleteTopic provides a mock function with given fields: ctx, name
func (_m *ChannelManager) DeleteTopic(ctx context.Context, name string) bool {
	return _m.Called(ctx, name).Bool(0)
}

// DeprovisionUser provides a mock function with given fields: ctx, participantID
func (_m *ChannelManager) DeprovisionUser(ctx context.Context, participantID string) bool {
	return _m.Called(ctx, participantID).Bool(0)
}

// Drain provides a mock function with given fields: ctx, queue
func (_m *ChannelManager) Drain(ctx context.Context, queue string) ([]domain.Envelope, error) {
	ret := _m.Called(ctx, queue)

	var r0 []domain.Envelope
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Envelope)
	}
	return r0, ret.Error(1)
}

// EnsureQueue provides a mock function with given fields: ctx, name
func (_m *ChannelManager) EnsureQueue(ctx context.Context, name string) bool {
	return _m.Called(ctx, name).Bool(0)
}

// EnsureTopic provides a mock function with given fields: ctx, name
func (_m *ChannelManager) EnsureTopic(ctx context.Context, name string) bool {
	return _m.Called(ctx, name).Bool(0)
}

// HasTopic provides a mock function with given fields: name
func (_m *ChannelManager) HasTopic(name string) bool {
	return _m.Called(name).Bool(0)
}

// ListQueues provides a mock function with given fields:
func (_m *ChannelManager) ListQueues() []string {
	ret := _m.Called()

	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}
	return r0
}

// ListTopics provides a mock function with given fields:
func (_m *ChannelManager) ListTopics() []string {
	ret := _m.Called()

	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}
	return r0
}

// MessageCount provides a mock function with given fields: ctx, queue
func (_m *ChannelManager) MessageCount(ctx context.Context, queue string) int {
	return _m.Called(ctx, queue).Int(0)
}

// ProvisionUser provides a mock function with given fields: ctx, participantID
func (_m *ChannelManager) ProvisionUser(ctx context.Context, participantID string) bool {
	return _m.Called(ctx, participantID).Bool(0)
}

// Publish provides a mock function with given fields: ctx, queue, envelope
func (_m *ChannelManager) Publish(ctx context.Context, queue string, envelope domain.Envelope) bool {
	return _m.Called(ctx, queue, envelope).Bool(0)
}

// PublishTopic provides a mock function with given fields: ctx, topic, envelope
func (_m *ChannelManager) PublishTopic(ctx context.Context, topic string, envelope domain.Envelope) bool {
	return _m.Called(ctx, topic, envelope).Bool(0)
}

// UnbindQueue provides a mock function with given fields: ctx, queue, topic
func (_m *ChannelManager) UnbindQueue(ctx context.Context, queue string, topic string) bool {
	return _m.Called(ctx, queue, topic).Bool(0)
}

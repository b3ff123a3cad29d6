package mocks

import (
	context "context"

	candishared "github.com/golangid/nearchat/candishared"
	mock "github.com/stretchr/testify/mock"
)

// QueueBroker is a mock type for the QueueBroker type
type QueueBroker struct {
	mock.Mock
}

// BindQueue provides a mock function with given fields: ctx, queue, topic
func (_m *QueueBroker) BindQueue(ctx context.Context, queue string, topic string) error {
	ret := _m.Called(ctx, queue, topic)
	return ret.Error(0)
}

// DeclareQueue provides a mock function with given fields: ctx, name
func (_m *QueueBroker) DeclareQueue(ctx context.Context, name string) error {
	ret := _m.Called(ctx, name)
	return ret.Error(0)
}

// DeclareTopic provides a mock function with given fields: ctx, name
func (_m *QueueBroker) DeclareTopic(ctx context.Context, name string) error {
	ret := _m.Called(ctx, name)
	return ret.Error(0)
}

// DeleteQueue provides a mock function with given fields: ctx, name
func (_m *QueueBroker) DeleteQueue(ctx context.Context, name string) error {
	ret := _m.Called(ctx, name)
	return ret.Error(0)
}

// DeleteTopic provides a mock function with given fields: ctx, name
func (_m *QueueBroker) DeleteTopic(ctx context.Context, name string) error {
	ret := _m.Called(ctx, name)
	return ret.Error(0)
}

// Disconnect provides a mock function with given fields: ctx
func (_m *QueueBroker) Disconnect(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

// Health provides a mock function with given fields:
func (_m *QueueBroker) Health() map[string]error {
	ret := _m.Called()

	var r0 map[string]error
	if rf, ok := ret.Get(0).(func() map[string]error); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[string]error)
	}
	return r0
}

// MessageCount provides a mock function with given fields: ctx, queue
func (_m *QueueBroker) MessageCount(ctx context.Context, queue string) (int, error) {
	ret := _m.Called(ctx, queue)
	return ret.Int(0), ret.Error(1)
}

// Name provides a mock function with given fields:
func (_m *QueueBroker) Name() string {
	ret := _m.Called()
	return ret.String(0)
}

// Pop provides a mock function with given fields: ctx, queue
func (_m *QueueBroker) Pop(ctx context.Context, queue string) ([]byte, bool, error) {
	ret := _m.Called(ctx, queue)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Bool(1), ret.Error(2)
}

// Publish provides a mock function with given fields: ctx, args
func (_m *QueueBroker) Publish(ctx context.Context, args *candishared.PublisherArgument) error {
	ret := _m.Called(ctx, args)
	return ret.Error(0)
}

// UnbindQueue provides a mock function with given fields: ctx, queue, topic
func (_m *QueueBroker) UnbindQueue(ctx context.Context, queue string, topic string) error {
	ret := _m.Called(ctx, queue, topic)
	return ret.Error(0)
}

package candishared

import "errors"

var (
	// ErrChannelNotFound queue or topic does not exist in broker
	ErrChannelNotFound = errors.New("channel not found")
	// ErrBrokerUnavailable broker connection is not usable
	ErrBrokerUnavailable = errors.New("broker unavailable")
)

package domain

import (
	"errors"
	"time"
)

// UserQueuePrefix prefix of participant dedicated durable queue
const UserQueuePrefix = "user_"

// ErrDurableChannelUnavailable durable queue of recipient cannot be declared
var ErrDurableChannelUnavailable = errors.New("durable channel unavailable")

// UserQueueName deterministic durable queue name of participant
func UserQueueName(participantID string) string {
	return UserQueuePrefix + participantID
}

// Envelope durable delivery payload, field names are fixed for interop with other consumer
type Envelope struct {
	From    string `json:"from"`
	Message string `json:"message"`
	// Timestamp seconds since epoch
	Timestamp float64 `json:"timestamp"`
}

// NewEnvelope with timestamp from given time
func NewEnvelope(from, message string, now time.Time) Envelope {
	return Envelope{
		From:      from,
		Message:   message,
		Timestamp: float64(now.UnixNano()) / float64(time.Second),
	}
}

// Time of envelope timestamp
func (e Envelope) Time() time.Time {
	sec := int64(e.Timestamp)
	return time.Unix(sec, int64((e.Timestamp-float64(sec))*float64(time.Second)))
}

// ChannelList local cache of durable channel
type ChannelList struct {
	Queues []string `json:"queues"`
	Topics []string `json:"topics"`
}

// CreateChannelRequest admin payload
type CreateChannelRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

package domain

import (
	"errors"
	"fmt"
)

// ErrEndpointUnreachable mailbox of recipient is not open or remote endpoint cannot be reached
var ErrEndpointUnreachable = errors.New("mailbox endpoint unreachable")

// DeliverRequest direct delivery payload
type DeliverRequest struct {
	Sender  string `json:"sender" validate:"required"`
	Message string `json:"message"`
}

// FormatEntry mailbox entry of direct delivered message
func FormatEntry(sender, recipient, message string) string {
	return fmt.Sprintf("[SYNC MSG] %s -> %s: %s", sender, recipient, message)
}

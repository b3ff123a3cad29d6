package repository

import "github.com/golangid/nearchat/internal/modules/participant/domain"

// PresenceStore abstraction of concurrent presence registry.
// Every method is atomic with respect to every other, returned values never alias internal state.
type PresenceStore interface {
	Register(p domain.Participant) bool
	Update(id string, req domain.UpdateRequest) bool
	Nearby(id string) []domain.NearbyResult
	Info(id string) (domain.Participant, bool)
	Reachability(senderID, recipientID string) domain.Reachability
	Remove(id string) bool
	List() []domain.Participant
	Subscribe(id, topic string) bool
	Unsubscribe(id, topic string) bool
	Topics(id string) []string
}

package domain

import (
	"errors"

	"github.com/golangid/nearchat/candihelper"
)

// Status presence status of participant
type Status string

const (
	// StatusOnline participant accept direct delivery
	StatusOnline Status = "online"
	// StatusOffline participant only reachable by durable delivery
	StatusOffline Status = "offline"
)

// Valid check status value
func (s Status) Valid() bool {
	return s == StatusOnline || s == StatusOffline
}

var (
	// ErrParticipantExists register on existing id
	ErrParticipantExists = errors.New("participant already registered")
	// ErrParticipantNotFound unknown participant id
	ErrParticipantNotFound = errors.New("participant not found")
	// ErrTopicNotFound subscribe to undeclared topic
	ErrTopicNotFound = errors.New("topic not found")
)

// Location coordinate in degrees
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Participant presence state of registered user
type Participant struct {
	ID               string   `json:"id"`
	Location         Location `json:"location"`
	Status           Status   `json:"status"`
	RadiusKm         float64  `json:"radiusKm"`
	SubscribedTopics []string `json:"subscribedTopics"`
}

// IsOnline method
func (p *Participant) IsOnline() bool {
	return p.Status == StatusOnline
}

// Copy deep copy of participant, subscribed topics never shared with store
func (p Participant) Copy() Participant {
	topics := make([]string, len(p.SubscribedTopics))
	copy(topics, p.SubscribedTopics)
	p.SubscribedTopics = topics
	return p
}

// UpdateRequest partial update, nil field is left unchanged
type UpdateRequest struct {
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
	Status    *Status  `json:"status,omitempty" validate:"omitempty,oneof=online offline"`
	RadiusKm  *float64 `json:"radiusKm,omitempty" validate:"omitempty,gte=0"`
}

// IsEmpty no field to update
func (u *UpdateRequest) IsEmpty() bool {
	return u.Latitude == nil && u.Longitude == nil && u.Status == nil && u.RadiusKm == nil
}

// RegisterRequest payload
type RegisterRequest struct {
	ID        string  `json:"id" validate:"required,max=64,excludesall=/"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Status    Status  `json:"status" validate:"required,oneof=online offline"`
	RadiusKm  float64 `json:"radiusKm" validate:"gte=0"`
	// Endpoint base url of remote mailbox, empty means mailbox in this process
	Endpoint string `json:"endpoint,omitempty" validate:"omitempty,url"`
}

// ToParticipant convert request to new participant
func (r *RegisterRequest) ToParticipant() Participant {
	return Participant{
		ID:       r.ID,
		Location: Location{Latitude: r.Latitude, Longitude: r.Longitude},
		Status:   r.Status,
		RadiusKm: r.RadiusKm,
	}
}

// NearbyResult peer within querying participant radius
type NearbyResult struct {
	PeerID     string  `json:"peerId"`
	PeerStatus Status  `json:"peerStatus"`
	DistanceKm float64 `json:"distanceKm"`
}

// RoundedDistanceKm distance for presentation, 2 decimals
func (n NearbyResult) RoundedDistanceKm() float64 {
	return candihelper.RoundFloat(n.DistanceKm, 2)
}

// Reachability snapshot of recipient taken from sender point of view in one store lookup
type Reachability struct {
	SenderKnown    bool
	RecipientKnown bool
	Recipient      Participant
	// Nearby recipient within sender radius
	Nearby     bool
	DistanceKm float64
}

// Direct recipient accept direct delivery from sender
func (r Reachability) Direct() bool {
	return r.RecipientKnown && r.Nearby && r.Recipient.IsOnline()
}

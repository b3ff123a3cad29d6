package repository

import (
	"sort"
	"sync"

	"github.com/golangid/nearchat/candihelper"
	"github.com/golangid/nearchat/internal/modules/participant/domain"
)

type presenceInMem struct {
	mu           sync.RWMutex
	participants map[string]*domain.Participant
}

// NewPresenceInMem in-memory presence store, state is lost on restart
func NewPresenceInMem() PresenceStore {
	return &presenceInMem{
		participants: make(map[string]*domain.Participant),
	}
}

func (s *presenceInMem) Register(p domain.Participant) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.participants[p.ID]; ok {
		return false
	}
	p = p.Copy()
	s.participants[p.ID] = &p
	return true
}

func (s *presenceInMem) Update(id string, req domain.UpdateRequest) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.participants[id]
	if !ok {
		return false
	}
	if req.Latitude != nil {
		p.Location.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		p.Location.Longitude = *req.Longitude
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.RadiusKm != nil {
		p.RadiusKm = *req.RadiusKm
	}
	return true
}

// Nearby sorted by ascending distance, tie broken by peer id
func (s *presenceInMem) Nearby(id string) []domain.NearbyResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	querier, ok := s.participants[id]
	if !ok {
		return []domain.NearbyResult{}
	}

	results := []domain.NearbyResult{}
	for peerID, peer := range s.participants {
		if peerID == id {
			continue
		}
		if d, within := distanceWithin(querier, peer); within {
			results = append(results, domain.NearbyResult{PeerID: peerID, PeerStatus: peer.Status, DistanceKm: d})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].DistanceKm != results[j].DistanceKm {
			return results[i].DistanceKm < results[j].DistanceKm
		}
		return results[i].PeerID < results[j].PeerID
	})
	return results
}

func (s *presenceInMem) Info(id string) (domain.Participant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.participants[id]
	if !ok {
		return domain.Participant{}, false
	}
	return p.Copy(), true
}

func (s *presenceInMem) Reachability(senderID, recipientID string) (r domain.Reachability) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recipient, ok := s.participants[recipientID]
	if !ok {
		return r
	}
	r.RecipientKnown = true
	r.Recipient = recipient.Copy()

	sender, ok := s.participants[senderID]
	if !ok {
		return r
	}
	r.SenderKnown = true
	if senderID != recipientID {
		r.DistanceKm, r.Nearby = distanceWithin(sender, recipient)
	}
	return r
}

func (s *presenceInMem) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.participants[id]; !ok {
		return false
	}
	delete(s.participants, id)
	return true
}

// List sorted by id
func (s *presenceInMem) List() []domain.Participant {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]domain.Participant, 0, len(s.participants))
	for _, p := range s.participants {
		list = append(list, p.Copy())
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

func (s *presenceInMem) Subscribe(id, topic string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.participants[id]
	if !ok {
		return false
	}
	if !candihelper.StringInSlice(topic, p.SubscribedTopics) {
		p.SubscribedTopics = append(p.SubscribedTopics, topic)
	}
	return true
}

func (s *presenceInMem) Unsubscribe(id, topic string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.participants[id]
	if !ok {
		return false
	}
	for i, t := range p.SubscribedTopics {
		if t == topic {
			p.SubscribedTopics = append(p.SubscribedTopics[:i], p.SubscribedTopics[i+1:]...)
			return true
		}
	}
	return false
}

func (s *presenceInMem) Topics(id string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.participants[id]
	if !ok {
		return []string{}
	}
	return p.Copy().SubscribedTopics
}

// distanceWithin distance from querier to peer, within querier radius only
func distanceWithin(querier, peer *domain.Participant) (float64, bool) {
	d := candihelper.DistanceKm(
		querier.Location.Latitude, querier.Location.Longitude,
		peer.Location.Latitude, peer.Location.Longitude,
	)
	return d, d <= querier.RadiusKm
}

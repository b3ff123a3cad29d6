package repository

import "sync"

// Mailbox in-memory buffer of direct delivered entries of one participant
type Mailbox struct {
	mu      sync.Mutex
	entries []string
}

// Push append entry, growth is unbounded
func (m *Mailbox) Push(entry string) {
	m.mu.Lock()
	m.entries = append(m.entries, entry)
	m.mu.Unlock()
}

// DrainAll return every buffered entry in push order and empty the mailbox
func (m *Mailbox) DrainAll() []string {
	m.mu.Lock()
	entries := m.entries
	m.entries = nil
	m.mu.Unlock()

	if entries == nil {
		return []string{}
	}
	return entries
}

// Requeue put back entries taken by DrainAll in front of newer entries
func (m *Mailbox) Requeue(entries []string) {
	if len(entries) == 0 {
		return
	}
	m.mu.Lock()
	m.entries = append(append(make([]string, 0, len(entries)+len(m.entries)), entries...), m.entries...)
	m.mu.Unlock()
}

// Len count buffered entry
func (m *Mailbox) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

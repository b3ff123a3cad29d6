package repository

import "sync"

type mailboxRegistryInMem struct {
	mu        sync.RWMutex
	mailboxes map[string]*Mailbox
}

// NewMailboxRegistry in-memory mailbox registry
func NewMailboxRegistry() MailboxRegistry {
	return &mailboxRegistryInMem{mailboxes: make(map[string]*Mailbox)}
}

func (r *mailboxRegistryInMem) Open(id string) (*Mailbox, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if mb, ok := r.mailboxes[id]; ok {
		return mb, false
	}
	mb := new(Mailbox)
	r.mailboxes[id] = mb
	return mb, true
}

func (r *mailboxRegistryInMem) Get(id string) (*Mailbox, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mb, ok := r.mailboxes[id]
	return mb, ok
}

func (r *mailboxRegistryInMem) Close(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.mailboxes[id]; !ok {
		return false
	}
	delete(r.mailboxes, id)
	return true
}

type endpointRegistryInMem struct {
	mu        sync.RWMutex
	endpoints map[string]string
}

// NewEndpointRegistry in-memory endpoint naming
func NewEndpointRegistry() EndpointRegistry {
	return &endpointRegistryInMem{endpoints: make(map[string]string)}
}

func (r *endpointRegistryInMem) Bind(id, endpoint string) {
	r.mu.Lock()
	r.endpoints[id] = endpoint
	r.mu.Unlock()
}

func (r *endpointRegistryInMem) Resolve(id string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	endpoint, ok := r.endpoints[id]
	return endpoint, ok
}

func (r *endpointRegistryInMem) Unbind(id string) {
	r.mu.Lock()
	delete(r.endpoints, id)
	r.mu.Unlock()
}

package session

import (
	"strconv"
	"sync"

	"instagram-rest/internal/instagram"
)

// Registry maps session identifiers to authenticated client handles.
// Handles are live objects, not serializable state, so the registry is
// strictly in-memory and sessions die with the process.
type Registry struct {
	mu      sync.RWMutex
	clients map[string]instagram.Client
	counter uint64
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[string]instagram.Client),
	}
}

// Create stores the client under a freshly minted id and returns the id.
// Ids are unique for the process lifetime; the counter never reuses a
// value, even after deletes.
func (r *Registry) Create(client instagram.Client) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.counter++
	id := "session_" + strconv.FormatUint(r.counter, 10)
	r.clients[id] = client
	return id
}

// Get looks up the client for a session id. A miss is an authorization
// failure, not an internal error.
func (r *Registry) Get(id string) (instagram.Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients[id]
	return client, ok
}

// Delete removes the session if present and reports whether it did.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.clients[id]; !ok {
		return false
	}
	delete(r.clients, id)
	return true
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

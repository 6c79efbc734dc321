package tokenstore

import "sync"

// Store persists a single credential token across process restarts. The
// boolean returns signal success; implementations never panic and never
// return errors. A failed write degrades the session to an in-memory-only
// credential, which callers log and tolerate.
type Store interface {
	// Get returns the persisted token, or "" and false when absent or
	// unreadable.
	Get() (string, bool)

	// Set persists the token, reporting whether the write succeeded.
	Set(token string) bool

	// Remove deletes the persisted token, reporting whether the removal
	// succeeded. Removing an absent token succeeds.
	Remove() bool
}

// Memory is an in-process Store. It is the fallback when no durable
// persistence is available and the primary store in tests.
type Memory struct {
	mu    sync.RWMutex
	token string
	set   bool
}

// NewMemory creates an empty in-memory token store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Get() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, m.set
}

func (m *Memory) Set(token string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.set = true
	return true
}

func (m *Memory) Remove() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.set = false
	return true
}

package observable

import "sync"

// Store is a thread-safe single-value container with subscribe/notify
// semantics. It holds exactly one current value at all times; Set replaces
// the value and synchronously invokes every listener registered at that
// moment. Listeners receive no arguments and re-read state via Get.
type Store[T any] struct {
	mu        sync.Mutex
	value     T
	listeners map[int]func()
	nextID    int
}

// New creates a store holding the given initial value.
func New[T any](initial T) *Store[T] {
	return &Store[T]{
		value:     initial,
		listeners: make(map[int]func()),
	}
}

// Get returns the current value. It never blocks on listener activity and
// has no side effects.
func (s *Store[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set replaces the current value and notifies every currently-registered
// listener exactly once before returning. Setting an equal value still
// notifies; the store performs no deduplication and guarantees no listener
// invocation order. Listeners run outside the store's lock, so calling Set
// or Subscribe from within a listener is safe; guarding against notify
// loops is the caller's responsibility.
func (s *Store[T]) Set(value T) {
	s.mu.Lock()
	s.value = value
	snapshot := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		snapshot = append(snapshot, fn)
	}
	s.mu.Unlock()

	for _, fn := range snapshot {
		fn()
	}
}

// Subscribe registers a listener and returns a function that removes it.
// The returned function is idempotent; calling it more than once is a
// no-op. A listener registered while a Set notification is in progress is
// not guaranteed to be invoked in that same pass.
func (s *Store[T]) Subscribe(listener func()) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Update applies fn to the current value and stores the result, notifying
// listeners as Set does. The read-modify-write is atomic with respect to
// other Update and Set calls.
func (s *Store[T]) Update(fn func(T) T) {
	s.mu.Lock()
	s.value = fn(s.value)
	snapshot := make([]func(), 0, len(s.listeners))
	for _, l := range s.listeners {
		snapshot = append(snapshot, l)
	}
	s.mu.Unlock()

	for _, l := range snapshot {
		l()
	}
}

package store

import (
	"context"
	"errors"
	"sync"
)

const subscriberBuffer = 16

// MemoryStore implements Store with an in-process map. Used for tests and
// single-instance development runs.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
	subs   map[int]chan Event
	nextID int
}

// NewMemoryStore creates an empty in-memory mirror store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string][]byte),
		subs:   make(map[int]chan Event),
	}
}

// Load retrieves a value by key. Returns nil when the key is absent.
func (s *MemoryStore) Load(_ context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Save stores a value and broadcasts a change event.
func (s *MemoryStore) Save(_ context.Context, key string, value []byte) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	s.mu.Lock()
	s.values[key] = stored
	s.mu.Unlock()

	s.broadcast(key)
	return nil
}

// Delete removes a key and broadcasts a change event when it existed.
func (s *MemoryStore) Delete(_ context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.New("key cannot be empty")
	}

	s.mu.Lock()
	_, existed := s.values[key]
	delete(s.values, key)
	s.mu.Unlock()

	if existed {
		s.broadcast(key)
	}
	return existed, nil
}

// Subscribe registers a change listener until cancel is called or the
// context ends.
func (s *MemoryStore) Subscribe(ctx context.Context) (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
			close(ch)
		})
	}

	go func() {
		<-ctx.Done()
		cancel()
	}()

	return ch, cancel
}

// Health always reports healthy for the in-memory store.
func (s *MemoryStore) Health(_ context.Context) error { return nil }

func (s *MemoryStore) broadcast(key string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.subs {
		select {
		case ch <- Event{Key: key}:
		default:
			// Slow subscriber; drop rather than block writers.
		}
	}
}

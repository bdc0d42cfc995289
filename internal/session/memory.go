package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

type memoryStore struct {
	mu        sync.Mutex
	entries   map[string]map[string]memoryEntry
	ttl       time.Duration
	now       func() time.Time
	nextSweep time.Time
}

// NewMemoryStore keeps sessions in process. A zero ttl never expires values.
// Expired values are dropped when read and by a sweep that Set runs at most
// once per ttl.
func NewMemoryStore(ttl time.Duration) *memoryStore {
	return &memoryStore{
		entries: make(map[string]map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *memoryStore) Get(ctx context.Context, sid, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[sid][key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	if !entry.expiresAt.IsZero() && !s.now().Before(entry.expiresAt) {
		delete(s.entries[sid], key)
		return nil, ErrKeyNotFound
	}

	return append([]byte(nil), entry.value...), nil
}

func (s *memoryStore) Set(ctx context.Context, sid, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()

	values, ok := s.entries[sid]
	if !ok {
		values = make(map[string]memoryEntry)
		s.entries[sid] = values
	}

	entry := memoryEntry{value: append([]byte(nil), value...)}
	if s.ttl > 0 {
		entry.expiresAt = s.now().Add(s.ttl)
	}
	values[key] = entry

	return nil
}

func (s *memoryStore) Delete(ctx context.Context, sid string, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, ok := s.entries[sid]
	if !ok {
		return nil
	}

	for _, key := range keys {
		delete(values, key)
	}

	if len(values) == 0 {
		delete(s.entries, sid)
	}

	return nil
}

// sweep removes expired values of every session. Callers hold mu.
func (s *memoryStore) sweep() {
	if s.ttl <= 0 {
		return
	}

	now := s.now()
	if now.Before(s.nextSweep) {
		return
	}
	s.nextSweep = now.Add(s.ttl)

	for sid, values := range s.entries {
		for key, entry := range values {
			if !now.Before(entry.expiresAt) {
				delete(values, key)
			}
		}

		if len(values) == 0 {
			delete(s.entries, sid)
		}
	}
}

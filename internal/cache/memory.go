package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultMaxSize bounds the in-memory store; the oldest entry is evicted
	// when a new key would exceed it.
	DefaultMaxSize = 500
	// DefaultTTL matches the result-retrieval window of the serving layer.
	DefaultTTL = 20 * time.Minute
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// Memory is an in-process Cache with per-entry TTL and a size bound. Safe for
// concurrent use.
type Memory struct {
	mu      sync.Mutex
	ttl     time.Duration
	maxSize int
	entries map[string]memoryEntry
	order   []string

	now func() time.Time
}

func NewMemory(maxSize int, ttl time.Duration) *Memory {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		ttl:     ttl,
		maxSize: maxSize,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *Memory) Set(_ context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding cache value for %q: %w", key, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.pruneExpiredLocked()

	if _, exists := m.entries[key]; !exists {
		if len(m.entries) >= m.maxSize {
			m.evictOldestLocked()
		}
		m.order = append(m.order, key)
	}
	m.entries[key] = memoryEntry{data: data, expiresAt: m.now().Add(m.ttl)}
	return nil
}

func (m *Memory) Get(_ context.Context, key string, dest any) error {
	m.mu.Lock()
	entry, ok := m.entries[key]
	if ok && m.now().After(entry.expiresAt) {
		m.deleteLocked(key)
		ok = false
	}
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %q", ErrMiss, key)
	}
	if err := json.Unmarshal(entry.data, dest); err != nil {
		return fmt.Errorf("decoding cache value for %q: %w", key, err)
	}
	return nil
}

func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *Memory) pruneExpiredLocked() {
	now := m.now()
	for key, entry := range m.entries {
		if now.After(entry.expiresAt) {
			m.deleteLocked(key)
		}
	}
}

func (m *Memory) evictOldestLocked() {
	if len(m.order) == 0 {
		return
	}
	m.deleteLocked(m.order[0])
}

func (m *Memory) deleteLocked(key string) {
	delete(m.entries, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

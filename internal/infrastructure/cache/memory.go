package cache

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

const cleanupInterval = 5 * time.Minute

// MemoryStore is an in-memory SessionStorage. Every namespace expires ttl
// after its last write.
type MemoryStore struct {
	mu         sync.RWMutex
	namespaces map[string]*memoryNamespace
	ttl        time.Duration
	clock      clock.Clock

	done chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

type memoryNamespace struct {
	values     map[string]string
	expireTime time.Time
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return NewMemoryStoreWithClock(ttl, clock.New())
}

// NewMemoryStoreWithClock creates a new in-memory store driven by clk
func NewMemoryStoreWithClock(ttl time.Duration, clk clock.Clock) *MemoryStore {
	store := &MemoryStore{
		namespaces: make(map[string]*memoryNamespace),
		ttl:        ttl,
		clock:      clk,
		done:       make(chan struct{}),
	}

	// Start cleanup goroutine to remove expired namespaces
	store.wg.Add(1)
	go store.cleanupExpired()

	return store
}

// Get retrieves a value (ok is false if not found or expired)
func (ms *MemoryStore) Get(_ context.Context, namespace, key string) (string, bool, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	ns, exists := ms.namespaces[namespace]
	if !exists || ms.clock.Now().After(ns.expireTime) {
		return "", false, nil
	}

	value, ok := ns.values[key]
	return value, ok, nil
}

// Set stores a value and refreshes the namespace expiration
func (ms *MemoryStore) Set(_ context.Context, namespace, key, value string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.clock.Now()
	ns, exists := ms.namespaces[namespace]
	if !exists || now.After(ns.expireTime) {
		ns = &memoryNamespace{values: make(map[string]string)}
		ms.namespaces[namespace] = ns
	}
	ns.values[key] = value
	ns.expireTime = now.Add(ms.ttl)
	return nil
}

// Delete removes keys from a namespace
func (ms *MemoryStore) Delete(_ context.Context, namespace string, keys ...string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ns, exists := ms.namespaces[namespace]
	if !exists {
		return nil
	}
	for _, key := range keys {
		delete(ns.values, key)
	}
	if len(ns.values) == 0 {
		delete(ms.namespaces, namespace)
	}
	return nil
}

// Len returns the number of live namespaces
func (ms *MemoryStore) Len() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return len(ms.namespaces)
}

// Close stops the cleanup goroutine
func (ms *MemoryStore) Close() error {
	ms.once.Do(func() { close(ms.done) })
	ms.wg.Wait()
	return nil
}

// cleanupExpired periodically removes expired namespaces
func (ms *MemoryStore) cleanupExpired() {
	defer ms.wg.Done()

	ticker := ms.clock.Ticker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ms.done:
			return
		case <-ticker.C:
			ms.removeExpired()
		}
	}
}

func (ms *MemoryStore) removeExpired() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.clock.Now()
	for name, ns := range ms.namespaces {
		if now.After(ns.expireTime) {
			delete(ms.namespaces, name)
		}
	}
}

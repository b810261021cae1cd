// Package keylock provides mutual exclusion scoped to a string key.
package keylock

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

// KeyedMutex serializes callers that share a key while letting different keys
// proceed in parallel. Entries are dropped once no caller holds or waits on them.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func New() *KeyedMutex {
	return &KeyedMutex{entries: make(map[string]*entry)}
}

// Lock blocks until key is free and returns the matching unlock func.
func (km *KeyedMutex) Lock(key string) func() {
	km.mu.Lock()
	e, ok := km.entries[key]
	if !ok {
		e = &entry{}
		km.entries[key] = e
	}
	e.refs++
	km.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		km.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(km.entries, key)
		}
		km.mu.Unlock()
	}
}

// Len reports how many keys are currently held or awaited.
func (km *KeyedMutex) Len() int {
	km.mu.Lock()
	defer km.mu.Unlock()
	return len(km.entries)
}

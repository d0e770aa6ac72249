package app

import (
	"sync"

	"github.com/Blackdeer1524/chainhash/src/hashtable"
)

// GuardedTable serializes access to a hash table so it can be shared
// between goroutines. Lookups share a read lock.
type GuardedTable[V any] struct {
	mu    sync.RWMutex
	table *hashtable.HashTable[V]
}

func NewGuardedTable[V any](table *hashtable.HashTable[V]) *GuardedTable[V] {
	return &GuardedTable[V]{table: table}
}

func (g *GuardedTable[V]) Insert(key string, value V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.table.Insert(key, value)
}

func (g *GuardedTable[V]) Lookup(key string) (V, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.table.Lookup(key)
}

func (g *GuardedTable[V]) Stats() hashtable.Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.table.Stats()
}

package hashtable

import (
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/Blackdeer1524/chainhash/src"
	"github.com/Blackdeer1524/chainhash/src/pkg/assert"
	"github.com/Blackdeer1524/chainhash/src/pkg/optional"
)

// MaxRequestedCapacity is the largest capacity New accepts. Its square is
// the largest slot count that still fits the 32-bit hash.
const MaxRequestedCapacity = 1<<16 - 1

type entry[V any] struct {
	key   string
	value V
	next  *entry[V]
}

// HashTable maps string keys to values of type V.
type HashTable[V any] struct {
	buckets []*entry[V]
	size    int

	log src.Logger
}

type options struct {
	log src.Logger
}

type Option func(*options)

// WithLogger makes the table report every insert at debug level.
func WithLogger(log src.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// New creates a table with requestedCapacity² empty bucket slots.
func New[V any](requestedCapacity int, opts ...Option) (*HashTable[V], error) {
	if requestedCapacity <= 0 || requestedCapacity > MaxRequestedCapacity {
		return nil, errors.Wrapf(
			ErrInvalidCapacity,
			"requested %d, want 1..%d",
			requestedCapacity,
			MaxRequestedCapacity,
		)
	}

	o := options{
		log: zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	slotCount := requestedCapacity * requestedCapacity

	return &HashTable[V]{
		buckets: make([]*entry[V], slotCount),
		log:     o.log,
	}, nil
}

// SlotCount returns the number of bucket slots.
func (t *HashTable[V]) SlotCount() uint32 {
	return uint32(len(t.buckets)) //nolint:gosec
}

// Len returns the number of entries, duplicates included.
func (t *HashTable[V]) Len() int {
	return t.size
}

func (t *HashTable[V]) index(key string) uint32 {
	idx := Hash(key, t.SlotCount())
	assert.Assert(int(idx) < len(t.buckets), "index %d out of %d slots", idx, len(t.buckets))

	return idx
}

// Insert appends key and value to the end of the key's bucket chain.
// An existing entry with the same key is left untouched, so Lookup keeps
// returning the earlier value.
func (t *HashTable[V]) Insert(key string, value V) {
	idx := t.index(key)
	t.log.Debugw("insert", "key", key, "index", idx, "slots", t.SlotCount())

	e := &entry[V]{
		key:   key,
		value: value,
	}
	t.size++

	if t.buckets[idx] == nil {
		t.buckets[idx] = e
		return
	}

	tail := t.buckets[idx]
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = e
}

// Find returns the value of the first entry with the given key in chain
// order, or None.
func (t *HashTable[V]) Find(key string) optional.Optional[V] {
	head := t.buckets[t.index(key)]
	if head == nil {
		return optional.None[V]()
	}

	if head.key == key {
		return optional.Some(head.value)
	}

	for e := head.next; e != nil; e = e.next {
		if e.key == key {
			return optional.Some(e.value)
		}
	}

	return optional.None[V]()
}

// Lookup returns the value of the first entry with the given key, or an
// error wrapping ErrNotFound.
func (t *HashTable[V]) Lookup(key string) (V, error) {
	v, ok := t.Find(key).Get()
	if !ok {
		return v, errors.Wrapf(ErrNotFound, "lookup %q", key)
	}

	return v, nil
}

// Contains reports whether some entry has the given key.
func (t *HashTable[V]) Contains(key string) bool {
	return t.Find(key).IsSome()
}

// Seq yields every entry, bucket by bucket and in chain order within a
// bucket, until yield returns false.
func (t *HashTable[V]) Seq(yield func(string, V) bool) {
	for _, head := range t.buckets {
		for e := head; e != nil; e = e.next {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

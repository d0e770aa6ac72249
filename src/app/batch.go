package app

import (
	"context"
	"sync"

	"github.com/go-faster/errors"
	"github.com/panjf2000/ants"
)

type LookupResult[V any] struct {
	Key   string
	Value V
	// Err wraps hashtable.ErrNotFound for a miss.
	Err error
}

func (r LookupResult[V]) Found() bool {
	return r.Err == nil
}

// LookupAll looks every key up on a pool of workers. Results are in the
// order of keys. Cancelling ctx stops submitting new lookups.
func LookupAll[V any](
	ctx context.Context,
	table *GuardedTable[V],
	keys []string,
	workers int,
) ([]LookupResult[V], error) {
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, errors.Wrap(err, "create worker pool")
	}
	defer pool.Release()

	results := make([]LookupResult[V], len(keys))

	var wg sync.WaitGroup
	for i, key := range keys {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}

		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()

			v, err := table.Lookup(key)
			results[i] = LookupResult[V]{Key: key, Value: v, Err: err}
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, errors.Wrapf(err, "submit lookup %q", key)
		}
	}
	wg.Wait()

	return results, nil
}

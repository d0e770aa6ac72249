package app

import (
	"context"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

// LoadJob inserts the pairs of a dataset file in file order, then looks
// up queries and reports the results.
func LoadJob(source string, queries []string) Job {
	return func(ctx context.Context, e *TableEntrypoint) error {
		pairs, err := ReadDataset(e.Fs, source)
		if err != nil {
			return err
		}

		for _, p := range pairs {
			e.Table.Insert(p.Destruct())
		}

		e.Log.Infow("dataset loaded", "source", source, "entries", len(pairs))

		results, err := LookupAll(ctx, e.Table, queries, e.Config.Workers)
		if err != nil {
			return errors.Wrap(err, "lookup queries")
		}

		return e.report(Report{
			Results: results,
			Stats:   e.Table.Stats(),
		})
	}
}

// FillJob inserts count random UUID keys, each mapped to its ordinal, and
// reports how they spread over the table.
func FillJob(count int) Job {
	return func(ctx context.Context, e *TableEntrypoint) error {
		if count < 0 {
			return errors.Errorf("count must not be negative, got %d", count)
		}

		for i := 0; i < count; i++ {
			if i%1024 == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}

			e.Table.Insert(uuid.NewString(), strconv.Itoa(i))
		}

		e.Log.Infow("table filled", "entries", count)

		return e.report(Report{Stats: e.Table.Stats()})
	}
}

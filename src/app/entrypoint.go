package app

import (
	"context"
	"io"
	"os/signal"
	"syscall"

	"github.com/go-faster/errors"
	"golang.org/x/sync/errgroup"
)

type Entrypoint interface {
	io.Closer
	Init(ctx context.Context) error
	Run(ctx context.Context) error
}

// Run initializes e, runs it and closes it once Run returns or the process
// receives SIGINT or SIGTERM. The first error wins.
func Run(ctx context.Context, e Entrypoint) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := e.Init(ctx); err != nil {
		return errors.Wrap(err, "entrypoint init")
	}

	eg, ctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	eg.Go(func() error {
		defer close(done)
		return e.Run(ctx)
	})

	eg.Go(func() error {
		select {
		case <-ctx.Done():
		case <-done:
		}

		return e.Close()
	})

	return eg.Wait()
}

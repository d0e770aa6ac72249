package app

import (
	"context"
	"io"
	"syscall"

	"github.com/go-faster/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/Blackdeer1524/chainhash/src"
	"github.com/Blackdeer1524/chainhash/src/cfg"
	"github.com/Blackdeer1524/chainhash/src/hashtable"
	"github.com/Blackdeer1524/chainhash/src/pkg/optional"
	"github.com/Blackdeer1524/chainhash/src/pkg/utils"
)

// Job is the work a TableEntrypoint runs against its freshly created table.
type Job func(ctx context.Context, e *TableEntrypoint) error

// TableEntrypoint owns one string-valued table for the lifetime of a CLI
// command.
type TableEntrypoint struct {
	ConfigPath string
	// Capacity, when set, replaces the configured capacity and is passed to
	// the table unchecked.
	Capacity optional.Optional[int]
	JSON     bool

	Fs  afero.Fs
	Out io.Writer
	// Log is built from the configured environment when nil.
	Log src.Logger
	Job Job

	Config cfg.Config
	Table  *GuardedTable[string]
}

func (e *TableEntrypoint) Init(_ context.Context) error {
	config, err := cfg.LoadConfig(e.ConfigPath)
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	if capacity, ok := e.Capacity.Get(); ok {
		config.Capacity = capacity
	}

	e.Config = config

	if e.Log == nil {
		if config.Environment == cfg.EnvDev {
			e.Log = utils.Must(zap.NewDevelopment()).Sugar()
		} else {
			e.Log = utils.Must(zap.NewProduction()).Sugar()
		}
	}

	table, err := hashtable.New[string](config.Capacity, hashtable.WithLogger(e.Log))
	if err != nil {
		return errors.Wrap(err, "create table")
	}

	e.Table = NewGuardedTable(table)

	return nil
}

func (e *TableEntrypoint) Run(ctx context.Context) error {
	if e.Job == nil {
		return errors.New("no job to run")
	}

	return e.Job(ctx, e)
}

func (e *TableEntrypoint) Close() error {
	if e.Log == nil {
		return nil
	}

	// Syncing a console logger fails on terminals and pipes.
	err := e.Log.Sync()
	if err != nil && !errors.Is(err, syscall.EINVAL) && !errors.Is(err, syscall.ENOTTY) {
		return errors.Wrap(err, "sync logger")
	}

	return nil
}

func (e *TableEntrypoint) report(r Report) error {
	if e.JSON {
		return WriteJSON(e.Out, r)
	}

	return WriteText(e.Out, r)
}

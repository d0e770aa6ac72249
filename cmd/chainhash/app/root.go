package app

import (
	"context"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Blackdeer1524/chainhash/src/app"
	"github.com/Blackdeer1524/chainhash/src/cli"
	"github.com/Blackdeer1524/chainhash/src/pkg/optional"
)

var rootCmd = cli.Init("chainhash")

func MustExecute(ctx context.Context) {
	initLoad()
	initFill()
	initHash()
	rootCmd.MustExecute(ctx)
}

// newEntrypoint builds the entrypoint for cmd from the root options. An
// explicit --capacity always reaches the table, even when it is invalid.
func newEntrypoint(cmd *cobra.Command, job app.Job) *app.TableEntrypoint {
	capacity := optional.None[int]()
	if cmd.Flags().Changed("capacity") {
		capacity = optional.Some(rootCmd.Options.Capacity)
	}

	return &app.TableEntrypoint{
		ConfigPath: rootCmd.Options.ConfigPath,
		Capacity:   capacity,
		JSON:       rootCmd.Options.JSON,
		Fs:         afero.NewOsFs(),
		Out:        cmd.OutOrStdout(),
		Job:        job,
	}
}

package app

import (
	"github.com/spf13/cobra"

	"github.com/Blackdeer1524/chainhash/src/app"
)

func initLoad() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "load <dataset> [key...]",
		Short: "Builds a table from a key=value file and looks up keys",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), newEntrypoint(cmd, app.LoadJob(args[0], args[1:])))
		},
	})
}

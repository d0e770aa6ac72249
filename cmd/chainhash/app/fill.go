package app

import (
	"github.com/spf13/cobra"

	"github.com/Blackdeer1524/chainhash/src/app"
)

func initFill() {
	var count int

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Fills a table with random UUID keys and prints its distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), newEntrypoint(cmd, app.FillJob(count)))
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1000, "Number of keys to insert")

	rootCmd.AddCommand(cmd)
}

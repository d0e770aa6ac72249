package app

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/Blackdeer1524/chainhash/src/hashtable"
)

func initHash() {
	var slots uint32

	cmd := &cobra.Command{
		Use:   "hash key...",
		Short: "Prints the bucket index of each key",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if slots == 0 {
				return errors.New("--slots must be positive")
			}

			for _, key := range args {
				idx := hashtable.Hash(key, slots)
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d / %d\n", key, idx, slots); err != nil {
					return errors.Wrap(err, "write index")
				}
			}

			return nil
		},
	}
	cmd.Flags().Uint32Var(&slots, "slots", 16, "Number of bucket slots")

	rootCmd.AddCommand(cmd)
}

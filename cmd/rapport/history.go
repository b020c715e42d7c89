package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the recent changes recorded in Git",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		mgr, _ := openManager()
		defer mgr.Close()

		entries, err := mgr.History(context.Background(), historyLimit)
		if err != nil {
			fatal("Cannot show history", err)
		}
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No changes recorded yet.")
			return
		}
		for _, e := range entries {
			fmt.Fprintln(cmd.OutOrStdout(), e)
		}
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of changes to show")
}

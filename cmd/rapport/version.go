package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/rapport"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of rapport",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "rapport version %s\n", rapport.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

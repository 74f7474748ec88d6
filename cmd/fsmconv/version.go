package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version of the fsmconv binary.
const Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fsmconv",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fsmconv version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

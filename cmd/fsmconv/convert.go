package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Print every stage of the conversion as a transition table",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := convertPreset(cmd)
		if err != nil {
			return err
		}

		profile := colorProfile(cmd)
		out := cmd.OutOrStdout()
		for i, a := range p.Automata() {
			if i > 0 {
				fmt.Fprintln(out)
			}
			if err := renderTable(out, a, profile); err != nil {
				return err
			}
		}
		if len(p.Retained) > 0 {
			fmt.Fprintf(out, "\nretained unreachable states: %v\n", p.Retained)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

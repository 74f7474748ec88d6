package main

import (
	"fmt"
	"strconv"

	automaton "github.com/geange/fsmconv"
	"github.com/spf13/cobra"
)

var testCmd = &cobra.Command{
	Use:   "test [symbol...]",
	Short: "Simulate a sequence of symbol ids against one stage",
	Long: `Converts the preset, then feeds the given symbol ids to the selected
stage and prints the live states after every step followed by the verdict.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := parseSymbols(args)
		if err != nil {
			return err
		}
		p, err := convertPreset(cmd)
		if err != nil {
			return err
		}
		stage, _ := cmd.Flags().GetString("stage")
		a, ok := p.Stage(stage)
		if !ok {
			return fmt.Errorf("unknown stage %q", stage)
		}

		result := a.Test(input)
		renderResult(cmd.OutOrStdout(), result, colorProfile(cmd))
		return nil
	},
}

func parseSymbols(args []string) ([]automaton.Character, error) {
	ids := make([]int, len(args))
	for i, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil || id < 0 {
			return nil, fmt.Errorf("symbol %q is not a non-negative integer", arg)
		}
		ids[i] = id
	}
	return automaton.Symbols(ids...), nil
}

func init() {
	testCmd.Flags().String("stage", automaton.StageMin2, "Stage to simulate")
	rootCmd.AddCommand(testCmd)
}

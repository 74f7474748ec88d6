package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	automaton "github.com/geange/fsmconv"
	"github.com/geange/fsmconv/internal/logging"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fsmconv",
	Short: "fsmconv converts NFA-ε automata down to minimal DFAs",
	Long: `fsmconv runs the classic conversion pipeline (epsilon elimination,
subset construction, relabelling, pruning and partition refinement) on a
preset automaton and simulates symbol sequences against any stage.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("preset", "ends-with-01", "Automaton to load ("+strings.Join(presetNames(), ", ")+")")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable coloured output")
}

func presetNames() []string {
	names := make([]string, 0, len(automaton.Presets))
	for name := range automaton.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func loadPreset(cmd *cobra.Command) (*automaton.Automaton, error) {
	name, _ := cmd.Flags().GetString("preset")
	build, ok := automaton.Presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (want one of %s)", name, strings.Join(presetNames(), ", "))
	}
	return build(), nil
}

func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	value, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(value)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return logging.New(level), nil
}

func colorProfile(cmd *cobra.Command) termenv.Profile {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}

// convertPreset loads the selected preset and runs the pipeline on it.
func convertPreset(cmd *cobra.Command) (*automaton.Pipeline, error) {
	logger, err := newLogger(cmd)
	if err != nil {
		return nil, err
	}
	input, err := loadPreset(cmd)
	if err != nil {
		return nil, err
	}
	return automaton.Convert(input, automaton.WithLogger(logger))
}

package main

import (
	"bytes"
	"testing"

	automaton "github.com/geange/fsmconv"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSymbols(t *testing.T) {
	got, err := parseSymbols([]string{"0", "1", "1"})
	require.NoError(t, err)
	assert.Equal(t, automaton.Symbols(0, 1, 1), got)

	for _, bad := range []string{"x", "-1"} {
		_, err := parseSymbols([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderTable(&buf, automaton.EndsWith01(), termenv.Ascii))

	out := buf.String()
	assert.Contains(t, out, automaton.StageInput)
	assert.Contains(t, out, "a,b")
	assert.Contains(t, out, "→")
	assert.Contains(t, out, "*")
	assert.Contains(t, out, "-")
}

func TestRenderResult(t *testing.T) {
	a := automaton.EndsWith01()

	var buf bytes.Buffer
	renderResult(&buf, a.Test(automaton.Symbols(0, 1)), termenv.Ascii)
	assert.Contains(t, buf.String(), "ACCEPT")
	assert.Contains(t, buf.String(), "c*")

	buf.Reset()
	renderResult(&buf, a.Test(automaton.Symbols(1, 0)), termenv.Ascii)
	assert.Contains(t, buf.String(), "REJECT")
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"convert", []string{"convert", "--no-color"}, automaton.StageMin2},
		{"accept", []string{"test", "--no-color", "0", "1"}, "ACCEPT"},
		{"reject", []string{"test", "--no-color", "--stage", automaton.StageDFA, "1", "0"}, "REJECT"},
		{"single", []string{"test", "--no-color", "--preset", "single"}, "ACCEPT"},
		{"version", []string{"version"}, "fsmconv version " + Version},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			rootCmd.SetOut(&buf)
			rootCmd.SetArgs(tt.args)
			require.NoError(t, rootCmd.Execute())
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

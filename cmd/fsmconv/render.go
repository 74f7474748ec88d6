package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	automaton "github.com/geange/fsmconv"
	"github.com/muesli/termenv"
)

// renderTable writes a as a transition table: one row per state, one column
// per symbol. Start states are marked "→", final states "*".
func renderTable(w io.Writer, a *automaton.Automaton, p termenv.Profile) error {
	title := termenv.String(a.Name()).Bold().Foreground(p.Color("#818cf8"))
	fmt.Fprintln(w, title.String())

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	header := []string{"", "state"}
	for _, c := range a.Symbols() {
		header = append(header, c.String())
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, state := range a.States() {
		row := []string{marker(a, state), a.Label(state).String()}
		for _, t := range a.Transitions(state) {
			row = append(row, destinations(a, t))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func marker(a *automaton.Automaton, state automaton.StateID) string {
	var m string
	if a.IsStart(state) {
		m += "→"
	}
	if a.IsFinal(state) {
		m += "*"
	}
	return m
}

func destinations(a *automaton.Automaton, t automaton.Transition) string {
	if t.IsEmpty() {
		return "-"
	}
	labels := make([]string, len(t.Dests))
	for i, d := range t.Dests {
		labels[i] = a.Label(d).String()
	}
	return strings.Join(labels, ",")
}

func renderResult(w io.Writer, r *automaton.Result, p termenv.Profile) {
	fmt.Fprintln(w, termenv.String(r.Name()).Bold().String())
	for _, m := range r.Moments() {
		labels := make([]string, 0, len(m.States()))
		for _, s := range m.States() {
			label := s.Label.String()
			if s.Final {
				label += "*"
			}
			labels = append(labels, label)
		}
		fmt.Fprintf(w, "  %s\t[%s]\n", m.Character(), strings.Join(labels, " "))
	}

	verdict := termenv.String("REJECT").Foreground(p.Color("#fb7185"))
	if r.Acceptable() {
		verdict = termenv.String("ACCEPT").Foreground(p.Color("#22c55e"))
	}
	fmt.Fprintln(w, verdict.Bold().String())
}

package automaton

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/geange/fsmconv/internal/logging"
)

// Stage names, also used as the names of the automata they produce.
const (
	StageInput     = "NFA-ε"
	StageNFA       = "NFA"
	StageDFA       = "DFA"
	StageRelabeled = "DFA-relabeled"
	StageMin1      = "DFA-min-1"
	StageMin2      = "DFA-min-2"
)

var pipelineKinds = []Kind{
	EpsilonElimination,
	Determinization,
	Relabel,
	PruneUnreachable,
	Minimization,
}

type options struct {
	logger *slog.Logger
}

// Option Configures Convert and NewSession.
type Option func(*options)

// WithLogger Routes diagnostics to logger instead of discarding them.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts ...Option) *options {
	o := &options{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Pipeline Every stage produced by one Convert call.
type Pipeline struct {
	// Input is a snapshot of the automaton that was converted.
	Input *Automaton

	// Stages holds NFA, DFA, DFA-relabeled, DFA-min-1 and DFA-min-2 in order.
	Stages []*Automaton

	// Retained lists unreachable states pruning could not remove.
	Retained []Label
}

// Convert Runs the full conversion pipeline on a snapshot of input.
func Convert(input *Automaton, opts ...Option) (*Pipeline, error) {
	o := newOptions(opts...)

	p := &Pipeline{Input: input.Clone(input.Name())}
	current := p.Input
	for _, kind := range pipelineKinds {
		next, err := kind.Run(current, kind.String())
		var retained *RetainedError
		switch {
		case errors.As(err, &retained):
			o.logger.Warn("unreachable states retained", "stage", kind.String(), "states", retained.Error())
			p.Retained = append(p.Retained, retained.Labels...)
		case err != nil:
			return nil, fmt.Errorf("convert %s: %w", kind, err)
		}
		o.logger.Debug("stage converted",
			"stage", kind.String(),
			"states", next.NumStates(),
			"symbols", len(next.alphabet),
		)
		p.Stages = append(p.Stages, next)
		current = next
	}
	return p, nil
}

// Stage Looks a stage up by name; StageInput returns the input snapshot.
func (p *Pipeline) Stage(name string) (*Automaton, bool) {
	if p.Input.EqualName(name) {
		return p.Input, true
	}
	for _, a := range p.Stages {
		if a.EqualName(name) {
			return a, true
		}
	}
	return nil, false
}

// Automata Returns the input snapshot followed by every derived stage.
func (p *Pipeline) Automata() []*Automaton {
	return append([]*Automaton{p.Input}, p.Stages...)
}

// Test Simulates input on every automaton of the pipeline.
func (p *Pipeline) Test(input []Character) []*Result {
	automata := p.Automata()
	results := make([]*Result, len(automata))
	for i, a := range automata {
		results[i] = a.Test(input)
	}
	return results
}

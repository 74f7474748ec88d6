package automaton

import (
	"log/slog"
)

// Session Holds the editable input automaton, the latest conversion and a
// test tape. Edits only ever touch the input; Convert replaces the pipeline
// and re-targets the tape at the new stages.
type Session struct {
	input    *Automaton
	pipeline *Pipeline
	tape     *Tape
	logger   *slog.Logger
	options  []Option
}

func NewSession(opts ...Option) *Session {
	o := newOptions(opts...)
	s := &Session{
		input:   NewInputAutomaton(),
		logger:  o.logger,
		options: opts,
	}
	s.tape = NewTape(s.input)
	return s
}

// Input Returns the editable automaton.
func (s *Session) Input() *Automaton {
	return s.input
}

func (s *Session) rejected(op string, err error) error {
	if err != nil {
		s.logger.Debug("edit rejected", "op", op, "err", err)
	}
	return err
}

// AddState Appends a state labelled after the current state count.
func (s *Session) AddState() (StateID, error) {
	id, err := s.input.AddState(SequentialLabel(s.input.NumStates()))
	return id, s.rejected("add state", err)
}

// RemoveState Removes the state labelled after the last position.
func (s *Session) RemoveState() error {
	label := SequentialLabel(s.input.NumStates() - 1)
	return s.rejected("remove state", s.input.RemoveStateByLabel(label))
}

// AddSymbol Appends the next non-epsilon symbol.
func (s *Session) AddSymbol() (Character, error) {
	c, err := s.input.AddSymbol(len(s.input.alphabet) - 1)
	return c, s.rejected("add symbol", err)
}

// RemoveSymbol Removes the last non-epsilon symbol.
func (s *Session) RemoveSymbol() error {
	n := len(s.input.alphabet)
	if n <= 1 {
		return s.rejected("remove symbol", ErrLastSymbol)
	}
	return s.rejected("remove symbol", s.input.RemoveSymbol(n-2))
}

func (s *Session) SetStart(state StateID) error {
	return s.rejected("set start", s.input.SetStart(state))
}

func (s *Session) SetFinal(state StateID, final bool) error {
	return s.rejected("set final", s.input.SetFinal(state, final))
}

func (s *Session) AddDestination(from StateID, c Character, to StateID) error {
	return s.rejected("add destination", s.input.AddDestination(from, c, to))
}

func (s *Session) RemoveDestination(from StateID, c Character, to StateID) error {
	return s.rejected("remove destination", s.input.RemoveDestination(from, c, to))
}

// Convert Converts the current input and keeps the pipeline. The tape keeps
// its symbols but drops results from the previous conversion.
func (s *Session) Convert() (*Pipeline, error) {
	p, err := Convert(s.input, s.options...)
	if err != nil {
		return nil, err
	}
	s.pipeline = p
	s.tape.retarget(p.Automata()...)
	s.logger.Info("converted", "states", s.input.NumStates(), "stages", len(p.Stages))
	return p, nil
}

// Pipeline Returns the latest conversion, if any.
func (s *Session) Pipeline() (*Pipeline, bool) {
	return s.pipeline, s.pipeline != nil
}

// Stages Returns the input followed by the derived stages of the latest
// conversion; only the input before the first Convert.
func (s *Session) Stages() []*Automaton {
	if s.pipeline == nil {
		return []*Automaton{s.input}
	}
	return append([]*Automaton{s.input}, s.pipeline.Stages...)
}

func (s *Session) Tape() *Tape {
	return s.tape
}

// Tape An editable input sequence simulated against a fixed set of automata.
type Tape struct {
	symbols  []Character
	results  []*Result
	automata []*Automaton
}

func NewTape(automata ...*Automaton) *Tape {
	return &Tape{automata: automata}
}

func (t *Tape) Push(c Character) {
	t.symbols = append(t.symbols, c)
}

// Pop Drops the last symbol; no-op on an empty tape.
func (t *Tape) Pop() {
	if n := len(t.symbols); n > 0 {
		t.symbols = t.symbols[:n-1]
	}
}

// Reset Clears symbols and results.
func (t *Tape) Reset() {
	t.symbols = nil
	t.results = nil
}

func (t *Tape) Symbols() []Character {
	return append([]Character(nil), t.symbols...)
}

// Run Simulates the tape on every automaton, replacing earlier results.
func (t *Tape) Run() []*Result {
	t.results = make([]*Result, len(t.automata))
	for i, a := range t.automata {
		t.results[i] = a.Test(t.symbols)
	}
	return t.Results()
}

func (t *Tape) Results() []*Result {
	return append([]*Result(nil), t.results...)
}

func (t *Tape) retarget(automata ...*Automaton) {
	t.automata = automata
	t.results = nil
}

package automaton

import "slices"

// Transition Read-only view of the destinations a state reaches on one symbol.
// Zero destinations is an undefined move; more than one only occurs in
// nondeterministic automata.
type Transition struct {
	Symbol Character
	Dests  []StateID
}

func (t Transition) IsEmpty() bool {
	return len(t.Dests) == 0
}

func (t Transition) Contains(state StateID) bool {
	return slices.Contains(t.Dests, state)
}

// Equal Transitions are identified by their symbol only.
func (t Transition) Equal(other Transition) bool {
	return t.Symbol.Equal(other.Symbol)
}

func (t Transition) EqualSymbol(c Character) bool {
	return t.Symbol.Equal(c)
}

func indexOfTransition(rec *stateRecord, c Character) int {
	return slices.IndexFunc(rec.transitions, func(t transitionRecord) bool { return t.symbol.Equal(c) })
}

// initTransition Adds an empty transition for c; no-op when c is foreign or
// already present.
func (a *Automaton) initTransition(rec *stateRecord, c Character) bool {
	if a.IndexOfSymbol(c.id) < 0 || indexOfTransition(rec, c) >= 0 {
		return false
	}
	rec.transitions = append(rec.transitions, transitionRecord{symbol: c})
	return true
}

func (a *Automaton) destroyTransition(rec *stateRecord, c Character) {
	if i := indexOfTransition(rec, c); i >= 0 {
		rec.transitions = slices.Delete(rec.transitions, i, i+1)
	}
}

// IndexOfTransition Returns the position of state's transition on c, or -1.
func (a *Automaton) IndexOfTransition(state StateID, c Character) int {
	rec, ok := a.record(state)
	if !ok {
		return -1
	}
	return indexOfTransition(rec, c)
}

func (a *Automaton) TransitionAt(state StateID, index int) (Transition, bool) {
	rec, ok := a.record(state)
	if !ok || index < 0 || index >= len(rec.transitions) {
		return Transition{}, false
	}
	t := rec.transitions[index]
	return Transition{Symbol: t.symbol, Dests: slices.Clone(t.dests)}, true
}

// Transition Returns state's transition on c.
func (a *Automaton) Transition(state StateID, c Character) (Transition, bool) {
	return a.TransitionAt(state, a.IndexOfTransition(state, c))
}

// Transitions Returns every transition of state in alphabet order.
func (a *Automaton) Transitions(state StateID) []Transition {
	rec, ok := a.record(state)
	if !ok {
		return nil
	}
	ts := make([]Transition, len(rec.transitions))
	for i, t := range rec.transitions {
		ts[i] = Transition{Symbol: t.symbol, Dests: slices.Clone(t.dests)}
	}
	return ts
}

// Destinations Returns where state goes on c; nil for an undefined move.
func (a *Automaton) Destinations(state StateID, c Character) []StateID {
	t, _ := a.Transition(state, c)
	return t.Dests
}

func (a *Automaton) transitionRecord(state StateID, c Character) (*transitionRecord, error) {
	rec, ok := a.record(state)
	if !ok {
		return nil, ErrStateNotFound
	}
	i := indexOfTransition(rec, c)
	if i < 0 {
		return nil, ErrSymbolNotFound
	}
	return &rec.transitions[i], nil
}

// AddDestination Appends to as a destination of (from, c). Adding a present
// destination is a no-op.
func (a *Automaton) AddDestination(from StateID, c Character, to StateID) error {
	t, err := a.transitionRecord(from, c)
	if err != nil {
		return err
	}
	if !a.Contains(to) {
		return ErrForeignState
	}
	if !slices.Contains(t.dests, to) {
		t.dests = append(t.dests, to)
	}
	return nil
}

func (a *Automaton) RemoveDestination(from StateID, c Character, to StateID) error {
	t, err := a.transitionRecord(from, c)
	if err != nil {
		return err
	}
	t.dests = slices.DeleteFunc(t.dests, func(d StateID) bool { return d == to })
	return nil
}

// ClearTransition Drops every destination of (from, c).
func (a *Automaton) ClearTransition(from StateID, c Character) error {
	t, err := a.transitionRecord(from, c)
	if err != nil {
		return err
	}
	t.dests = nil
	return nil
}

// UnlistedStates Returns the live states that are not yet destinations of (from, c).
func (a *Automaton) UnlistedStates(from StateID, c Character) []StateID {
	t, err := a.transitionRecord(from, c)
	if err != nil {
		return nil
	}
	states := make([]StateID, 0, len(a.order))
	for _, id := range a.order {
		if !slices.Contains(t.dests, id) {
			states = append(states, id)
		}
	}
	return states
}

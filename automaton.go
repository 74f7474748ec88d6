package automaton

import (
	"slices"
)

// StateID Stable handle of a state inside its owning Automaton. IDs are
// never reused, so a handle of a removed state simply stops resolving.
type StateID int

// NoState is returned alongside an error wherever a StateID is expected.
const NoState StateID = -1

type stateRecord struct {
	label       Label
	start       bool
	final       bool
	removed     bool
	transitions []transitionRecord // 1:1 with the alphabet, same order
}

type transitionRecord struct {
	symbol Character
	dests  []StateID
}

// Automaton Represents a finite automaton and owns all of its states and
// transitions. States live in an arena indexed by StateID; transitions refer
// to their destinations by StateID and never cross automata. Every mutator
// either applies fully or returns a rejection error and changes nothing.
// Once a start state has been chosen there is exactly one, and at least one
// state stays final.
type Automaton struct {
	name string

	// Arena of every state ever created, including removed ones.
	records []*stateRecord

	// Live states in insertion order.
	order []StateID

	alphabet []Character

	byLabel *HashMap[StateID]
}

func NewAutomaton(name string) *Automaton {
	return &Automaton{
		name:    name,
		byLabel: NewHashMap[StateID](WithCapacity(8)),
	}
}

func (a *Automaton) Name() string {
	return a.name
}

// Equal Automata are identified by name.
func (a *Automaton) Equal(other *Automaton) bool {
	return other != nil && a.name == other.name
}

func (a *Automaton) EqualName(name string) bool {
	return a.name == name
}

func (a *Automaton) record(state StateID) (*stateRecord, bool) {
	if state < 0 || int(state) >= len(a.records) {
		return nil, false
	}
	rec := a.records[state]
	if rec.removed {
		return nil, false
	}
	return rec, true
}

// Contains Returns true if state is a live state of this automaton.
func (a *Automaton) Contains(state StateID) bool {
	_, ok := a.record(state)
	return ok
}

// AddState Adds a state with no flags and one empty transition per symbol.
func (a *Automaton) AddState(label Label) (StateID, error) {
	if a.byLabel.Has(label) {
		return NoState, ErrDuplicateLabel
	}
	id := StateID(len(a.records))
	rec := &stateRecord{label: label.Clone()}
	for _, symbol := range a.alphabet {
		a.initTransition(rec, symbol)
	}
	a.records = append(a.records, rec)
	a.order = append(a.order, id)
	a.byLabel.Set(rec.label, id)
	return id, nil
}

// RemoveState Removes state and strips it from every transition. The start
// state and the only final state cannot be removed.
func (a *Automaton) RemoveState(state StateID) error {
	rec, ok := a.record(state)
	if !ok {
		return ErrStateNotFound
	}
	if rec.start {
		return ErrStartState
	}
	if rec.final && a.NumFinal() <= 1 {
		return ErrLastFinalState
	}

	a.order = slices.DeleteFunc(a.order, func(id StateID) bool { return id == state })
	a.byLabel.Delete(rec.label)
	rec.removed = true
	rec.transitions = nil

	for _, id := range a.order {
		for i := range a.records[id].transitions {
			t := &a.records[id].transitions[i]
			t.dests = slices.DeleteFunc(t.dests, func(d StateID) bool { return d == state })
		}
	}
	return nil
}

// RemoveStateByLabel Same as RemoveState, looking the state up by label.
func (a *Automaton) RemoveStateByLabel(label Label) error {
	state, ok := a.FindState(label)
	if !ok {
		return ErrStateNotFound
	}
	return a.RemoveState(state)
}

// IndexOfState Returns the position of the state labelled label, or -1.
func (a *Automaton) IndexOfState(label Label) int {
	id, ok := a.byLabel.Get(label)
	if !ok {
		return -1
	}
	return slices.Index(a.order, id)
}

// StateAt Returns the state at position index of States.
func (a *Automaton) StateAt(index int) (StateID, bool) {
	if index < 0 || index >= len(a.order) {
		return NoState, false
	}
	return a.order[index], true
}

// FindState Looks a state up by label.
func (a *Automaton) FindState(label Label) (StateID, bool) {
	return a.StateAt(a.IndexOfState(label))
}

// States Returns the live states in insertion order.
func (a *Automaton) States() []StateID {
	return slices.Clone(a.order)
}

func (a *Automaton) NumStates() int {
	return len(a.order)
}

// NumFinal How many live states are final.
func (a *Automaton) NumFinal() int {
	n := 0
	for _, id := range a.order {
		if a.records[id].final {
			n++
		}
	}
	return n
}

// Label Returns the label of state, or the empty label if it is not live.
func (a *Automaton) Label(state StateID) Label {
	rec, ok := a.record(state)
	if !ok {
		return Label{}
	}
	return rec.label.Clone()
}

func (a *Automaton) IsStart(state StateID) bool {
	rec, ok := a.record(state)
	return ok && rec.start
}

func (a *Automaton) IsFinal(state StateID) bool {
	rec, ok := a.record(state)
	return ok && rec.final
}

// Start Returns the start state, if one has been chosen.
func (a *Automaton) Start() (StateID, bool) {
	for _, id := range a.order {
		if a.records[id].start {
			return id, true
		}
	}
	return NoState, false
}

// AddSymbol Adds a symbol and back-fills an empty transition on every state.
func (a *Automaton) AddSymbol(id int) (Character, error) {
	return a.addCharacter(NewCharacter(id))
}

func (a *Automaton) addCharacter(c Character) (Character, error) {
	if a.IndexOfSymbol(c.id) >= 0 {
		return Character{}, ErrDuplicateSymbol
	}
	a.alphabet = append(a.alphabet, c)
	for _, id := range a.order {
		a.initTransition(a.records[id], c)
	}
	return c, nil
}

// RemoveSymbol Removes a symbol and its transition on every state.
func (a *Automaton) RemoveSymbol(id int) error {
	index := a.IndexOfSymbol(id)
	if index < 0 {
		return ErrSymbolNotFound
	}
	symbol := a.alphabet[index]
	a.alphabet = slices.Delete(a.alphabet, index, index+1)
	for _, state := range a.order {
		a.destroyTransition(a.records[state], symbol)
	}
	return nil
}

// SetGlyph Changes how symbol id is displayed.
func (a *Automaton) SetGlyph(id int, glyph string) error {
	index := a.IndexOfSymbol(id)
	if index < 0 {
		return ErrSymbolNotFound
	}
	c, err := a.alphabet[index].WithGlyph(glyph)
	if err != nil {
		return err
	}
	a.alphabet[index] = c
	for _, state := range a.order {
		rec := a.records[state]
		if i := indexOfTransition(rec, c); i >= 0 {
			rec.transitions[i].symbol = c
		}
	}
	return nil
}

// IndexOfSymbol Returns the position of symbol id in the alphabet, or -1.
func (a *Automaton) IndexOfSymbol(id int) int {
	return slices.IndexFunc(a.alphabet, func(c Character) bool { return c.EqualID(id) })
}

func (a *Automaton) SymbolAt(index int) (Character, bool) {
	if index < 0 || index >= len(a.alphabet) {
		return Character{}, false
	}
	return a.alphabet[index], true
}

// Symbols Returns the alphabet in insertion order.
func (a *Automaton) Symbols() []Character {
	return slices.Clone(a.alphabet)
}

func (a *Automaton) HasEpsilon() bool {
	return a.IndexOfSymbol(EpsilonID) >= 0
}

// Clone Returns an independent structural copy named name: the same states
// with the same flags, the same alphabet, and the same destinations.
func (a *Automaton) Clone(name string) *Automaton {
	b := NewAutomaton(name)
	mapping := make(map[StateID]StateID, len(a.order))
	for _, id := range a.order {
		clone, _ := a.CloneStateInto(id, b)
		mapping[id] = clone
	}
	for _, c := range a.alphabet {
		_, _ = c.CloneInto(b)
	}
	for _, id := range a.order {
		for _, t := range a.records[id].transitions {
			for _, dest := range t.dests {
				_ = b.AddDestination(mapping[id], t.symbol, mapping[dest])
			}
		}
	}
	return b
}

// Transform Runs kind against this automaton; the result is named after the kind.
func (a *Automaton) Transform(kind Kind) (*Automaton, error) {
	return kind.Run(a, kind.String())
}

package automaton

// StateInfo Snapshot of a state as it was when a Moment was recorded.
type StateInfo struct {
	ID    StateID
	Label Label
	Start bool
	Final bool
}

// Moment One step of a simulation: the symbol just consumed (epsilon for the
// initial step) and the states live afterwards.
type Moment struct {
	character Character
	states    []StateInfo
}

func (m Moment) Character() Character {
	return m.character
}

// States Returns the live states in the order they were discovered.
func (m Moment) States() []StateInfo {
	states := make([]StateInfo, len(m.states))
	copy(states, m.states)
	return states
}

func (m Moment) HasStates() bool {
	return len(m.states) > 0
}

// Acceptable Returns true if any live state is final.
func (m Moment) Acceptable() bool {
	for _, s := range m.states {
		if s.Final {
			return true
		}
	}
	return false
}

// Result The trace of one simulation run against a named automaton.
type Result struct {
	name    string
	moments []Moment
}

// Name Returns the name of the automaton that produced this result.
func (r *Result) Name() string {
	return r.name
}

func (r *Result) Moments() []Moment {
	moments := make([]Moment, len(r.moments))
	copy(moments, r.moments)
	return moments
}

// Acceptable Returns true if the last moment holds a final state.
func (r *Result) Acceptable() bool {
	if len(r.moments) == 0 {
		return false
	}
	return r.moments[len(r.moments)-1].Acceptable()
}

// Test Simulates input from the epsilon-closure of the start state. The
// result holds one moment per consumed symbol plus the initial one.
func (a *Automaton) Test(input []Character) *Result {
	var live *StateSet
	if start, ok := a.Start(); ok {
		live = a.closeOver([]StateID{start})
	} else {
		live = NewStateSet()
	}

	moments := make([]Moment, 0, len(input)+1)
	moments = append(moments, a.moment(Epsilon, live))
	for _, c := range input {
		moved := NewStateSet()
		for _, state := range live.order {
			moved.AddAll(a.Destinations(state, c))
		}
		live = a.closeOver(moved.order)
		moments = append(moments, a.moment(c, live))
	}
	return &Result{name: a.name, moments: moments}
}

func (a *Automaton) moment(c Character, live *StateSet) Moment {
	states := make([]StateInfo, 0, live.Len())
	for _, id := range live.order {
		rec := a.records[id]
		states = append(states, StateInfo{
			ID:    id,
			Label: rec.label.Clone(),
			Start: rec.start,
			Final: rec.final,
		})
	}
	return Moment{character: c, states: states}
}

package automaton

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Kind Selects one of the transformations of the conversion pipeline. Every
// transformation builds a new automaton and leaves its input untouched.
type Kind int

const (
	EpsilonElimination Kind = iota // NFA-ε to NFA
	Determinization                // NFA to total DFA by subset construction
	Relabel                        // canonical A, B, ... renaming
	PruneUnreachable               // drop states not reachable from the start
	Minimization                   // Moore partition refinement
)

func (k Kind) String() string {
	switch k {
	case EpsilonElimination:
		return StageNFA
	case Determinization:
		return StageDFA
	case Relabel:
		return StageRelabeled
	case PruneUnreachable:
		return StageMin1
	case Minimization:
		return StageMin2
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Run Applies the transformation to a and names the result name.
func (k Kind) Run(a *Automaton, name string) (*Automaton, error) {
	switch k {
	case EpsilonElimination:
		return eliminateEpsilon(a, name)
	case Determinization:
		return determinize(a, name)
	case Relabel:
		return relabel(a, name), nil
	case PruneUnreachable:
		return removeUnreachable(a, name)
	case Minimization:
		return minimize(a, name), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTransformer, k)
	}
}

// eliminateEpsilon Builds an epsilon-free NFA over the same states. The move
// of s on x becomes the closure of everything the closure of s reaches on x.
func eliminateEpsilon(a *Automaton, name string) (*Automaton, error) {
	start, ok := a.Start()
	if !ok {
		return nil, ErrNoStartState
	}

	nfa := NewAutomaton(name)
	mapping := make(map[StateID]StateID, a.NumStates())
	for _, state := range a.order {
		clone, err := a.CloneStateInto(state, nfa)
		if err != nil {
			return nil, err
		}
		mapping[state] = clone
	}
	for _, state := range a.EClosure(start) {
		if a.IsFinal(state) {
			_ = nfa.SetFinal(mapping[start], true)
			break
		}
	}
	for _, c := range a.alphabet {
		if c.IsEpsilon() {
			continue
		}
		if _, err := c.CloneInto(nfa); err != nil {
			return nil, err
		}
	}

	for _, state := range a.order {
		closure := a.EClosure(state)
		for _, c := range nfa.alphabet {
			moved := NewStateSet()
			for _, member := range closure {
				moved.AddAll(a.Destinations(member, c))
			}
			for _, dest := range a.closeOver(moved.order).order {
				if err := nfa.AddDestination(mapping[state], c, mapping[dest]); err != nil {
					return nil, err
				}
			}
		}
	}
	return nfa, nil
}

// determinize Subset construction over a clone of a. Multi-destination moves
// are replaced by the composite of their destinations, empty moves by a
// shared trap state. Composites created along the way are queued so they are
// resolved as well; the result has exactly one destination per symbol.
func determinize(a *Automaton, name string) (*Automaton, error) {
	dfa := a.Clone(name)
	trap := NoState

	queue := dfa.States()
	queued := bitset.New(uint(len(dfa.records)))
	for _, state := range queue {
		queued.Set(uint(state))
	}

	for len(queue) > 0 {
		state := queue[0]
		queue = queue[1:]

		for _, c := range dfa.alphabet {
			dests := dfa.Destinations(state, c)
			switch {
			case len(dests) > 1:
				composite, _, err := dfa.Merge(dests)
				if err != nil {
					return nil, err
				}
				if !queued.Test(uint(composite)) {
					queued.Set(uint(composite))
					queue = append(queue, composite)
				}
				_ = dfa.ClearTransition(state, c)
				if err := dfa.AddDestination(state, c, composite); err != nil {
					return nil, err
				}
			case len(dests) == 0:
				if trap == NoState {
					var err error
					if trap, err = addTrap(dfa); err != nil {
						return nil, err
					}
				}
				if err := dfa.AddDestination(state, c, trap); err != nil {
					return nil, err
				}
			}
		}
	}
	return dfa, nil
}

// addTrap Adds the non-final state labelled ∅ that loops on every symbol.
func addTrap(a *Automaton) (StateID, error) {
	trap, err := a.AddState(Label{})
	if err != nil {
		return NoState, fmt.Errorf("trap state: %w", err)
	}
	for _, c := range a.alphabet {
		if err := a.AddDestination(trap, c, trap); err != nil {
			return NoState, err
		}
	}
	return trap, nil
}

// relabel Renames states A, B, ..., Z, AA, ... in iteration order.
func relabel(a *Automaton, name string) *Automaton {
	rl := a.Clone(name)
	for i, state := range rl.order {
		// A collision leaves the state as it was.
		_ = rl.Relabel(state, upperLabel(i))
	}
	return rl
}

// removeUnreachable Drops every state the start state cannot reach. An
// unreachable state that is the last final one cannot be removed; it is kept
// and reported through a *RetainedError next to the result.
func removeUnreachable(a *Automaton, name string) (*Automaton, error) {
	pruned := a.Clone(name)
	start, ok := pruned.Start()
	if !ok {
		return nil, ErrNoStartState
	}

	reachable := bitset.New(uint(len(pruned.records)))
	reachable.Set(uint(start))
	workList := []StateID{start}
	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]
		for _, t := range pruned.records[state].transitions {
			for _, dest := range t.dests {
				if !reachable.Test(uint(dest)) {
					reachable.Set(uint(dest))
					workList = append(workList, dest)
				}
			}
		}
	}

	var retained []Label
	for _, state := range pruned.States() {
		if reachable.Test(uint(state)) {
			continue
		}
		if err := pruned.RemoveState(state); err != nil {
			retained = append(retained, pruned.Label(state))
		}
	}
	if len(retained) > 0 {
		return pruned, &RetainedError{Labels: retained}
	}
	return pruned, nil
}

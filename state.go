package automaton

// EClosure Returns state followed by every state reachable from it through
// epsilon moves, breadth first, each state once.
func (a *Automaton) EClosure(state StateID) []StateID {
	if !a.Contains(state) {
		return nil
	}
	return a.closeOver([]StateID{state}).IDs()
}

// closeOver Returns the epsilon-closure of seeds. Seeds keep their order and
// the states they reach follow in breadth-first order.
func (a *Automaton) closeOver(seeds []StateID) *StateSet {
	closure := NewStateSet()
	for _, seed := range seeds {
		if !closure.Add(seed) {
			continue
		}
		queue := []StateID{seed}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			for _, next := range a.Destinations(current, Epsilon) {
				if closure.Add(next) {
					queue = append(queue, next)
				}
			}
		}
	}
	return closure
}

// SetStart Marks state as the start state and clears the flag everywhere else.
func (a *Automaton) SetStart(state StateID) error {
	if !a.Contains(state) {
		return ErrStateNotFound
	}
	for _, id := range a.order {
		a.records[id].start = id == state
	}
	return nil
}

// SetFinal Sets or clears the final flag. Clearing the last final state is rejected.
func (a *Automaton) SetFinal(state StateID, final bool) error {
	rec, ok := a.record(state)
	if !ok {
		return ErrStateNotFound
	}
	if !final && rec.final && a.NumFinal() <= 1 {
		return ErrLastFinalState
	}
	rec.final = final
	return nil
}

// CloneStateInto Creates a state with the same label and flags in dst.
// Transitions are not copied.
func (a *Automaton) CloneStateInto(state StateID, dst *Automaton) (StateID, error) {
	rec, ok := a.record(state)
	if !ok {
		return NoState, ErrStateNotFound
	}
	clone, err := dst.AddState(rec.label)
	if err != nil {
		return NoState, err
	}
	if rec.final {
		_ = dst.SetFinal(clone, true)
	}
	if rec.start {
		_ = dst.SetStart(clone)
	}
	return clone, nil
}

// Merge Returns the composite of states, creating it if needed. The composite
// is labelled by the union of the members' labels, is final if any member is,
// and on each symbol goes wherever any member goes.
func (a *Automaton) Merge(states []StateID) (StateID, bool, error) {
	var label Label
	for _, state := range states {
		rec, ok := a.record(state)
		if !ok {
			return NoState, false, ErrForeignState
		}
		label = label.Merge(rec.label)
	}
	if existing, ok := a.byLabel.Get(label); ok {
		return existing, false, nil
	}

	composite, err := a.AddState(label)
	if err != nil {
		return NoState, false, err
	}
	rec := a.records[composite]
	for _, state := range states {
		member := a.records[state]
		if member.final {
			rec.final = true
		}
		for i, t := range member.transitions {
			for _, dest := range t.dests {
				if !rec.transitions[i].contains(dest) {
					rec.transitions[i].dests = append(rec.transitions[i].dests, dest)
				}
			}
		}
	}
	return composite, true, nil
}

// Relabel Renames state unless another state already uses label.
func (a *Automaton) Relabel(state StateID, label Label) error {
	rec, ok := a.record(state)
	if !ok {
		return ErrStateNotFound
	}
	if other, ok := a.byLabel.Get(label); ok {
		if other == state {
			return nil
		}
		return ErrLabelCollision
	}
	a.byLabel.Delete(rec.label)
	rec.label = label.Clone()
	a.byLabel.Set(rec.label, state)
	return nil
}

func (t transitionRecord) contains(state StateID) bool {
	for _, d := range t.dests {
		if d == state {
			return true
		}
	}
	return false
}

package automaton

import (
	"slices"
	"strconv"

	"github.com/bits-and-blooms/bitset"
)

// minimize Minimizes a total DFA with Moore's partition refinement. States
// start out split into final and non-final groups; each pass splits groups
// whose members disagree on which group they reach per symbol, until a pass
// splits nothing. Multi-member groups are replaced by a fresh state labelled
// G0, G1, ..., singletons keep their state.
func minimize(a *Automaton, name string) *Automaton {
	min := a.Clone(name)
	symbols := min.Symbols()

	final := bitset.New(uint(len(min.records)))
	var finals, others []StateID
	for _, state := range min.order {
		if min.records[state].final {
			final.Set(uint(state))
			finals = append(finals, state)
		} else {
			others = append(others, state)
		}
	}
	groups := [][]StateID{finals, others}

	for {
		groupOf := indexGroups(groups)
		next := make([][]StateID, 0, len(groups))
		split := false
		for _, group := range groups {
			var local [][]StateID
			var localSigs [][]int
			for _, state := range group {
				sig := min.signature(state, symbols, groupOf)
				j := slices.IndexFunc(localSigs, func(s []int) bool { return slices.Equal(s, sig) })
				if j >= 0 {
					local[j] = append(local[j], state)
					continue
				}
				if len(local) > 0 {
					split = true
				}
				local = append(local, []StateID{state})
				localSigs = append(localSigs, sig)
			}
			next = append(next, local...)
		}
		groups = next
		if !split {
			break
		}
	}

	groupOf := indexGroups(groups)
	sigs := make([][]int, len(groups))
	for i, group := range groups {
		sigs[i] = min.signature(group[0], symbols, groupOf)
	}

	reps := make([]StateID, len(groups))
	count := 0
	for i, group := range groups {
		if len(group) == 1 {
			reps[i] = group[0]
			continue
		}
		label := NewLabel("G" + strconv.Itoa(count))
		for min.byLabel.Has(label) {
			count++
			label = NewLabel("G" + strconv.Itoa(count))
		}
		rep, _ := min.AddState(label)
		count++
		for _, state := range group {
			if final.Test(uint(state)) {
				_ = min.SetFinal(rep, true)
			}
			if min.records[state].start {
				_ = min.SetStart(rep)
			}
		}
		reps[i] = rep
		for _, state := range group {
			_ = min.RemoveState(state)
		}
	}

	for i, rep := range reps {
		for k, c := range symbols {
			_ = min.ClearTransition(rep, c)
			if target := sigs[i][k]; target >= 0 {
				_ = min.AddDestination(rep, c, reps[target])
			}
		}
	}
	return min
}

func indexGroups(groups [][]StateID) map[StateID]int {
	groupOf := make(map[StateID]int)
	for i, group := range groups {
		for _, state := range group {
			groupOf[state] = i
		}
	}
	return groupOf
}

// signature Lists, per symbol, the group of the state's destination; -1 for
// an undefined move.
func (a *Automaton) signature(state StateID, symbols []Character, groupOf map[StateID]int) []int {
	sig := make([]int, len(symbols))
	for k, c := range symbols {
		sig[k] = -1
		if dests := a.Destinations(state, c); len(dests) > 0 {
			if g, ok := groupOf[dests[0]]; ok {
				sig[k] = g
			}
		}
	}
	return sig
}

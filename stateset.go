package automaton

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// StateSet An insertion-ordered set of states. Membership is tracked in a
// bitset indexed by StateID; iteration follows the order of first insertion.
type StateSet struct {
	members *bitset.BitSet
	order   []StateID
}

func NewStateSet(states ...StateID) *StateSet {
	s := &StateSet{members: bitset.New(uint(len(states)))}
	s.AddAll(states)
	return s
}

// Add Inserts state and reports whether it was new.
func (s *StateSet) Add(state StateID) bool {
	if state < 0 || s.members.Test(uint(state)) {
		return false
	}
	s.members.Set(uint(state))
	s.order = append(s.order, state)
	return true
}

func (s *StateSet) AddAll(states []StateID) {
	for _, state := range states {
		s.Add(state)
	}
}

func (s *StateSet) Contains(state StateID) bool {
	return state >= 0 && s.members.Test(uint(state))
}

func (s *StateSet) Len() int {
	return len(s.order)
}

// IDs Returns the members in insertion order.
func (s *StateSet) IDs() []StateID {
	return slices.Clone(s.order)
}

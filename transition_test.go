package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition_Destinations(t *testing.T) {
	a := NewInputAutomaton()
	s0 := mustState(t, a, "a")
	s1, err := a.AddState(NewLabel("b"))
	require.NoError(t, err)
	zero, err := a.AddSymbol(0)
	require.NoError(t, err)

	require.NoError(t, a.AddDestination(s0, zero, s1))
	require.NoError(t, a.AddDestination(s0, zero, s1), "adding twice is a no-op")
	require.NoError(t, a.AddDestination(s0, zero, s0))
	assert.Equal(t, []StateID{s1, s0}, a.Destinations(s0, zero))

	tr, ok := a.Transition(s0, zero)
	require.True(t, ok)
	assert.False(t, tr.IsEmpty())
	assert.True(t, tr.Contains(s1))
	assert.True(t, tr.EqualSymbol(zero))
	assert.True(t, tr.Equal(Transition{Symbol: NewCharacter(0)}))
	assert.False(t, tr.Equal(Transition{Symbol: Epsilon}))

	assert.Empty(t, a.UnlistedStates(s0, zero))
	require.NoError(t, a.RemoveDestination(s0, zero, s1))
	assert.Equal(t, []StateID{s1}, a.UnlistedStates(s0, zero))

	require.NoError(t, a.ClearTransition(s0, zero))
	tr, _ = a.Transition(s0, zero)
	assert.True(t, tr.IsEmpty())
}

func TestTransition_Rejections(t *testing.T) {
	a := NewInputAutomaton()
	s0 := mustState(t, a, "a")
	other := NewInputAutomaton()
	foreign, err := other.AddState(NewLabel("z"))
	require.NoError(t, err)

	assert.ErrorIs(t, a.AddDestination(s0, NewCharacter(3), s0), ErrSymbolNotFound)
	assert.ErrorIs(t, a.AddDestination(StateID(9), Epsilon, s0), ErrStateNotFound)
	assert.ErrorIs(t, a.AddDestination(s0, Epsilon, foreign), ErrForeignState)
	assert.Empty(t, a.Destinations(s0, Epsilon))
	assert.Nil(t, a.UnlistedStates(s0, NewCharacter(3)))
}

func TestTransition_IndexLookups(t *testing.T) {
	a := EndsWith01()
	s0 := mustState(t, a, "a")

	i := a.IndexOfTransition(s0, NewCharacter(1))
	assert.Equal(t, 2, i)
	tr, ok := a.TransitionAt(s0, i)
	require.True(t, ok)
	assert.Equal(t, 1, tr.Symbol.ID())

	assert.Equal(t, -1, a.IndexOfTransition(s0, NewCharacter(7)))
	_, ok = a.TransitionAt(s0, -1)
	assert.False(t, ok)
}

func TestTransition_InitAndDestroy(t *testing.T) {
	a := NewInputAutomaton()
	rec := a.records[mustState(t, a, "a")]

	assert.False(t, a.initTransition(rec, Epsilon), "already present")
	assert.False(t, a.initTransition(rec, NewCharacter(4)), "foreign symbol")

	a.destroyTransition(rec, Epsilon)
	assert.Empty(t, rec.transitions)
	assert.True(t, a.initTransition(rec, Epsilon))
	assert.Len(t, rec.transitions, 1)
}

package automaton

// NewInputAutomaton Returns the editable NFA-ε every session starts from: one
// state that is both start and final, and an alphabet holding only epsilon.
func NewInputAutomaton() *Automaton {
	a := NewAutomaton(StageInput)
	_, _ = a.addCharacter(Epsilon)
	s, _ := a.AddState(SequentialLabel(0))
	_ = a.SetStart(s)
	_ = a.SetFinal(s, true)
	return a
}

// EndsWith01 Returns an NFA-ε over {0, 1} accepting the binary strings that
// end in 01.
func EndsWith01() *Automaton {
	a := NewInputAutomaton()
	s0, _ := a.FindState(SequentialLabel(0))
	s1, _ := a.AddState(SequentialLabel(1))
	s2, _ := a.AddState(SequentialLabel(2))
	zero, _ := a.AddSymbol(0)
	one, _ := a.AddSymbol(1)

	_ = a.AddDestination(s0, zero, s0)
	_ = a.AddDestination(s0, zero, s1)
	_ = a.AddDestination(s0, one, s0)
	_ = a.AddDestination(s1, one, s2)

	_ = a.SetFinal(s2, true)
	_ = a.SetFinal(s0, false)
	return a
}

// Presets Named example automata.
var Presets = map[string]func() *Automaton{
	"single":       NewInputAutomaton,
	"ends-with-01": EndsWith01,
}

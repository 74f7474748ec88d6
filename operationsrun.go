package automaton

// Accepts Reports whether a accepts the symbol ids in input.
func Accepts(a *Automaton, input ...int) bool {
	return a.Test(Symbols(input...)).Acceptable()
}

// Symbols Converts ids into characters.
func Symbols(ids ...int) []Character {
	chars := make([]Character, len(ids))
	for i, id := range ids {
		chars[i] = NewCharacter(id)
	}
	return chars
}

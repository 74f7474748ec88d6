package automaton

import "strconv"

const (
	// EpsilonID Any negative identifier denotes epsilon; this is the one used internally.
	EpsilonID    = -1
	epsilonGlyph = "ε"
)

// Epsilon The empty-input symbol.
var Epsilon = NewCharacter(EpsilonID)

// Character An alphabet symbol. All negative identifiers form a single
// epsilon class.
type Character struct {
	id    int
	glyph string
}

func NewCharacter(id int) Character {
	if id < 0 {
		return Character{id: id, glyph: epsilonGlyph}
	}
	return Character{id: id}
}

func (c Character) ID() int {
	return c.id
}

func (c Character) IsEpsilon() bool {
	return c.id < 0
}

// WithGlyph Returns a copy displayed as glyph. Epsilon keeps its own glyph.
func (c Character) WithGlyph(glyph string) (Character, error) {
	if c.IsEpsilon() {
		return c, ErrEpsilonGlyph
	}
	c.glyph = glyph
	return c, nil
}

func (c Character) Equal(other Character) bool {
	return c.EqualID(other.id)
}

func (c Character) EqualID(id int) bool {
	if c.id < 0 && id < 0 {
		return true
	}
	return c.id == id
}

// CloneInto Registers an equal symbol in a, keeping a custom glyph.
func (c Character) CloneInto(a *Automaton) (Character, error) {
	return a.addCharacter(c)
}

func (c Character) String() string {
	if c.glyph != "" {
		return c.glyph
	}
	return strconv.Itoa(c.id)
}

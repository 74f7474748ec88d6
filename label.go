package automaton

import (
	"slices"
	"strings"
)

const emptyLabelGlyph = "∅"

// Label Identifies a state by an unordered set of name tokens. Composite
// states built during determinization carry the union of their members'
// tokens, so two composites over the same subset always compare equal.
type Label struct {
	tokens []string // sorted, unique
}

// NewLabel Builds a label from tokens; order and duplicates are ignored.
func NewLabel(tokens ...string) Label {
	if len(tokens) == 0 {
		return Label{}
	}
	values := slices.Clone(tokens)
	slices.Sort(values)
	return Label{tokens: slices.Compact(values)}
}

// SequentialLabel Returns the n-th lowercase label: 0 is "a", 25 is "z", 26 is "aa".
func SequentialLabel(n int) Label {
	return NewLabel(base26(n, 'a'))
}

func upperLabel(n int) Label {
	return NewLabel(base26(n, 'A'))
}

func base26(n int, first byte) string {
	buf := make([]byte, 0, 4)
	for {
		buf = append(buf, first+byte(n%26))
		if n < 26 {
			break
		}
		n = n/26 - 1
	}
	slices.Reverse(buf)
	return string(buf)
}

// Tokens Returns a copy of the sorted tokens.
func (l Label) Tokens() []string {
	return slices.Clone(l.tokens)
}

func (l Label) IsEmpty() bool {
	return len(l.tokens) == 0
}

func (l Label) Clone() Label {
	return Label{tokens: slices.Clone(l.tokens)}
}

// Merge Returns the union of this label and others.
func (l Label) Merge(others ...Label) Label {
	values := slices.Clone(l.tokens)
	for _, o := range others {
		values = append(values, o.tokens...)
	}
	return NewLabel(values...)
}

func (l Label) Equal(other Label) bool {
	return slices.Equal(l.tokens, other.tokens)
}

// EqualTokens Compares against a raw token set.
func (l Label) EqualTokens(tokens ...string) bool {
	return l.Equal(NewLabel(tokens...))
}

func (l Label) String() string {
	switch len(l.tokens) {
	case 0:
		return emptyLabelGlyph
	case 1:
		return l.tokens[0]
	default:
		return "{" + strings.Join(l.tokens, ",") + "}"
	}
}

func (l Label) Hash() uint64 {
	return hashTokens(l.tokens)
}

func (l Label) Equals(other Hashable) bool {
	o, ok := other.(Label)
	return ok && l.Equal(o)
}

package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequentialLabel(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "a"},
		{1, "b"},
		{25, "z"},
		{26, "aa"},
		{27, "ab"},
		{51, "az"},
		{52, "ba"},
		{701, "zz"},
		{702, "aaa"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, SequentialLabel(tt.n).String())
		})
	}
}

func TestUpperLabel(t *testing.T) {
	assert.Equal(t, "A", upperLabel(0).String())
	assert.Equal(t, "Z", upperLabel(25).String())
	assert.Equal(t, "AA", upperLabel(26).String())
}

func TestLabel_Equal(t *testing.T) {
	assert.True(t, NewLabel("a", "b").Equal(NewLabel("b", "a")))
	assert.True(t, NewLabel("a", "a", "b").Equal(NewLabel("b", "a")))
	assert.False(t, NewLabel("a").Equal(NewLabel("a", "b")))
	assert.True(t, NewLabel().Equal(Label{}))

	assert.True(t, NewLabel("c", "a").EqualTokens("a", "c"))
	assert.False(t, NewLabel("c", "a").EqualTokens("a"))
}

func TestLabel_Merge(t *testing.T) {
	merged := NewLabel("a").Merge(NewLabel("c"), NewLabel("b", "a"))
	assert.Equal(t, []string{"a", "b", "c"}, merged.Tokens())

	// Merging with the empty label changes nothing.
	assert.True(t, NewLabel("b").Merge(Label{}).Equal(NewLabel("b")))
}

func TestLabel_Clone(t *testing.T) {
	l := NewLabel("a", "b")
	c := l.Clone()
	assert.True(t, l.Equal(c))

	tokens := c.Tokens()
	tokens[0] = "z"
	assert.True(t, l.Equal(c), "Tokens must return a copy")
}

func TestLabel_String(t *testing.T) {
	assert.Equal(t, "∅", Label{}.String())
	assert.Equal(t, "q", NewLabel("q").String())
	assert.Equal(t, "{a,b}", NewLabel("b", "a").String())
}

func TestLabel_Hash(t *testing.T) {
	assert.Equal(t, NewLabel("a", "b").Hash(), NewLabel("b", "a").Hash())
	assert.NotEqual(t, NewLabel("a", "b").Hash(), NewLabel("ab").Hash())
	assert.True(t, NewLabel("x").Equals(NewLabel("x")))
	assert.False(t, NewLabel("x").Equals(collidingKey("x")))
}

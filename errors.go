package automaton

import (
	"errors"
	"strings"
)

// Rejections returned by mutators. A nil error means the change was applied;
// any of these means the automaton was left untouched.
var (
	ErrDuplicateLabel     = errors.New("state label already exists")
	ErrDuplicateSymbol    = errors.New("symbol already exists")
	ErrStateNotFound      = errors.New("state not found")
	ErrSymbolNotFound     = errors.New("symbol not found")
	ErrStartState         = errors.New("cannot remove the start state")
	ErrLastFinalState     = errors.New("cannot drop the last final state")
	ErrLabelCollision     = errors.New("label collides with another state")
	ErrForeignState       = errors.New("state belongs to another automaton")
	ErrEpsilonGlyph       = errors.New("epsilon glyph cannot be changed")
	ErrLastSymbol         = errors.New("alphabet cannot shrink below epsilon")
	ErrNoStartState       = errors.New("automaton has no start state")
	ErrUnknownTransformer = errors.New("unknown transformer")
)

// RetainedError reports unreachable states that pruning had to keep because
// removing them would leave the automaton without a final state.
type RetainedError struct {
	Labels []Label
}

func (e *RetainedError) Error() string {
	names := make([]string, len(e.Labels))
	for i, l := range e.Labels {
		names[i] = l.String()
	}
	return "unreachable states retained: " + strings.Join(names, ", ")
}

func (e *RetainedError) Unwrap() error {
	return ErrLastFinalState
}

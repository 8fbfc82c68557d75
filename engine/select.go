package engine

import (
	"errors"

	"sorry/game"
)

// Selection failures, distinguishable by errors.Is.
var (
	ErrNoLegalMoves       = errors.New("no legal moves")
	ErrSelectionRequired  = errors.New("move selection required")
	ErrSelectionIndex     = errors.New("move index out of range")
	ErrSelectionNoMatch   = errors.New("move selection matches no candidate")
	ErrSelectionAmbiguous = errors.New("move selection is ambiguous")
)

// Selection describes which candidate move to commit. The zero value
// expresses no preference, legal only when a single candidate exists.
// Index selects by position; Move filters candidates by field.
type Selection struct {
	Index *int
	Move  *MoveFilter
}

// MoveFilter narrows candidates by exact match on the supplied fields;
// nil fields match anything.
type MoveFilter struct {
	PawnID             *string
	TargetPawnID       *string
	SecondaryPawnID    *string
	Direction          *game.Direction
	Steps              *int
	SecondaryDirection *game.Direction
	SecondarySteps     *int
}

func (f *MoveFilter) matches(m game.Move) bool {
	if f.PawnID != nil && m.PawnID != *f.PawnID {
		return false
	}
	if f.TargetPawnID != nil && m.TargetPawnID != *f.TargetPawnID {
		return false
	}
	if f.SecondaryPawnID != nil && m.SecondaryPawnID != *f.SecondaryPawnID {
		return false
	}
	if f.Direction != nil && m.Direction != *f.Direction {
		return false
	}
	if f.Steps != nil && m.Steps != *f.Steps {
		return false
	}
	if f.SecondaryDirection != nil && m.SecondaryDirection != *f.SecondaryDirection {
		return false
	}
	if f.SecondarySteps != nil && m.SecondarySteps != *f.SecondarySteps {
		return false
	}
	return true
}

// SelectMove resolves sel against the candidate list. A filter must
// leave exactly one candidate: zero is a no-match failure, more than
// one is ambiguous.
func SelectMove(candidates []game.Move, sel Selection) (game.Move, error) {
	if len(candidates) == 0 {
		return game.Move{}, ErrNoLegalMoves
	}

	if sel.Index == nil && sel.Move == nil {
		if len(candidates) == 1 {
			return candidates[0], nil
		}
		return game.Move{}, ErrSelectionRequired
	}

	if sel.Index != nil {
		i := *sel.Index
		if i < 0 || i >= len(candidates) {
			return game.Move{}, ErrSelectionIndex
		}
		return candidates[i], nil
	}

	matched := make([]game.Move, 0, len(candidates))
	for _, m := range candidates {
		if sel.Move.matches(m) {
			matched = append(matched, m)
		}
	}
	switch len(matched) {
	case 1:
		return matched[0], nil
	case 0:
		return game.Move{}, ErrSelectionNoMatch
	default:
		return game.Move{}, ErrSelectionAmbiguous
	}
}

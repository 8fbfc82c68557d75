package game

import "errors"

// Applier precondition failures. These indicate a malformed or stale
// move rather than a user mistake; user-facing rejections (wrong turn,
// finished game) belong to the session layer.
var (
	ErrPawnNotFound       = errors.New("pawn not found")
	ErrTargetNotFound     = errors.New("target pawn not found")
	ErrMissingTarget      = errors.New("missing target pawn")
	ErrWrongPosition      = errors.New("pawn in wrong position for card")
	ErrSplitMoveIllegal   = errors.New("split sub-move illegal")
	ErrMissingDirection   = errors.New("missing direction or steps")
	ErrIllegalDestination = errors.New("illegal destination")
)

package game

import "fmt"

// ApplyMove commits move against a copy of gs and returns the new
// state. Every precondition is re-derived rather than trusted: a move
// produced by LegalMoves against the same state always succeeds, so an
// error here signals a stale or hand-built move. The whole operation is
// atomic; on error the working copy is discarded and gs is untouched.
func ApplyMove(gs *GameState, move Move) (*GameState, error) {
	next := gs.Copy()

	pawn := next.pawnByID(move.PawnID)
	if pawn == nil || pawn.Seat != move.Seat {
		return nil, fmt.Errorf("card %s pawn %q: %w", move.Card, move.PawnID, ErrPawnNotFound)
	}

	switch {
	case move.Card == CardSorry:
		return applySorry(next, pawn, move)
	case move.Card == Card11 && move.TargetPawnID != "":
		return applySwitch(next, pawn, move)
	case move.Card == Card7 && move.SecondaryPawnID != "":
		return applySplit(next, pawn, move)
	}

	if move.Steps == 0 || move.Direction == "" {
		return nil, fmt.Errorf("card %s: %w", move.Card, ErrMissingDirection)
	}

	var ok bool
	switch move.Direction {
	case Forward:
		ok = moveForward(next, pawn, move.Steps)
	case Backward:
		ok = moveBackward(next, pawn, move.Steps)
	default:
		return nil, fmt.Errorf("direction %q: %w", move.Direction, ErrMissingDirection)
	}
	if !ok {
		return nil, fmt.Errorf("card %s %s %d: %w", move.Card, move.Direction, move.Steps, ErrIllegalDestination)
	}
	return next, nil
}

// applySorry moves a Start pawn onto an opponent's track cell, bumping
// the occupant and resolving slides at the landing index.
func applySorry(next *GameState, pawn *Pawn, move Move) (*GameState, error) {
	if move.TargetPawnID == "" {
		return nil, fmt.Errorf("sorry: %w", ErrMissingTarget)
	}
	if pawn.Position.Kind != Start {
		return nil, fmt.Errorf("sorry needs a pawn in start: %w", ErrWrongPosition)
	}
	target := next.pawnByID(move.TargetPawnID)
	if target == nil {
		return nil, fmt.Errorf("sorry target %q: %w", move.TargetPawnID, ErrTargetNotFound)
	}
	if target.Position.Kind != Track {
		return nil, fmt.Errorf("sorry target must be on the track: %w", ErrWrongPosition)
	}

	final, slideCells := resolveSlides(pawn.Seat, target.Position.Index, true)
	if final.Kind != Track {
		return nil, fmt.Errorf("sorry cannot enter safety or home: %w", ErrIllegalDestination)
	}

	target.Position = StartPosition()
	if len(slideCells) > 0 {
		bumpPawnsOn(next, slideCells, pawn.ID)
	}
	pawn.Position = final
	return next, nil
}

// applySwitch exchanges the positions of two track pawns exactly, with
// no slide or bump side effects.
func applySwitch(next *GameState, pawn *Pawn, move Move) (*GameState, error) {
	target := next.pawnByID(move.TargetPawnID)
	if target == nil {
		return nil, fmt.Errorf("switch target %q: %w", move.TargetPawnID, ErrTargetNotFound)
	}
	if pawn.Position.Kind != Track || target.Position.Kind != Track {
		return nil, fmt.Errorf("switch requires both pawns on the track: %w", ErrWrongPosition)
	}
	pawn.Position, target.Position = target.Position, pawn.Position
	return next, nil
}

// applySplit runs both legs of a 7-split in order against one working
// copy; the whole move fails if either leg is illegal.
func applySplit(next *GameState, pawn *Pawn, move Move) (*GameState, error) {
	if move.Direction != Forward || move.Steps == 0 {
		return nil, fmt.Errorf("split primary leg: %w", ErrMissingDirection)
	}
	if move.SecondaryDirection != Forward || move.SecondarySteps == 0 {
		return nil, fmt.Errorf("split secondary leg: %w", ErrMissingDirection)
	}
	if !moveForward(next, pawn, move.Steps) {
		return nil, fmt.Errorf("split primary leg: %w", ErrSplitMoveIllegal)
	}
	second := next.pawnByID(move.SecondaryPawnID)
	if second == nil || second.Seat != move.Seat {
		return nil, fmt.Errorf("split secondary pawn %q: %w", move.SecondaryPawnID, ErrPawnNotFound)
	}
	if !moveForward(next, second, move.SecondarySteps) {
		return nil, fmt.Errorf("split secondary leg: %w", ErrSplitMoveIllegal)
	}
	return next, nil
}

package game

// Single-pawn movement. Both entry points mutate gs, which must be a
// working copy owned by the caller; a false return means the move is
// illegal and the copy must be discarded.

// moveForward advances pawn by steps, resolving slides, safety entry,
// and bumps.
func moveForward(gs *GameState, pawn *Pawn, steps int) bool {
	var final Position
	var slideCells []int

	switch pawn.Position.Kind {
	case Home:
		return false
	case Start:
		if steps < 1 {
			return false
		}
		// Leaving Start costs one step and lands on the last cell of the
		// pawn's own first slide.
		fs := firstSlideIndices(pawn.Seat)
		index := fs[len(fs)-1]
		if remaining := steps - 1; remaining > 0 {
			index = advanceTrack(index, remaining)
		}
		final, slideCells = resolveSlides(pawn.Seat, index, true)
	case Track:
		current := pawn.Position.Index
		entry := safeEntryIndex(pawn.Seat)
		distToEntry := retreatTrack(entry, current) // forward distance to the entry cell
		if steps <= distToEntry {
			final, slideCells = resolveSlides(pawn.Seat, advanceTrack(current, steps), true)
		} else {
			// Passing the entry cell turns off into the safety lane.
			remaining := steps - distToEntry - 1
			switch {
			case remaining < SafetyZoneLen:
				final = SafetyPosition(remaining)
			case remaining == SafetyZoneLen:
				final = HomePosition()
			default:
				return false
			}
		}
	case Safety:
		next := pawn.Position.Index + steps
		switch {
		case next < SafetyZoneLen:
			final = SafetyPosition(next)
		case next == SafetyZoneLen:
			final = HomePosition()
		default:
			return false
		}
	default:
		return false
	}

	return landPawn(gs, pawn, final, slideCells)
}

// moveBackward retreats pawn by steps. Backward moves never divert into
// the safety lane, but a backward landing on a slide start still carries
// the pawn to the slide's end.
func moveBackward(gs *GameState, pawn *Pawn, steps int) bool {
	var final Position
	var slideCells []int

	switch pawn.Position.Kind {
	case Start, Home:
		return false
	case Track:
		final, slideCells = resolveSlides(pawn.Seat, retreatTrack(pawn.Position.Index, steps), false)
	case Safety:
		current := pawn.Position.Index
		if steps <= current {
			final = SafetyPosition(current - steps)
		} else {
			// Back out through the entry cell onto the track.
			remaining := steps - (current + 1)
			index := retreatTrack(safeEntryIndex(pawn.Seat), remaining)
			final, slideCells = resolveSlides(pawn.Seat, index, false)
		}
	default:
		return false
	}

	return landPawn(gs, pawn, final, slideCells)
}

// resolveSlides maps a raw landing index to the final position. A
// forward landing on the start of the mover's own near-safety slide
// diverts to Safety(0); landing on any other slide start carries the
// pawn to the slide's last cell. The returned cells are the slide cells
// whose occupants get bumped.
func resolveSlides(seat, index int, forward bool) (Position, []int) {
	slide, ok := slideAt(index)
	if !ok {
		return TrackPosition(index), nil
	}
	if forward && slide.IsNearSafety && slide.OwnerSeat == seat {
		return SafetyPosition(0), slide.Indices
	}
	return TrackPosition(slide.Indices[len(slide.Indices)-1]), slide.Indices
}

// landPawn commits the resolved position: rejects landing on an own
// pawn or an occupied safety slot, bumps an opposing occupant, then
// bumps everything on the traversed slide cells. Bumps apply to the
// mover's own color too.
func landPawn(gs *GameState, pawn *Pawn, final Position, slideCells []int) bool {
	switch final.Kind {
	case Track:
		if other := gs.pawnOnTrack(final.Index); other != nil {
			if other.Seat == pawn.Seat {
				return false
			}
			other.Position = StartPosition()
		}
	case Safety:
		if gs.pawnInSafety(pawn.Seat, final.Index) != nil {
			return false
		}
	}

	if len(slideCells) > 0 {
		bumpPawnsOn(gs, slideCells, pawn.ID)
	}

	pawn.Position = final
	return true
}

// bumpPawnsOn sends every pawn sitting on the given track cells back to
// Start, except the mover.
func bumpPawnsOn(gs *GameState, cells []int, moverID string) {
	for i := range gs.Pawns {
		p := &gs.Pawns[i]
		if p.ID == moverID || p.Position.Kind != Track {
			continue
		}
		for _, cell := range cells {
			if p.Position.Index == cell {
				p.Position = StartPosition()
				break
			}
		}
	}
}

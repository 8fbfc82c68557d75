package game

// LegalMoves enumerates every legal move for the seat holding card.
// Candidates are trial-applied against disposable copies; the given
// state is never mutated. An empty result means the card cannot be
// played this turn.
func LegalMoves(gs *GameState, seat int, card Card) []Move {
	moves := []Move{}
	pawns := gs.pawnsForSeat(seat)

	collectForward := func(dst []Move, steps int, allowFromStart bool) []Move {
		for _, pawn := range pawns {
			kind := pawn.Position.Kind
			if kind == Start && !allowFromStart {
				continue
			}
			if kind != Start && kind != Track && kind != Safety {
				continue
			}
			trial := gs.Copy()
			if moveForward(trial, trial.pawnByID(pawn.ID), steps) {
				dst = append(dst, Move{
					Card:      card,
					Seat:      seat,
					PawnID:    pawn.ID,
					Direction: Forward,
					Steps:     steps,
				})
			}
		}
		return dst
	}

	collectBackward := func(dst []Move, steps int) []Move {
		for _, pawn := range pawns {
			kind := pawn.Position.Kind
			if kind != Track && kind != Safety {
				continue
			}
			trial := gs.Copy()
			if moveBackward(trial, trial.pawnByID(pawn.ID), steps) {
				dst = append(dst, Move{
					Card:      card,
					Seat:      seat,
					PawnID:    pawn.ID,
					Direction: Backward,
					Steps:     steps,
				})
			}
		}
		return dst
	}

	switch card {
	case Card1:
		moves = collectForward(moves, 1, true)
	case Card2:
		moves = collectForward(moves, 2, true)
	case Card3:
		moves = collectForward(moves, 3, false)
	case Card4:
		moves = collectBackward(moves, 4)
	case Card5:
		moves = collectForward(moves, 5, false)
	case Card7:
		moves = collectForward(moves, 7, false)
		moves = append(moves, splitMoves(gs, pawns, seat, card)...)
	case Card8:
		moves = collectForward(moves, 8, false)
	case Card10:
		// Forward-10 preference is global: any forward move suppresses
		// every backward-1 fallback.
		forward := collectForward(nil, 10, false)
		if len(forward) > 0 {
			moves = append(moves, forward...)
		} else {
			moves = collectBackward(moves, 1)
		}
	case Card11:
		moves = collectForward(moves, 11, false)
		moves = append(moves, switchMoves(gs, pawns, seat, card)...)
	case Card12:
		moves = collectForward(moves, 12, false)
	case CardSorry:
		moves = append(moves, sorryMoves(gs, pawns, seat, card)...)
	}

	return moves
}

// splitMoves enumerates every way to divide 7 forward steps across two
// distinct pawns. The second leg is simulated against the state left by
// the first, so a pawn bumped home by its partner cannot take the
// second leg.
func splitMoves(gs *GameState, pawns []Pawn, seat int, card Card) []Move {
	var moves []Move
	for firstSteps := 1; firstSteps <= 6; firstSteps++ {
		secondSteps := 7 - firstSteps
		for _, first := range pawns {
			if first.Position.Kind != Track && first.Position.Kind != Safety {
				continue
			}
			trial := gs.Copy()
			if !moveForward(trial, trial.pawnByID(first.ID), firstSteps) {
				continue
			}
			for _, second := range pawns {
				if second.ID == first.ID {
					continue
				}
				if second.Position.Kind != Track && second.Position.Kind != Safety {
					continue
				}
				secondTrial := trial.Copy()
				partner := secondTrial.pawnByID(second.ID)
				if partner.Position.Kind == Start {
					// Bumped back by the first leg.
					continue
				}
				if !moveForward(secondTrial, partner, secondSteps) {
					continue
				}
				moves = append(moves, Move{
					Card:               card,
					Seat:               seat,
					PawnID:             first.ID,
					Direction:          Forward,
					Steps:              firstSteps,
					SecondaryPawnID:    second.ID,
					SecondaryDirection: Forward,
					SecondarySteps:     secondSteps,
				})
			}
		}
	}
	return moves
}

// switchMoves pairs every own track pawn with every opponent track
// pawn. Switching ignores slide, safety, and bump rules entirely, so no
// simulation is needed.
func switchMoves(gs *GameState, pawns []Pawn, seat int, card Card) []Move {
	var moves []Move
	for _, pawn := range pawns {
		if pawn.Position.Kind != Track {
			continue
		}
		for _, target := range gs.Pawns {
			if target.Seat == seat || target.Position.Kind != Track {
				continue
			}
			moves = append(moves, Move{
				Card:         card,
				Seat:         seat,
				PawnID:       pawn.ID,
				TargetPawnID: target.ID,
			})
		}
	}
	return moves
}

// sorryMoves lands the first pawn still in Start on an opponent's track
// cell, with slide resolution applied. Targets whose resolved
// destination leaves the track (the mover's own near-safety slide
// start) are skipped: Sorry! can never place a pawn into Safety.
func sorryMoves(gs *GameState, pawns []Pawn, seat int, card Card) []Move {
	var moves []Move
	var startPawn *Pawn
	for i := range pawns {
		if pawns[i].Position.Kind == Start {
			startPawn = &pawns[i]
			break
		}
	}
	if startPawn == nil {
		return moves
	}
	for _, target := range gs.Pawns {
		if target.Seat == seat || target.Position.Kind != Track {
			continue
		}
		final, _ := resolveSlides(seat, target.Position.Index, true)
		if final.Kind != Track {
			continue
		}
		moves = append(moves, Move{
			Card:         card,
			Seat:         seat,
			PawnID:       startPawn.ID,
			Direction:    Forward,
			TargetPawnID: target.ID,
		})
	}
	return moves
}

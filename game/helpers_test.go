package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestState builds a seeded all-bot game. Pawn IDs follow the
// initializer's scheme: test_s<seat>_p<n>.
func newTestState(t *testing.T, numSeats int) *GameState {
	t.Helper()
	seed := int64(7)
	seats := make([]Seat, numSeats)
	for i := range seats {
		seats[i] = Seat{Index: i, Color: Colors[i], IsBot: true, Status: SeatBot}
	}
	return InitializeGame("test", "host", GameSettings{MaxSeats: numSeats, DeckSeed: &seed}, seats)
}

func setPawn(t *testing.T, gs *GameState, id string, pos Position) {
	t.Helper()
	pawn := gs.pawnByID(id)
	require.NotNil(t, pawn, "no pawn %s", id)
	pawn.Position = pos
}

func pawnPos(t *testing.T, gs *GameState, id string) Position {
	t.Helper()
	pawn := gs.pawnByID(id)
	require.NotNil(t, pawn, "no pawn %s", id)
	return pawn.Position
}

// requireInvariants checks the occupancy rules: every position well
// formed, no shared track cell, no shared safety slot within a seat.
func requireInvariants(t *testing.T, gs *GameState) {
	t.Helper()
	trackSeen := make(map[int]string)
	safetySeen := make(map[[2]int]string)
	for _, p := range gs.Pawns {
		switch p.Position.Kind {
		case Start, Home:
			require.Zero(t, p.Position.Index, "pawn %s has an index off the board", p.ID)
		case Track:
			require.GreaterOrEqual(t, p.Position.Index, 0)
			require.Less(t, p.Position.Index, TrackLen)
			other, dup := trackSeen[p.Position.Index]
			require.False(t, dup, "pawns %s and %s share track cell %d", other, p.ID, p.Position.Index)
			trackSeen[p.Position.Index] = p.ID
		case Safety:
			require.GreaterOrEqual(t, p.Position.Index, 0)
			require.Less(t, p.Position.Index, SafetyZoneLen)
			key := [2]int{p.Seat, p.Position.Index}
			other, dup := safetySeen[key]
			require.False(t, dup, "pawns %s and %s share safety slot %d", other, p.ID, p.Position.Index)
			safetySeen[key] = p.ID
		default:
			t.Fatalf("pawn %s has invalid position kind %v", p.ID, p.Position.Kind)
		}
	}
}

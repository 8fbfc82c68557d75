package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitializeGame(t *testing.T) {
	gs := newTestState(t, 2)

	require.Equal(t, PhaseActive, gs.Phase)
	require.Equal(t, ResultActive, gs.Result)
	require.Equal(t, -1, gs.WinnerSeat)
	require.Equal(t, 0, gs.CurrentSeat)
	require.Len(t, gs.Deck, DeckSize)
	require.Empty(t, gs.Discard)

	require.Len(t, gs.Pawns, 2*PawnsPerSeat)
	for _, p := range gs.Pawns {
		require.Equal(t, StartPosition(), p.Position)
	}
	require.Equal(t, "test_s0_p0", gs.Pawns[0].ID)
	require.Equal(t, "test_s1_p3", gs.Pawns[7].ID)
}

func TestCopyIsDeep(t *testing.T) {
	gs := newTestState(t, 2)
	dup := gs.Copy()

	dup.Pawns[0].Position = TrackPosition(30)
	dup.Deck = dup.Deck[1:]
	dup.Seats[0].IsBot = false

	require.Equal(t, StartPosition(), gs.Pawns[0].Position)
	require.Len(t, gs.Deck, DeckSize)
	require.True(t, gs.Seats[0].IsBot)
}

func TestCheckWinner(t *testing.T) {
	gs := newTestState(t, 2)
	for i := 0; i < PawnsPerSeat; i++ {
		setPawn(t, gs, gs.Pawns[i].ID, HomePosition())
	}

	gs.CheckWinner()
	require.Equal(t, ResultWin, gs.Result)
	require.Equal(t, 0, gs.WinnerSeat)
	require.Equal(t, PhaseFinished, gs.Phase)
	require.True(t, gs.Finished())

	// A second check must not reassign the winner.
	for i := PawnsPerSeat; i < 2*PawnsPerSeat; i++ {
		setPawn(t, gs, gs.Pawns[i].ID, HomePosition())
	}
	gs.CheckWinner()
	require.Equal(t, 0, gs.WinnerSeat)
}

func TestHashTracksBoardChanges(t *testing.T) {
	gs := newTestState(t, 2)
	before := gs.Hash()
	require.Equal(t, before, gs.Copy().Hash(), "copies hash identically")

	gs.Pawns[0].Position = TrackPosition(4)
	require.NotEqual(t, before, gs.Hash())
}

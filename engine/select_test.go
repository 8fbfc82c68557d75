package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sorry/game"
)

func intPtr(i int) *int                       { return &i }
func strPtr(s string) *string                 { return &s }
func dirPtr(d game.Direction) *game.Direction { return &d }

func sampleMoves() []game.Move {
	return []game.Move{
		{Card: game.Card1, Seat: 0, PawnID: "a", Direction: game.Forward, Steps: 1},
		{Card: game.Card1, Seat: 0, PawnID: "b", Direction: game.Forward, Steps: 1},
		{Card: game.Card1, Seat: 0, PawnID: "c", Direction: game.Forward, Steps: 1},
	}
}

func TestSelectMoveNoCandidates(t *testing.T) {
	_, err := SelectMove(nil, Selection{})
	require.ErrorIs(t, err, ErrNoLegalMoves)
}

func TestSelectMoveAuto(t *testing.T) {
	moves := sampleMoves()[:1]
	got, err := SelectMove(moves, Selection{})
	require.NoError(t, err)
	require.Equal(t, moves[0], got)
}

func TestSelectMoveRequiresChoice(t *testing.T) {
	_, err := SelectMove(sampleMoves(), Selection{})
	require.ErrorIs(t, err, ErrSelectionRequired)
}

func TestSelectMoveByIndex(t *testing.T) {
	moves := sampleMoves()

	got, err := SelectMove(moves, Selection{Index: intPtr(2)})
	require.NoError(t, err)
	require.Equal(t, moves[2], got)

	_, err = SelectMove(moves, Selection{Index: intPtr(3)})
	require.ErrorIs(t, err, ErrSelectionIndex)

	_, err = SelectMove(moves, Selection{Index: intPtr(-1)})
	require.ErrorIs(t, err, ErrSelectionIndex)
}

func TestSelectMoveByFilter(t *testing.T) {
	moves := sampleMoves()

	got, err := SelectMove(moves, Selection{Move: &MoveFilter{PawnID: strPtr("b")}})
	require.NoError(t, err)
	require.Equal(t, moves[1], got)

	_, err = SelectMove(moves, Selection{Move: &MoveFilter{PawnID: strPtr("z")}})
	require.ErrorIs(t, err, ErrSelectionNoMatch)

	_, err = SelectMove(moves, Selection{Move: &MoveFilter{Direction: dirPtr(game.Forward)}})
	require.ErrorIs(t, err, ErrSelectionAmbiguous)
}

func TestSelectMoveFilterAllFields(t *testing.T) {
	moves := []game.Move{
		{Card: game.Card7, PawnID: "a", Direction: game.Forward, Steps: 3,
			SecondaryPawnID: "b", SecondaryDirection: game.Forward, SecondarySteps: 4},
		{Card: game.Card7, PawnID: "a", Direction: game.Forward, Steps: 4,
			SecondaryPawnID: "b", SecondaryDirection: game.Forward, SecondarySteps: 3},
	}

	got, err := SelectMove(moves, Selection{Move: &MoveFilter{
		PawnID:         strPtr("a"),
		Steps:          intPtr(4),
		SecondarySteps: intPtr(3),
	}})
	require.NoError(t, err)
	require.Equal(t, moves[1], got)
}

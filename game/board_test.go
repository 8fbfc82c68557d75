package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSegmentOffsets(t *testing.T) {
	require.Equal(t, 0, segmentOffset(0))
	require.Equal(t, 15, segmentOffset(1))
	require.Equal(t, 30, segmentOffset(2))
	require.Equal(t, 45, segmentOffset(3))
}

func TestSlideIndices(t *testing.T) {
	require.Equal(t, []int{1, 2, 3, 4}, firstSlideIndices(0))
	require.Equal(t, []int{10, 11, 12, 13, 14}, secondSlideIndices(0))

	require.Equal(t, []int{16, 17, 18, 19}, firstSlideIndices(1))
	require.Equal(t, []int{25, 26, 27, 28, 29}, secondSlideIndices(1))

	require.Equal(t, []int{46, 47, 48, 49}, firstSlideIndices(3))
	require.Equal(t, []int{55, 56, 57, 58, 59}, secondSlideIndices(3))
}

func TestSafeEntryIndex(t *testing.T) {
	require.Equal(t, 2, safeEntryIndex(0))
	require.Equal(t, 17, safeEntryIndex(1))
	require.Equal(t, 32, safeEntryIndex(2))
	require.Equal(t, 47, safeEntryIndex(3))
}

func TestSlideTable(t *testing.T) {
	require.Len(t, slides, 2*NumColors, "two slides per color")

	for seat := 0; seat < NumColors; seat++ {
		first, ok := slideAt(firstSlideIndices(seat)[0])
		require.True(t, ok)
		require.Equal(t, seat, first.OwnerSeat)
		require.True(t, first.IsNearSafety)
		require.Len(t, first.Indices, FirstSlideLen)

		second, ok := slideAt(secondSlideIndices(seat)[0])
		require.True(t, ok)
		require.Equal(t, seat, second.OwnerSeat)
		require.False(t, second.IsNearSafety)
		require.Len(t, second.Indices, SecondSlideLen)
	}
}

func TestTrackArithmetic(t *testing.T) {
	require.Equal(t, 5, advanceTrack(2, 3))
	require.Equal(t, 1, advanceTrack(58, 3), "advance wraps")
	require.Equal(t, 5, retreatTrack(9, 4))
	require.Equal(t, 57, retreatTrack(2, 5), "retreat wraps")
	require.Equal(t, 0, retreatTrack(0, 60))
}

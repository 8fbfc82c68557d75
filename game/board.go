package game

// Board geometry. The outer track is a 60-cell loop made of four 15-cell
// color segments. Each segment carries two slides: a 4-cell slide whose
// second cell doubles as the color's safety entry, and a 5-cell slide
// further along the segment.
const (
	NumColors      = 4
	SegmentLen     = 15
	TrackLen       = NumColors * SegmentLen
	SafetyZoneLen  = 5
	FirstSlideLen  = 4
	SecondSlideLen = 5

	PawnsPerSeat = 4
)

// Colors in seat order.
var Colors = [NumColors]string{"red", "blue", "yellow", "green"}

// Slide is one run of track cells. Landing exactly on Indices[0] carries
// the pawn to the last cell, or into the owner's safety lane when
// IsNearSafety and the mover owns it.
type Slide struct {
	OwnerSeat    int
	Indices      []int
	IsNearSafety bool
}

// slides maps each slide's starting index to its metadata, 2 per color.
var slides = buildSlides()

func segmentOffset(seat int) int {
	return (seat % NumColors) * SegmentLen
}

func firstSlideIndices(seat int) []int {
	start := (segmentOffset(seat) + 1) % TrackLen
	indices := make([]int, FirstSlideLen)
	for i := range indices {
		indices[i] = (start + i) % TrackLen
	}
	return indices
}

func secondSlideIndices(seat int) []int {
	fs := firstSlideIndices(seat)
	// 5 normal cells separate the first slide's end from the second's start.
	start := (fs[len(fs)-1] + 1 + 5) % TrackLen
	indices := make([]int, SecondSlideLen)
	for i := range indices {
		indices[i] = (start + i) % TrackLen
	}
	return indices
}

// safeEntryIndex is the track cell past which the seat's pawns turn off
// into their safety lane: the second cell of the seat's first slide.
func safeEntryIndex(seat int) int {
	return firstSlideIndices(seat)[1]
}

func buildSlides() map[int]Slide {
	table := make(map[int]Slide, 2*NumColors)
	for seat := 0; seat < NumColors; seat++ {
		fs := firstSlideIndices(seat)
		ss := secondSlideIndices(seat)
		table[fs[0]] = Slide{OwnerSeat: seat, Indices: fs, IsNearSafety: true}
		table[ss[0]] = Slide{OwnerSeat: seat, Indices: ss, IsNearSafety: false}
	}
	return table
}

func slideAt(index int) (Slide, bool) {
	s, ok := slides[index]
	return s, ok
}

func advanceTrack(index, steps int) int {
	return (index + steps) % TrackLen
}

func retreatTrack(index, steps int) int {
	return ((index-steps)%TrackLen + TrackLen) % TrackLen
}

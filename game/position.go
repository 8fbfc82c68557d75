package game

// PositionKind discriminates the four places a pawn can be.
type PositionKind int

const (
	Start PositionKind = iota
	Track
	Safety
	Home
)

func (k PositionKind) String() string {
	switch k {
	case Start:
		return "start"
	case Track:
		return "track"
	case Safety:
		return "safety"
	case Home:
		return "home"
	}
	return "unknown"
}

// Position locates one pawn. Index is the cell on the outer track for
// Track, the lane slot (0..4) for Safety, and 0 otherwise.
type Position struct {
	Kind  PositionKind `json:"type"`
	Index int          `json:"index"`
}

func StartPosition() Position           { return Position{Kind: Start} }
func TrackPosition(index int) Position  { return Position{Kind: Track, Index: index} }
func SafetyPosition(index int) Position { return Position{Kind: Safety, Index: index} }
func HomePosition() Position            { return Position{Kind: Home} }

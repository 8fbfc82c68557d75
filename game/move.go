package game

// Direction of a numeric movement along the track.
type Direction string

const (
	Forward  Direction = "forward"
	Backward Direction = "backward"
)

// Move is one playable action for a card. Zero values mean the field is
// absent: Sorry! and 11-switch moves carry no Steps, only split-7 moves
// carry the Secondary fields.
type Move struct {
	Card               Card      `json:"card"`
	Seat               int       `json:"seatIndex"`
	PawnID             string    `json:"pawnId"`
	Direction          Direction `json:"direction,omitempty"`
	Steps              int       `json:"steps,omitempty"`
	TargetPawnID       string    `json:"targetPawnId,omitempty"`
	SecondaryPawnID    string    `json:"secondaryPawnId,omitempty"`
	SecondaryDirection Direction `json:"secondaryDirection,omitempty"`
	SecondarySteps     int       `json:"secondarySteps,omitempty"`
}

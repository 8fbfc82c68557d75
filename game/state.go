package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// SeatStatus tracks how a seat is filled.
type SeatStatus string

const (
	SeatOpen   SeatStatus = "open"
	SeatJoined SeatStatus = "joined"
	SeatBot    SeatStatus = "bot"
)

// Seat is one of the 2-4 player positions around the board. Player
// identity is opaque to the engine.
type Seat struct {
	Index       int        `json:"index"`
	Color       string     `json:"color"`
	IsBot       bool       `json:"isBot"`
	PlayerID    string     `json:"playerId,omitempty"`
	DisplayName string     `json:"displayName,omitempty"`
	Status      SeatStatus `json:"status"`
}

// Occupied reports whether the seat takes turns.
func (s Seat) Occupied() bool {
	return s.PlayerID != "" || s.IsBot
}

// GameSettings are fixed at game creation.
type GameSettings struct {
	MaxSeats int    `json:"maxSeats"`
	DeckSeed *int64 `json:"deckSeed,omitempty"`
}

type Phase string

const (
	PhaseLobby    Phase = "lobby"
	PhaseActive   Phase = "active"
	PhaseFinished Phase = "finished"
	PhaseAborted  Phase = "aborted"
)

type Result string

const (
	ResultActive  Result = "active"
	ResultWin     Result = "win"
	ResultAborted Result = "aborted"
)

// Pawn is one of the four pieces per active seat.
type Pawn struct {
	ID       string   `json:"pawnId"`
	Seat     int      `json:"seatIndex"`
	Position Position `json:"position"`
}

// GameState is the full dynamic state of one game. Every committed move
// produces a new value via Copy; substructures are never shared between
// a pre- and post-move snapshot.
type GameState struct {
	GameID      string       `json:"gameId"`
	HostID      string       `json:"hostId"`
	Phase       Phase        `json:"phase"`
	Settings    GameSettings `json:"settings"`
	Seats       []Seat       `json:"seats"`
	Deck        []Card       `json:"deck"`
	Discard     []Card       `json:"discardPile"`
	Pawns       []Pawn       `json:"pawns"`
	TurnNumber  int          `json:"turnNumber"`
	CurrentSeat int          `json:"currentSeatIndex"`
	WinnerSeat  int          `json:"winnerSeatIndex"` // -1 while nobody has won
	Result      Result       `json:"result"`
}

type StateHash uint64

// InitializeGame builds the starting state: a shuffled deck, four pawns
// in Start per seat, seat 0 to move.
func InitializeGame(gameID, hostID string, settings GameSettings, seats []Seat) *GameState {
	seatsCopy := make([]Seat, len(seats))
	copy(seatsCopy, seats)
	return &GameState{
		GameID:      gameID,
		HostID:      hostID,
		Phase:       PhaseActive,
		Settings:    settings,
		Seats:       seatsCopy,
		Deck:        ShuffleDeck(settings.DeckSeed),
		Discard:     []Card{},
		Pawns:       initialPawns(gameID, seats),
		TurnNumber:  0,
		CurrentSeat: 0,
		WinnerSeat:  -1,
		Result:      ResultActive,
	}
}

func initialPawns(gameID string, seats []Seat) []Pawn {
	pawns := make([]Pawn, 0, len(seats)*PawnsPerSeat)
	for _, seat := range seats {
		for i := 0; i < PawnsPerSeat; i++ {
			pawns = append(pawns, Pawn{
				ID:       fmt.Sprintf("%s_s%d_p%d", gameID, seat.Index, i),
				Seat:     seat.Index,
				Position: StartPosition(),
			})
		}
	}
	return pawns
}

// Copy returns a deep copy. The seed pointer in Settings is shared but
// never written after creation.
func (gs *GameState) Copy() *GameState {
	seatsCopy := make([]Seat, len(gs.Seats))
	copy(seatsCopy, gs.Seats)

	deckCopy := make([]Card, len(gs.Deck))
	copy(deckCopy, gs.Deck)

	discardCopy := make([]Card, len(gs.Discard))
	copy(discardCopy, gs.Discard)

	pawnsCopy := make([]Pawn, len(gs.Pawns))
	copy(pawnsCopy, gs.Pawns)

	out := *gs
	out.Seats = seatsCopy
	out.Deck = deckCopy
	out.Discard = discardCopy
	out.Pawns = pawnsCopy
	return &out
}

func (gs *GameState) pawnByID(id string) *Pawn {
	for i := range gs.Pawns {
		if gs.Pawns[i].ID == id {
			return &gs.Pawns[i]
		}
	}
	return nil
}

func (gs *GameState) pawnOnTrack(index int) *Pawn {
	for i := range gs.Pawns {
		p := &gs.Pawns[i]
		if p.Position.Kind == Track && p.Position.Index == index {
			return p
		}
	}
	return nil
}

func (gs *GameState) pawnInSafety(seat, index int) *Pawn {
	for i := range gs.Pawns {
		p := &gs.Pawns[i]
		if p.Position.Kind == Safety && p.Seat == seat && p.Position.Index == index {
			return p
		}
	}
	return nil
}

func (gs *GameState) pawnsForSeat(seat int) []Pawn {
	var out []Pawn
	for _, p := range gs.Pawns {
		if p.Seat == seat {
			out = append(out, p)
		}
	}
	return out
}

// CheckWinner marks the game won the instant any seat has all four
// pawns Home.
func (gs *GameState) CheckWinner() {
	if gs.Result != ResultActive {
		return
	}
	for _, seat := range gs.Seats {
		pawns := gs.pawnsForSeat(seat.Index)
		if len(pawns) == 0 {
			continue
		}
		home := true
		for _, p := range pawns {
			if p.Position.Kind != Home {
				home = false
				break
			}
		}
		if home {
			gs.Result = ResultWin
			gs.WinnerSeat = seat.Index
			gs.Phase = PhaseFinished
			return
		}
	}
}

// Finished reports whether play has ended.
func (gs *GameState) Finished() bool {
	return gs.Result != ResultActive
}

// Hash is an FNV-64a digest of the board-relevant state, for update
// streams and duplicate detection.
func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.CurrentSeat))
	binary.Write(hasher, binary.LittleEndian, int64(gs.TurnNumber))

	for _, p := range gs.Pawns {
		binary.Write(hasher, binary.LittleEndian, int64(p.Position.Kind))
		binary.Write(hasher, binary.LittleEndian, int64(p.Position.Index))
	}

	binary.Write(hasher, binary.LittleEndian, int64(len(gs.Deck)))

	return StateHash(hasher.Sum64())
}

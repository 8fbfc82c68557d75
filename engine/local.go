package engine

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"sorry/game"
)

// User-facing rejections. These are session concerns, distinct from the
// game package's invariant errors.
var (
	ErrNotInGame   = errors.New("not in game")
	ErrNotYourTurn = errors.New("not your turn")
	ErrNotBotTurn  = errors.New("current seat is not a bot")
)

// Update is published after every committed turn.
type Update struct {
	Moves []game.Move
	State *game.GameState
	Hash  game.StateHash
}

// LocalSession drives one game in process: it owns the authoritative
// state, applies one turn at a time, and publishes snapshot updates. It
// stands in for the external session/storage layer the engine assumes;
// the caller is responsible for invoking it from a single goroutine.
type LocalSession struct {
	state    *game.GameState
	rng      *rand.Rand
	updateCh chan Update
	closed   bool
}

// NewLocalSession initializes a game for the given roster. The deck
// seed, when set, also seeds the bot move source so whole games replay
// identically.
func NewLocalSession(gameID, hostID string, settings game.GameSettings, seats []game.Seat) *LocalSession {
	var src rand.Source
	if settings.DeckSeed != nil {
		src = rand.NewSource(uint64(*settings.DeckSeed))
	} else {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	return &LocalSession{
		state:    game.InitializeGame(gameID, hostID, settings, seats),
		rng:      rand.New(src),
		updateCh: make(chan Update, 64),
	}
}

// State returns a snapshot copy of the authoritative state.
func (s *LocalSession) State() *game.GameState {
	return s.state.Copy()
}

// Updates streams post-turn snapshots. The channel closes when the game
// finishes; updates are dropped if no consumer keeps up.
func (s *LocalSession) Updates() <-chan Update {
	return s.updateCh
}

// Play runs one turn for the human player userID.
func (s *LocalSession) Play(userID string, sel Selection) error {
	if s.state.Finished() {
		return ErrGameOver
	}
	seat := s.seatFor(userID)
	if seat < 0 {
		return ErrNotInGame
	}
	if seat != s.state.CurrentSeat {
		return ErrNotYourTurn
	}

	result, err := PlayTurn(s.state, sel)
	if err != nil {
		return err
	}
	s.commit(result)
	return nil
}

// Step runs one turn for the current seat, which must be a bot.
func (s *LocalSession) Step() error {
	if s.state.Finished() {
		return ErrGameOver
	}
	if !s.state.Seats[s.state.CurrentSeat].IsBot {
		return ErrNotBotTurn
	}

	result, err := BotStep(s.state, s.rng)
	if err != nil {
		return err
	}
	s.commit(result)
	return nil
}

func (s *LocalSession) commit(result TurnResult) {
	// The committed state already points at the next seat, so the acting
	// seat and turn number come from the state the turn was played on.
	actingSeat := s.state.CurrentSeat
	actingTurn := s.state.TurnNumber
	s.state = result.State

	evt := log.Debug().
		Str("game", s.state.GameID).
		Int("turn", actingTurn).
		Int("seat", actingSeat).
		Int("moves", len(result.Moves))
	if len(result.Cards) > 0 {
		evt = evt.Stringer("card", result.Cards[0])
	}
	evt.Msg("turn committed")

	update := Update{
		Moves: result.Moves,
		State: s.state.Copy(),
		Hash:  s.state.Hash(),
	}
	select {
	case s.updateCh <- update:
	default:
	}

	if s.state.Finished() && !s.closed {
		s.closed = true
		close(s.updateCh)
		log.Info().
			Str("game", s.state.GameID).
			Int("winner", s.state.WinnerSeat).
			Int("turns", s.state.TurnNumber).
			Msg("game finished")
	}
}

func (s *LocalSession) seatFor(userID string) int {
	if userID == "" {
		return -1
	}
	for _, seat := range s.state.Seats {
		if seat.PlayerID == userID {
			return seat.Index
		}
	}
	return -1
}

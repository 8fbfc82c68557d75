package engine

import (
	"errors"

	"golang.org/x/exp/rand"

	"sorry/game"
)

// ErrGameOver rejects any action on a finished game.
var ErrGameOver = errors.New("game over")

// TurnResult reports one completed turn: the resulting state, the cards
// drawn (two when the first was a 2), and the committed moves (empty
// when a draw had no legal play).
type TurnResult struct {
	State *game.GameState
	Cards []game.Card
	Moves []game.Move
}

// ensureDeck rebuilds and reshuffles the draw pile when it is empty. A
// configured seed reproduces the same order every cycle; the discard
// pile is cleared.
func ensureDeck(gs *game.GameState) {
	if len(gs.Deck) > 0 {
		return
	}
	gs.Deck = game.ShuffleDeck(gs.Settings.DeckSeed)
	gs.Discard = gs.Discard[:0]
}

// drawCard pops the head of the draw pile into the discard pile.
func drawCard(gs *game.GameState) game.Card {
	ensureDeck(gs)
	card := gs.Deck[0]
	gs.Deck = gs.Deck[1:]
	gs.Discard = append(gs.Discard, card)
	return card
}

// advanceTurn passes play to the next occupied seat and increments the
// turn number. Open seats are skipped.
func advanceTurn(gs *game.GameState) {
	n := len(gs.Seats)
	idx := gs.CurrentSeat
	for i := 0; i < n; i++ {
		idx = (idx + 1) % n
		if gs.Seats[idx].Occupied() {
			gs.CurrentSeat = idx
			gs.TurnNumber++
			return
		}
	}
}

// PlayTurn runs one full turn for the current seat: draw a card,
// enumerate candidates, resolve sel against them, commit the move,
// check for a win, take the forced extra draw when the card was a 2,
// and advance the turn. gs itself is never modified; on error no turn
// is consumed.
func PlayTurn(gs *game.GameState, sel Selection) (TurnResult, error) {
	return runTurn(gs, func(candidates []game.Move) (game.Move, error) {
		return SelectMove(candidates, sel)
	}, pickFirst)
}

// BotStep runs one full turn for the current seat, choosing uniformly
// at random among the candidates. rng must not be nil so automated
// games stay reproducible under a fixed seed.
func BotStep(gs *game.GameState, rng *rand.Rand) (TurnResult, error) {
	pick := func(candidates []game.Move) (game.Move, error) {
		return candidates[rng.Intn(len(candidates))], nil
	}
	return runTurn(gs, pick, pick)
}

// pickFirst is the deterministic choice for the rank-2 forced move,
// where no external descriptor applies.
func pickFirst(candidates []game.Move) (game.Move, error) {
	return candidates[0], nil
}

type chooser func([]game.Move) (game.Move, error)

func runTurn(gs *game.GameState, choose, chooseExtra chooser) (TurnResult, error) {
	if gs.Finished() {
		return TurnResult{}, ErrGameOver
	}

	state := gs.Copy()
	seat := state.CurrentSeat
	result := TurnResult{}

	card := drawCard(state)
	result.Cards = append(result.Cards, card)

	// A draw with no legal play still consumes the turn.
	candidates := game.LegalMoves(state, seat, card)
	if len(candidates) > 0 {
		move, err := choose(candidates)
		if err != nil {
			return TurnResult{}, err
		}
		next, err := game.ApplyMove(state, move)
		if err != nil {
			return TurnResult{}, err
		}
		state = next
		result.Moves = append(result.Moves, move)
	}
	state.CheckWinner()

	// Rank 2 grants one extra draw-and-move without passing the turn,
	// even when its own draw produced no legal move.
	if !state.Finished() && card == game.Card2 {
		extra := drawCard(state)
		result.Cards = append(result.Cards, extra)
		extraCandidates := game.LegalMoves(state, seat, extra)
		if len(extraCandidates) > 0 {
			move, err := chooseExtra(extraCandidates)
			if err != nil {
				return TurnResult{}, err
			}
			next, err := game.ApplyMove(state, move)
			if err != nil {
				return TurnResult{}, err
			}
			state = next
			result.Moves = append(result.Moves, move)
		}
		state.CheckWinner()
	}

	if !state.Finished() && card != game.Card2 {
		advanceTurn(state)
	}

	result.State = state
	return result, nil
}

package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"sorry/engine"
	"sorry/game"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "deck and bot seed")
	seats := flag.Int("seats", 2, "number of bot seats (2-4)")
	verbose := flag.Bool("v", false, "log every turn")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	winner := runBotGame(*seed, *seats)
	if winner < 0 {
		log.Warn().Msg("game did not finish")
		os.Exit(1)
	}
}

// runBotGame plays one all-bot game to completion and returns the
// winning seat, or -1 if the turn cap was reached.
func runBotGame(seed int64, numSeats int) int {
	if numSeats < 2 {
		numSeats = 2
	}
	if numSeats > game.NumColors {
		numSeats = game.NumColors
	}

	settings := game.GameSettings{MaxSeats: numSeats, DeckSeed: &seed}
	seats := make([]game.Seat, numSeats)
	for i := range seats {
		seats[i] = game.Seat{
			Index:  i,
			Color:  game.Colors[i],
			IsBot:  true,
			Status: game.SeatBot,
		}
	}

	session := engine.NewLocalSession("demo", "host", settings, seats)
	log.Info().Int64("seed", seed).Int("seats", numSeats).Msg("game started")

	const maxTurns = 10000
	for i := 0; i < maxTurns; i++ {
		if err := session.Step(); err != nil {
			break
		}
	}
	return session.State().WinnerSeat
}

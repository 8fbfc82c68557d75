package game

import (
	"time"

	"golang.org/x/exp/rand"
)

// Card is one of the eleven movement ranks.
type Card int

const (
	Card1 Card = iota
	Card2
	Card3
	Card4
	Card5
	Card7
	Card8
	Card10
	Card11
	Card12
	CardSorry
)

// DeckSize is the canonical deck size: five 1s plus four of each other rank.
const DeckSize = 45

func (c Card) String() string {
	switch c {
	case Card1:
		return "1"
	case Card2:
		return "2"
	case Card3:
		return "3"
	case Card4:
		return "4"
	case Card5:
		return "5"
	case Card7:
		return "7"
	case Card8:
		return "8"
	case Card10:
		return "10"
	case Card11:
		return "11"
	case Card12:
		return "12"
	case CardSorry:
		return "Sorry!"
	}
	return "unknown"
}

// BuildDeck returns the 45-card deck in canonical order.
func BuildDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for i := 0; i < 5; i++ {
		deck = append(deck, Card1)
	}
	others := []Card{CardSorry, Card2, Card3, Card4, Card5, Card7, Card8, Card10, Card11, Card12}
	for _, c := range others {
		for i := 0; i < 4; i++ {
			deck = append(deck, c)
		}
	}
	return deck
}

// ShuffleDeck returns a fresh canonical deck shuffled from seed. A nil
// seed shuffles from a time-seeded source.
func ShuffleDeck(seed *int64) []Card {
	deck := BuildDeck()
	var rng *rand.Rand
	if seed != nil {
		rng = rand.New(rand.NewSource(uint64(*seed)))
	} else {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

package game

import (
	"fmt"
	"strings"
)

type Rank string

const (
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
	Ace   Rank = "A"
)

var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// CardValues maps a rank to its hard value. An Ace starts at 11.
var CardValues = map[Rank]int{
	Two: 2, Three: 3, Four: 4, Five: 5, Six: 6, Seven: 7, Eight: 8, Nine: 9, Ten: 10,
	Jack: 10, Queen: 10, King: 10, Ace: 11,
}

type Suit string

const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

var suitSymbols = map[Suit]string{
	Hearts: "♥", Diamonds: "♦", Clubs: "♣", Spades: "♠",
}

// Card is one drawn card. Image is an opaque reference the engine never reads.
type Card struct {
	Rank  Rank
	Suit  Suit
	Image string
}

func NewCard(r Rank, s Suit) Card {
	return Card{Rank: r, Suit: s}
}

func (r Rank) Valid() bool {
	_, ok := CardValues[r]
	return ok
}

func (s Suit) Valid() bool {
	_, ok := suitSymbols[s]
	return ok
}

func (s Suit) Symbol() string {
	return suitSymbols[s]
}

func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

func (c Card) Value() int {
	return CardValues[c.Rank]
}

func (c Card) IsAce() bool {
	return c.Rank == Ace
}

func (c Card) String() string {
	return string(c.Rank) + c.Suit.Symbol()
}

// ParseRank accepts short ranks ("A", "10") and the long names used by the
// deck API ("ACE", "KING").
func ParseRank(s string) (Rank, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A", "ACE":
		return Ace, nil
	case "K", "KING":
		return King, nil
	case "Q", "QUEEN":
		return Queen, nil
	case "J", "JACK":
		return Jack, nil
	case "10", "0", "T":
		return Ten, nil
	}

	r := Rank(strings.TrimSpace(s))
	if !r.Valid() {
		return "", fmt.Errorf("%w: unknown rank %q", ErrInvalidCard, s)
	}
	return r, nil
}

func ParseSuit(s string) (Suit, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "HEARTS", "H", "♥":
		return Hearts, nil
	case "DIAMONDS", "D", "♦":
		return Diamonds, nil
	case "CLUBS", "C", "♣":
		return Clubs, nil
	case "SPADES", "S", "♠":
		return Spades, nil
	}
	return "", fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, s)
}

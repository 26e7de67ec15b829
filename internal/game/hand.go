package game

import (
	"fmt"
	"strings"
)

// Hand holds the cards of one party in draw order. Score, blackjack and bust
// are always derived from the cards, never stored.
type Hand struct {
	cards []Card
}

func NewHand() *Hand {
	return &Hand{
		cards: make([]Card, 0, 10),
	}
}

// Draw appends a card. A card without a real rank or suit is rejected and the
// hand is left unchanged.
func (h *Hand) Draw(card Card) error {
	if !card.Valid() {
		return fmt.Errorf("%w: rank %q suit %q", ErrInvalidCard, card.Rank, card.Suit)
	}
	h.cards = append(h.cards, card)
	return nil
}

func (h *Hand) Clear() {
	h.cards = h.cards[:0]
}

// Cards returns a copy of the cards in draw order.
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

func (h *Hand) Len() int {
	return len(h.cards)
}

func (h *Hand) Score() int {
	return CalculateScore(h.cards)
}

func (h *Hand) HasBlackjack() bool {
	return IsBlackjack(h.cards)
}

func (h *Hand) IsBust() bool {
	return IsBust(h.cards)
}

func (h *Hand) IsSoft() bool {
	return IsSoft(h.cards)
}

func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

package deck

import (
	"context"
	"math/rand"
	"sync"

	"twentyone/internal/game"
)

const DefaultDecks = 6

// Shoe is a local multi-deck shoe. An empty shoe is refilled and reshuffled.
type Shoe struct {
	mu    sync.Mutex
	decks int
	cards []game.Card
}

func NewShoe(decks int) *Shoe {
	if decks <= 0 {
		decks = DefaultDecks
	}
	s := &Shoe{decks: decks}
	s.fill()
	return s
}

func (s *Shoe) fill() {
	s.cards = make([]game.Card, 0, 52*s.decks)
	for i := 0; i < s.decks; i++ {
		for _, suit := range game.Suits {
			for _, rank := range game.Ranks {
				s.cards = append(s.cards, game.NewCard(rank, suit))
			}
		}
	}
	s.shuffle()
}

func (s *Shoe) shuffle() {
	rand.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
}

func (s *Shoe) Draw(ctx context.Context) (game.Card, error) {
	if err := ctx.Err(); err != nil {
		return game.Card{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cards) == 0 {
		s.fill()
	}

	card := s.cards[0]
	s.cards = s.cards[1:]
	return card, nil
}

func (s *Shoe) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cards)
}

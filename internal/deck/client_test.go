package deck

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"twentyone/internal/game"
)

// fakeAPI serves a tiny deck-of-cards API over a fixed card list.
type fakeAPI struct {
	mu        sync.Mutex
	cards     []apiCard
	pos       int
	created   int
	shuffled  int
	deckCount string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	resp := apiResponse{Success: true, DeckID: "abc123"}

	switch {
	case r.URL.Path == "/deck/new/shuffle/":
		f.created++
		f.deckCount = r.URL.Query().Get("deck_count")
		f.pos = 0
	case r.URL.Path == "/deck/abc123/shuffle/":
		f.shuffled++
		f.pos = 0
	case r.URL.Path == "/deck/abc123/draw/":
		if f.pos >= len(f.cards) {
			resp.Success = false
			resp.Error = "Not enough cards remaining to draw 1 additional"
		} else {
			resp.Cards = []apiCard{f.cards[f.pos]}
			f.pos++
		}
	default:
		http.NotFound(w, r)
		return
	}

	resp.Remaining = len(f.cards) - f.pos
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func TestClientDraw(t *testing.T) {
	api := &fakeAPI{cards: []apiCard{
		{Code: "AS", Value: "ACE", Suit: "SPADES", Image: "https://img/AS.png"},
		{Code: "0H", Value: "10", Suit: "HEARTS"},
	}}
	srv := httptest.NewServer(api)
	defer srv.Close()

	c := NewClient(srv.URL+"/", 6, time.Second)
	ctx := context.Background()

	first, err := c.Draw(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := game.Card{Rank: game.Ace, Suit: game.Spades, Image: "https://img/AS.png"}
	if first != want {
		t.Fatalf("first = %+v, want %+v", first, want)
	}

	second, err := c.Draw(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if second.Rank != game.Ten || second.Suit != game.Hearts {
		t.Fatalf("second = %+v", second)
	}

	if api.created != 1 || api.deckCount != "6" {
		t.Fatalf("created %d decks with deck_count=%q", api.created, api.deckCount)
	}
	if c.DeckID() != "abc123" {
		t.Fatalf("deck id = %q", c.DeckID())
	}
}

func TestClientReshufflesWhenEmpty(t *testing.T) {
	api := &fakeAPI{cards: []apiCard{{Value: "KING", Suit: "CLUBS"}}}
	srv := httptest.NewServer(api)
	defer srv.Close()

	c := NewClient(srv.URL, 1, time.Second)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		card, err := c.Draw(ctx)
		if err != nil {
			t.Fatalf("draw %d: %v", i, err)
		}
		if card.Rank != game.King {
			t.Fatalf("draw %d = %+v", i, card)
		}
	}
	if api.created != 1 || api.shuffled != 2 {
		t.Fatalf("created=%d shuffled=%d, want 1 and 2", api.created, api.shuffled)
	}
}

func TestClientErrors(t *testing.T) {
	t.Run("http status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL, 1, time.Second).Draw(context.Background())
		if err == nil || !strings.Contains(err.Error(), "502") {
			t.Fatalf("err = %v, want status 502", err)
		}
	})

	t.Run("empty deck after reshuffle", func(t *testing.T) {
		srv := httptest.NewServer(&fakeAPI{})
		defer srv.Close()

		_, err := NewClient(srv.URL, 1, time.Second).Draw(context.Background())
		if !errors.Is(err, ErrNoCards) {
			t.Fatalf("err = %v, want ErrNoCards", err)
		}
	})

	t.Run("unknown card", func(t *testing.T) {
		srv := httptest.NewServer(&fakeAPI{cards: []apiCard{{Value: "JOKER", Suit: "SPADES"}}})
		defer srv.Close()

		_, err := NewClient(srv.URL, 1, time.Second).Draw(context.Background())
		if !errors.Is(err, game.ErrInvalidCard) {
			t.Fatalf("err = %v, want ErrInvalidCard", err)
		}
	})
}

func TestClientAsSupplier(t *testing.T) {
	api := &fakeAPI{cards: []apiCard{
		{Value: "10", Suit: "SPADES"},
		{Value: "9", Suit: "HEARTS"},
		{Value: "7", Suit: "CLUBS"},
		{Value: "8", Suit: "DIAMONDS"},
	}}
	srv := httptest.NewServer(api)
	defer srv.Close()

	s := game.NewState(NewClient(srv.URL, 1, time.Second), game.DefaultDealerPolicy)
	snap, err := s.Deal(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if snap.PlayerScore != 17 || snap.DealerScore != 17 {
		t.Fatalf("scores %d/%d", snap.PlayerScore, snap.DealerScore)
	}
}

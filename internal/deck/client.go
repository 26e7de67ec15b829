package deck

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"twentyone/internal/game"
)

const DefaultAPIURL = "https://deckofcardsapi.com/api"

var ErrNoCards = errors.New("deck api returned no cards")

type apiCard struct {
	Code  string `json:"code"`
	Image string `json:"image"`
	Value string `json:"value"`
	Suit  string `json:"suit"`
}

type apiResponse struct {
	Success   bool      `json:"success"`
	DeckID    string    `json:"deck_id"`
	Remaining int       `json:"remaining"`
	Shuffled  bool      `json:"shuffled"`
	Cards     []apiCard `json:"cards"`
	Error     string    `json:"error"`
}

// Client draws cards from a deck-of-cards style HTTP API. The remote deck is
// created on the first draw and reshuffled whenever it runs dry.
type Client struct {
	baseURL string
	decks   int
	http    *http.Client

	mu        sync.Mutex
	deckID    string
	remaining int
}

func NewClient(baseURL string, decks int, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	if decks <= 0 {
		decks = DefaultDecks
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		decks:   decks,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) DeckID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deckID
}

func (c *Client) Draw(ctx context.Context) (game.Card, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.deckID == "" {
		if err := c.create(ctx); err != nil {
			return game.Card{}, err
		}
	} else if c.remaining == 0 {
		if err := c.reshuffle(ctx); err != nil {
			return game.Card{}, err
		}
	}

	card, err := c.draw(ctx)
	if errors.Is(err, ErrNoCards) && c.remaining == 0 {
		if err := c.reshuffle(ctx); err != nil {
			return game.Card{}, err
		}
		card, err = c.draw(ctx)
	}
	return card, err
}

func (c *Client) create(ctx context.Context) error {
	q := url.Values{"deck_count": {strconv.Itoa(c.decks)}}
	resp, err := c.get(ctx, "/deck/new/shuffle/", q)
	if err != nil {
		return fmt.Errorf("failed to create deck: %w", err)
	}
	if !resp.Success || resp.DeckID == "" {
		return fmt.Errorf("failed to create deck: %s", resp.Error)
	}
	c.deckID = resp.DeckID
	c.remaining = resp.Remaining
	return nil
}

func (c *Client) reshuffle(ctx context.Context) error {
	resp, err := c.get(ctx, "/deck/"+c.deckID+"/shuffle/", nil)
	if err != nil {
		return fmt.Errorf("failed to reshuffle deck %s: %w", c.deckID, err)
	}
	if !resp.Success {
		return fmt.Errorf("failed to reshuffle deck %s: %s", c.deckID, resp.Error)
	}
	c.remaining = resp.Remaining
	return nil
}

func (c *Client) draw(ctx context.Context) (game.Card, error) {
	resp, err := c.get(ctx, "/deck/"+c.deckID+"/draw/", url.Values{"count": {"1"}})
	if err != nil {
		return game.Card{}, fmt.Errorf("failed to draw: %w", err)
	}
	c.remaining = resp.Remaining

	if len(resp.Cards) == 0 {
		// an exhausted deck answers success=false with no cards
		if resp.Remaining == 0 {
			return game.Card{}, ErrNoCards
		}
		return game.Card{}, fmt.Errorf("failed to draw: %s", resp.Error)
	}
	return toCard(resp.Cards[0])
}

func (c *Client) get(ctx context.Context, path string, q url.Values) (*apiResponse, error) {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode/100 != 2 {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return nil, fmt.Errorf("%s: status %d: %s", path, res.StatusCode, strings.TrimSpace(string(msg)))
	}

	var body apiResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &body, nil
}

func toCard(ac apiCard) (game.Card, error) {
	rank, err := game.ParseRank(ac.Value)
	if err != nil {
		return game.Card{}, err
	}
	suit, err := game.ParseSuit(ac.Suit)
	if err != nil {
		return game.Card{}, err
	}
	return game.Card{Rank: rank, Suit: suit, Image: ac.Image}, nil
}

package bot

import (
	"strings"
	"testing"

	"twentyone/internal/game"
)

func TestDealerView(t *testing.T) {
	dealer := []game.Card{game.NewCard(game.King, game.Hearts), game.NewCard(game.Six, game.Clubs)}

	playing := game.Snapshot{Phase: game.PhasePlaying, DealerCards: dealer}
	if got := joinCards(dealerView(playing)); got != "K♥ "+hiddenCard {
		t.Fatalf("in progress = %q", got)
	}

	done := game.Snapshot{Phase: game.PhaseResolved, DealerCards: dealer}
	if got := joinCards(dealerView(done)); got != "K♥ 6♣" {
		t.Fatalf("resolved = %q", got)
	}
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score    int
		soft     bool
		expected string
	}{
		{17, true, "soft 17"},
		{21, true, "21"},
		{17, false, "17"},
	}
	for _, tt := range tests {
		if got := formatScore(tt.score, tt.soft); got != tt.expected {
			t.Errorf("formatScore(%d, %v) = %q, want %q", tt.score, tt.soft, got, tt.expected)
		}
	}
}

func TestOutcomeText(t *testing.T) {
	tests := []struct {
		snap game.Snapshot
		want string
	}{
		{game.Snapshot{Result: game.ResultPlayerWin, Blackjack: true}, "BLACKJACK"},
		{game.Snapshot{Result: game.ResultPlayerWin, DealerScore: 24}, "Dealer busts"},
		{game.Snapshot{Result: game.ResultPlayerWin, DealerScore: 18}, "You win"},
		{game.Snapshot{Result: game.ResultDealerWin, PlayerScore: 23}, "Bust!"},
		{game.Snapshot{Result: game.ResultDealerWin, PlayerScore: 18}, "Dealer wins"},
		{game.Snapshot{Result: game.ResultPush}, "Push"},
	}
	for _, tt := range tests {
		if got := outcomeText(tt.snap); !strings.Contains(got, tt.want) {
			t.Errorf("outcomeText(%v) = %q, want %q", tt.snap.Result, got, tt.want)
		}
	}
}

func TestFormatWinPercentage(t *testing.T) {
	if got := formatWinPercentage(0, 0); got != "no rounds yet" {
		t.Fatalf("got %q", got)
	}
	if got := formatWinPercentage(1, 4); got != "25% of 4" {
		t.Fatalf("got %q", got)
	}
}

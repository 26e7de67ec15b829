package bot

import (
	"fmt"
	"strings"

	"twentyone/internal/game"
)

const hiddenCard = "🂠"

// cardView pairs a card with whether the table shows it face up.
type cardView struct {
	card   game.Card
	hidden bool
}

func (v cardView) String() string {
	if v.hidden {
		return hiddenCard
	}
	return v.card.String()
}

func faceUp(cards []game.Card) []cardView {
	views := make([]cardView, len(cards))
	for i, c := range cards {
		views[i] = cardView{card: c}
	}
	return views
}

// dealerView hides the dealer's second card until the round is settled.
func dealerView(s game.Snapshot) []cardView {
	views := faceUp(s.DealerCards)
	if s.InProgress() && len(views) > 1 {
		views[1].hidden = true
	}
	return views
}

func joinCards(views []cardView) string {
	parts := make([]string, len(views))
	for i, v := range views {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}

func formatScore(score int, soft bool) string {
	if soft && score < game.BlackjackScore {
		return fmt.Sprintf("soft %d", score)
	}
	return fmt.Sprintf("%d", score)
}

func formatGameStatus(s game.Snapshot) string {
	dealer := joinCards(dealerView(s))
	if !s.InProgress() {
		dealer = fmt.Sprintf("%s (%d)", dealer, s.DealerScore)
	}

	return fmt.Sprintf("🎴 You: %s (%s)\n🃏 Dealer: %s",
		joinCards(faceUp(s.PlayerCards)), formatScore(s.PlayerScore, s.PlayerSoft), dealer)
}

func outcomeText(s game.Snapshot) string {
	switch s.Result {
	case game.ResultPlayerWin:
		if s.Blackjack {
			return "🎰 BLACKJACK! You win!"
		}
		if s.DealerScore > game.BlackjackScore {
			return "💥 Dealer busts. You win!"
		}
		return "🎉 You win!"
	case game.ResultDealerWin:
		if s.PlayerScore > game.BlackjackScore {
			return "💥 Bust! Dealer wins."
		}
		return "😔 Dealer wins."
	case game.ResultPush:
		return "🤝 Push."
	}
	return ""
}

func formatWinPercentage(wins, rounds int) string {
	pct, ok := game.WinPercentage(wins, rounds)
	if !ok {
		return "no rounds yet"
	}
	return fmt.Sprintf("%s of %d", pct, rounds)
}

func formatGameEnd(s game.Snapshot) string {
	return fmt.Sprintf("%s\n\n%s\n📈 Wins: %s",
		formatGameStatus(s), outcomeText(s), formatWinPercentage(s.Stats.Wins, s.Stats.Rounds))
}

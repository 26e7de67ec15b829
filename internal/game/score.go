package game

const (
	// BlackjackScore is the best total a hand can have.
	BlackjackScore = 21

	softAceBonus = 10
)

// CalculateScore counts every Ace as 11 and then demotes Aces to 1, one at a
// time, while the total is over 21. The result does not depend on card order.
func CalculateScore(cards []Card) int {
	score, _ := evaluate(cards)
	return score
}

// evaluate returns the total and how many Aces still count as 11.
func evaluate(cards []Card) (score, softAces int) {
	for _, card := range cards {
		score += card.Value()
		if card.IsAce() {
			softAces++
		}
	}

	for score > BlackjackScore && softAces > 0 {
		score -= softAceBonus
		softAces--
	}

	return score, softAces
}

// IsSoft reports whether an Ace is still counted as 11.
func IsSoft(cards []Card) bool {
	_, soft := evaluate(cards)
	return soft > 0
}

// IsBlackjack is true only for a two-card 21.
func IsBlackjack(cards []Card) bool {
	return len(cards) == 2 && CalculateScore(cards) == BlackjackScore
}

func IsBust(cards []Card) bool {
	return CalculateScore(cards) > BlackjackScore
}

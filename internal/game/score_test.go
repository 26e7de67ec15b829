package game

import "testing"

func cards(ranks ...Rank) []Card {
	out := make([]Card, len(ranks))
	for i, r := range ranks {
		out[i] = NewCard(r, Suits[i%len(Suits)])
	}
	return out
}

func TestCalculateScore(t *testing.T) {
	tests := []struct {
		name     string
		cards    []Card
		expected int
	}{
		{"empty", nil, 0},
		{"pair of tens", cards(Ten, Ten), 20},
		{"face cards", cards(King, Queen), 20},
		{"blackjack", cards(Ace, King), 21},
		{"soft 17", cards(Ace, Six), 17},
		{"two aces", cards(Ace, Ace), 12},
		{"ace demoted", cards(Ace, Ten, Five), 16},
		{"two aces and nine", cards(Ace, Ace, Nine), 21},
		{"four aces", cards(Ace, Ace, Ace, Ace), 14},
		{"bust", cards(King, Queen, Five), 25},
		{"bust with aces", cards(Ace, Ace, King, Queen), 22},
		{"three sevens", cards(Seven, Seven, Seven), 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateScore(tt.cards); got != tt.expected {
				t.Errorf("CalculateScore() = %d, want %d", got, tt.expected)
			}
		})
	}
}

// bestTotal tries every 1/11 choice for the Aces and keeps the best total
// not over 21, or the smallest total when every choice busts.
func bestTotal(hand []Card) int {
	base, aces := 0, 0
	for _, c := range hand {
		if c.IsAce() {
			aces++
			continue
		}
		base += c.Value()
	}

	best, lowest := -1, base+aces
	for high := 0; high <= aces; high++ {
		total := base + aces + high*10
		if total <= BlackjackScore && total > best {
			best = total
		}
	}
	if best < 0 {
		return lowest
	}
	return best
}

func TestCalculateScoreMatchesBestAceChoice(t *testing.T) {
	for _, a := range Ranks {
		for _, b := range Ranks {
			for _, c := range Ranks {
				for aces := 0; aces <= 3; aces++ {
					hand := cards(a, b, c)
					for i := 0; i < aces; i++ {
						hand = append(hand, NewCard(Ace, Hearts))
					}

					want := bestTotal(hand)
					if got := CalculateScore(hand); got != want {
						t.Fatalf("CalculateScore(%v) = %d, want %d", hand, got, want)
					}
					if IsBust(hand) != (want > BlackjackScore) {
						t.Fatalf("IsBust(%v) = %v with total %d", hand, IsBust(hand), want)
					}
				}
			}
		}
	}
}

func TestCalculateScoreIgnoresOrder(t *testing.T) {
	hands := [][]Card{
		cards(Ace, Six, Ten),
		cards(Ace, Ace, Nine, King),
		cards(Two, Three, Four, Five, Six),
		cards(Ace, Seven, Ace, Two),
	}

	for _, hand := range hands {
		want := CalculateScore(hand)
		permute(hand, 0, func(p []Card) {
			if got := CalculateScore(p); got != want {
				t.Fatalf("CalculateScore(%v) = %d, want %d", p, got, want)
			}
		})
	}
}

func permute(c []Card, k int, visit func([]Card)) {
	if k == len(c) {
		visit(c)
		return
	}
	for i := k; i < len(c); i++ {
		c[k], c[i] = c[i], c[k]
		permute(c, k+1, visit)
		c[k], c[i] = c[i], c[k]
	}
}

func TestIsBlackjack(t *testing.T) {
	tests := []struct {
		name     string
		cards    []Card
		expected bool
	}{
		{"ace king", cards(Ace, King), true},
		{"ten ace", cards(Ten, Ace), true},
		{"three sevens", cards(Seven, Seven, Seven), false},
		{"three card 21 with ace", cards(Ace, Five, Five), false},
		{"twenty", cards(King, Queen), false},
		{"single ace", cards(Ace), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlackjack(tt.cards); got != tt.expected {
				t.Errorf("IsBlackjack() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsSoft(t *testing.T) {
	if !IsSoft(cards(Ace, Six)) {
		t.Error("A6 should be soft")
	}
	if IsSoft(cards(Ace, Six, Ten)) {
		t.Error("A6T should be hard")
	}
	if IsSoft(cards(Ten, Seven)) {
		t.Error("T7 should be hard")
	}
}

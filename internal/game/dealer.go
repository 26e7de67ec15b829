package game

import "context"

const DealerStandsOn = 17

// DealerPolicy decides when the dealer stops drawing.
type DealerPolicy struct {
	// StandOn is the lowest total the dealer stands on.
	StandOn int
	// SkipOnPlayerBust stops the dealer from drawing once the player is bust.
	SkipOnPlayerBust bool
}

var DefaultDealerPolicy = DealerPolicy{StandOn: DealerStandsOn}

func (p DealerPolicy) standOn() int {
	if p.StandOn <= 0 {
		return DealerStandsOn
	}
	return p.StandOn
}

// ShouldDraw is one step of the dealer loop. player may be nil.
func (p DealerPolicy) ShouldDraw(dealer, player *Hand) bool {
	if dealer.IsBust() {
		return false
	}
	if p.SkipOnPlayerBust && player != nil && player.IsBust() {
		return false
	}
	return dealer.Score() < p.standOn()
}

// Play draws for the dealer until ShouldDraw says stop.
func (p DealerPolicy) Play(ctx context.Context, dealer, player *Hand, s Supplier) error {
	for p.ShouldDraw(dealer, player) {
		if err := drawInto(ctx, dealer, s); err != nil {
			return err
		}
	}
	return nil
}

// DealerPlay runs the default policy: draw while under 17.
func DealerPlay(ctx context.Context, dealer, player *Hand, s Supplier) error {
	return DefaultDealerPolicy.Play(ctx, dealer, player, s)
}

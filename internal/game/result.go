package game

type Result int

const (
	ResultNone Result = iota
	ResultPlayerWin
	ResultDealerWin
	ResultPush
)

func (r Result) String() string {
	switch r {
	case ResultPlayerWin:
		return "win"
	case ResultDealerWin:
		return "loss"
	case ResultPush:
		return "push"
	}
	return "none"
}

// GetWinner compares final totals from the player's side. A player bust loses
// before the dealer's total is looked at. Two-card 21 earns nothing extra.
func GetWinner(playerTotal, dealerTotal int) Result {
	switch {
	case playerTotal > BlackjackScore:
		return ResultDealerWin
	case dealerTotal > BlackjackScore:
		return ResultPlayerWin
	case playerTotal > dealerTotal:
		return ResultPlayerWin
	case playerTotal < dealerTotal:
		return ResultDealerWin
	default:
		return ResultPush
	}
}

package game

import (
	"fmt"
	"math"
)

// Stats is the running tally of a session.
type Stats struct {
	Rounds int
	Wins   int
	Losses int
	Pushes int
}

// Record counts one resolved round. ResultNone leaves the tally alone.
func (s Stats) Record(r Result) Stats {
	switch r {
	case ResultPlayerWin:
		s.Wins++
	case ResultDealerWin:
		s.Losses++
	case ResultPush:
		s.Pushes++
	default:
		return s
	}
	s.Rounds++
	return s
}

func (s Stats) WinPercentage() (string, bool) {
	return WinPercentage(s.Wins, s.Rounds)
}

// WinPercentage formats wins/rounds as a whole percentage such as "25%".
// It reports false while no round has been played.
func WinPercentage(wins, rounds int) (string, bool) {
	if rounds <= 0 {
		return "", false
	}
	pct := math.Round(float64(wins) / float64(rounds) * 100)
	return fmt.Sprintf("%d%%", int(pct)), true
}

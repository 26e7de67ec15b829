package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"twentyone/internal/game"
)

var (
	dealerColor = color.New(color.FgCyan, color.Bold)
	playerColor = color.New(color.FgYellow, color.Bold)
	winColor    = color.New(color.FgGreen, color.Bold)
	lossColor   = color.New(color.FgRed, color.Bold)
	pushColor   = color.New(color.FgWhite, color.Bold)
	hintColor   = color.New(color.Faint)
)

// Table plays rounds on a terminal, one command per input line.
type Table struct {
	state *game.State
	in    *bufio.Scanner
	out   io.Writer
}

func NewTable(state *game.State, in io.Reader, out io.Writer) *Table {
	return &Table{
		state: state,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Run loops until the player quits or input ends.
func (t *Table) Run(ctx context.Context) error {
	for {
		cmd, ok := t.prompt("[d]eal  [q]uit")
		if !ok {
			return t.in.Err()
		}

		switch cmd {
		case "q", "quit", "exit":
			t.printStats()
			return nil
		case "d", "deal", "":
			if err := t.round(ctx); err != nil {
				return err
			}
		default:
			hintColor.Fprintf(t.out, "unknown command %q\n", cmd)
		}
	}
}

func (t *Table) round(ctx context.Context) error {
	snap, err := t.state.Deal(ctx)
	if err != nil {
		return fmt.Errorf("deal: %w", err)
	}

	for snap.InProgress() {
		t.render(snap)

		cmd, ok := t.prompt("[h]it  [s]tand")
		if !ok {
			return t.in.Err()
		}

		switch cmd {
		case "h", "hit":
			snap, err = t.state.Hit(ctx)
		case "s", "stand":
			snap, err = t.state.Stand(ctx)
		default:
			hintColor.Fprintf(t.out, "unknown command %q\n", cmd)
			continue
		}
		if err != nil {
			return err
		}
	}

	t.render(snap)
	t.printOutcome(snap)

	if err := t.state.Reset(); err != nil && !errors.Is(err, game.ErrRoundInProgress) {
		return err
	}
	return nil
}

func (t *Table) prompt(hint string) (string, bool) {
	hintColor.Fprintf(t.out, "%s > ", hint)
	if !t.in.Scan() {
		fmt.Fprintln(t.out)
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(t.in.Text())), true
}

func (t *Table) render(s game.Snapshot) {
	fmt.Fprintln(t.out, divider())

	dealer := cardsString(s.DealerCards)
	if s.InProgress() && len(s.DealerCards) > 1 {
		dealer = s.DealerCards[0].String() + " ??"
	} else {
		dealer = fmt.Sprintf("%s (%d)", dealer, s.DealerScore)
	}
	dealerColor.Fprint(t.out, "Dealer: ")
	fmt.Fprintln(t.out, dealer)

	score := fmt.Sprintf("%d", s.PlayerScore)
	if s.PlayerSoft && s.PlayerScore < game.BlackjackScore {
		score = "soft " + score
	}
	playerColor.Fprint(t.out, "You:    ")
	fmt.Fprintf(t.out, "%s (%s)\n", cardsString(s.PlayerCards), score)
}

func (t *Table) printOutcome(s game.Snapshot) {
	switch s.Result {
	case game.ResultPlayerWin:
		if s.Blackjack {
			winColor.Fprintln(t.out, "BLACKJACK! You win.")
		} else {
			winColor.Fprintln(t.out, "WIN!")
		}
	case game.ResultDealerWin:
		if s.PlayerScore > game.BlackjackScore {
			lossColor.Fprintln(t.out, "BUST! You lose.")
		} else {
			lossColor.Fprintln(t.out, "LOST!")
		}
	case game.ResultPush:
		pushColor.Fprintln(t.out, "PUSH!")
	}

	if pct, ok := s.Stats.WinPercentage(); ok {
		fmt.Fprintf(t.out, "wins %s\n", pct)
	}
}

func (t *Table) printStats() {
	st := t.state.Stats()
	pct, ok := st.WinPercentage()
	if !ok {
		fmt.Fprintln(t.out, "No rounds played.")
		return
	}
	fmt.Fprintf(t.out, "Rounds: %d  Wins: %d  Losses: %d  Pushes: %d  (%s)\n",
		st.Rounds, st.Wins, st.Losses, st.Pushes, pct)
}

func cardsString(cards []game.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func divider() string {
	width := 40
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && w < width {
		width = w
	}
	return strings.Repeat("─", width)
}

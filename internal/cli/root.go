package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"twentyone/internal/config"
	"twentyone/internal/deck"
	"twentyone/internal/game"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "table",
	Short: "Play blackjack against the dealer",
	Long: `Table deals blackjack rounds in the terminal. Cards come from the
deck-of-cards API unless --local is given.`,
	SilenceUsage: true,
}

var (
	localDeck bool
	deckCount int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Sit down at a table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if localDeck {
			cfg.DeckSource = config.SourceLocal
		}
		if cmd.Flags().Changed("decks") {
			cfg.DeckCount = deckCount
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Dealer stands on %d. %d deck(s), %s.\n",
			cfg.DealerStandsOn, cfg.DeckCount, cfg.DeckSource)

		state := game.NewState(cfg.Supplier(), cfg.DealerPolicy())
		return NewTable(state, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
	},
}

func init() {
	playCmd.Flags().BoolVar(&localDeck, "local", false, "shuffle a local shoe instead of calling the deck API")
	playCmd.Flags().IntVar(&deckCount, "decks", deck.DefaultDecks, "number of decks in the shoe")
	RootCmd.AddCommand(playCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}

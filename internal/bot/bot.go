package bot

import (
	"context"
	"log"

	"twentyone/internal/config"
	"twentyone/internal/game"
	"twentyone/internal/player"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Bot struct {
	api     *tgbotapi.BotAPI
	handler *Handler
}

func New(cfg *config.Config, repo player.Repository) (*Bot, error) {
	if err := cfg.RequireBotToken(); err != nil {
		return nil, err
	}

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}

	policy := cfg.DealerPolicy()
	games := game.NewManager(func() *game.State {
		// every chat draws from its own deck
		return game.NewState(cfg.Supplier(), policy)
	})

	return &Bot{
		api:     api,
		handler: NewHandler(api, cfg, repo, games),
	}, nil
}

// Run polls for updates until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	log.Printf("Bot started: @%s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.handler.Stop()

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			log.Println("Bot stopped")
			return nil

		case update, ok := <-updates:
			if !ok {
				return nil
			}

			if update.CallbackQuery != nil {
				go b.handler.HandleCallback(ctx, update.CallbackQuery)
				continue
			}

			if update.Message != nil {
				go b.handler.HandleMessage(ctx, update.Message)
			}
		}
	}
}

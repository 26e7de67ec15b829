package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"twentyone/internal/config"
	"twentyone/internal/game"
	"twentyone/internal/player"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is the part of *tgbotapi.BotAPI the handler talks to.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Handler struct {
	bot     Sender
	cfg     *config.Config
	players player.Repository
	games   *game.Manager

	mu     sync.Mutex
	timers map[int64]*time.Timer
}

func NewHandler(bot Sender, cfg *config.Config, repo player.Repository, games *game.Manager) *Handler {
	return &Handler{
		bot:     bot,
		cfg:     cfg,
		players: repo,
		games:   games,
		timers:  make(map[int64]*time.Timer),
	}
}

// ============== helpers ==============

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (h *Handler) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}
}

// scheduleReset clears the table a little after a result. A new deal
// cancels a pending reset.
func (h *Handler) scheduleReset(chatID int64, g *game.State) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if t, ok := h.timers[chatID]; ok {
		t.Stop()
	}
	h.timers[chatID] = time.AfterFunc(h.cfg.ResetRoundDelay, func() {
		if err := g.Reset(); err != nil && !errors.Is(err, game.ErrRoundInProgress) {
			log.Printf("Failed to reset table %d: %v", chatID, err)
		}
	})
}

func (h *Handler) cancelReset(chatID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if t, ok := h.timers[chatID]; ok {
		t.Stop()
		delete(h.timers, chatID)
	}
}

// Stop cancels every pending reset.
func (h *Handler) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, t := range h.timers {
		t.Stop()
		delete(h.timers, id)
	}
}

// ============== commands ==============

func (h *Handler) HandleStart(chatID int64) {
	if _, err := h.players.GetOrCreate(chatID); err != nil {
		log.Printf("Failed to load player %d: %v", chatID, err)
		h.send(chatID, "❌ Something went wrong. Try again later.")
		return
	}

	h.send(chatID,
		"🎰 Welcome to Blackjack!\n\n"+
			"/play — deal a round\n"+
			"/stats — your statistics\n"+
			"/top — leaderboard\n"+
			"/help — rules")
}

func (h *Handler) HandleHelp(chatID int64) {
	h.send(chatID,
		"📖 Blackjack rules:\n\n"+
			"🎯 Beat the dealer without going over 21\n\n"+
			"📊 Points:\n"+
			"• 2-10 — face value\n"+
			"• J, Q, K — 10\n"+
			"• A — 11 or 1\n\n"+
			fmt.Sprintf("🃏 Dealer draws to %d\n", h.cfg.DealerStandsOn)+
			"🎰 Blackjack wins like any other 21, a tie is a push")
}

func (h *Handler) HandleStats(chatID int64) {
	p, err := h.players.GetOrCreate(chatID)
	if err != nil {
		log.Printf("Failed to load player %d: %v", chatID, err)
		h.send(chatID, "❌ Something went wrong")
		return
	}

	session := game.Stats{}
	if g := h.games.Get(chatID); g != nil {
		session = g.Stats()
	}

	h.send(chatID, fmt.Sprintf(
		"📊 This session: %s\n\n"+
			"📚 All time:\n"+
			"🎮 Rounds: %d\n"+
			"✅ Wins: %d (%s)\n"+
			"❌ Losses: %d\n"+
			"🤝 Pushes: %d",
		formatWinPercentage(session.Wins, session.Rounds),
		p.Games, p.Wins, formatWinPercentage(p.Wins, p.Games), p.Losses, p.Pushes))
}

func (h *Handler) HandleTop(chatID int64) {
	stats, err := h.players.GetTopByWins(10)
	if err != nil {
		log.Printf("Failed to load leaderboard: %v", err)
		h.send(chatID, "❌ Something went wrong")
		return
	}

	if len(stats) == 0 {
		h.send(chatID, "🏆 Nobody has played yet!")
		return
	}

	var sb strings.Builder
	sb.WriteString("🏆 Top players:\n\n")

	medals := []string{"🥇", "🥈", "🥉"}
	for i, s := range stats {
		medal := fmt.Sprintf("%d.", i+1)
		if i < 3 {
			medal = medals[i]
		}
		sb.WriteString(fmt.Sprintf("%s %d wins | %d rounds (%s)\n",
			medal, s.Wins, s.Games, s.WinRate))
	}

	h.send(chatID, sb.String())
}

func (h *Handler) HandlePlay(ctx context.Context, chatID int64) {
	g := h.games.GetOrCreate(chatID)
	h.cancelReset(chatID)

	snap, err := g.Deal(ctx)
	if errors.Is(err, game.ErrRoundInProgress) {
		h.sendWithKeyboard(chatID, "⏳ Finish this round first\n\n"+formatGameStatus(snap), GameKeyboard())
		return
	}
	if err != nil {
		log.Printf("Deal failed for %d: %v", chatID, err)
		h.send(chatID, "❌ Could not draw a card. Try again.")
		return
	}

	h.show(chatID, g, snap)
}

// ============== callbacks ==============

func (h *Handler) HandleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil {
		h.answerCallback(callback.ID, "")
		return
	}
	chatID := callback.Message.Chat.ID

	switch callback.Data {
	case CallbackDeal:
		h.answerCallback(callback.ID, "")
		h.HandlePlay(ctx, chatID)
		return

	case CallbackStats:
		text := "No rounds yet"
		if g := h.games.Get(chatID); g != nil {
			st := g.Stats()
			if pct, ok := game.WinPercentage(st.Wins, st.Rounds); ok {
				text = "📈 Wins " + pct
			}
		}
		h.answerCallback(callback.ID, text)
		return
	}

	g := h.games.Get(chatID)
	if g == nil || !g.Snapshot().InProgress() {
		h.answerCallback(callback.ID, "No round in progress")
		return
	}

	switch callback.Data {
	case CallbackHit:
		h.handleAction(ctx, chatID, g, g.Hit)
	case CallbackStand:
		h.handleAction(ctx, chatID, g, g.Stand)
	}

	h.answerCallback(callback.ID, "")
}

func (h *Handler) handleAction(ctx context.Context, chatID int64, g *game.State, action func(context.Context) (game.Snapshot, error)) {
	snap, err := action(ctx)
	if errors.Is(err, game.ErrNoRound) || errors.Is(err, game.ErrRoundOver) {
		h.sendWithKeyboard(chatID, "No round in progress", EndGameKeyboard())
		return
	}
	if err != nil {
		log.Printf("Action failed for %d: %v", chatID, err)
		h.sendWithKeyboard(chatID, "❌ Could not draw a card. Try again.\n\n"+formatGameStatus(snap), GameKeyboard())
		return
	}

	h.show(chatID, g, snap)
}

// show renders the table, and for a settled round records it and schedules
// the reset.
func (h *Handler) show(chatID int64, g *game.State, snap game.Snapshot) {
	if snap.InProgress() {
		h.sendWithKeyboard(chatID, formatGameStatus(snap), GameKeyboard())
		return
	}

	h.record(chatID, snap.Result)
	h.sendWithKeyboard(chatID, formatGameEnd(snap), EndGameKeyboard())
	h.scheduleReset(chatID, g)
}

func (h *Handler) record(chatID int64, r game.Result) {
	p, err := h.players.GetOrCreate(chatID)
	if err != nil {
		log.Printf("Failed to load player %d: %v", chatID, err)
		return
	}
	p.Record(r)
	if err := h.players.Save(p); err != nil {
		log.Printf("Failed to save player: %v", err)
	}
}

// ============== messages ==============

func (h *Handler) HandleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	parts := strings.Fields(msg.Text)

	if len(parts) == 0 {
		return
	}

	// commands may carry a bot suffix in groups: /play@somebot
	cmd, _, _ := strings.Cut(strings.ToLower(parts[0]), "@")

	switch cmd {
	case "/start":
		h.HandleStart(chatID)
	case "/help":
		h.HandleHelp(chatID)
	case "/play", "/deal":
		h.HandlePlay(ctx, chatID)
	case "/stats", "/balance":
		h.HandleStats(chatID)
	case "/top":
		h.HandleTop(chatID)
	}
}

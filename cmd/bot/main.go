package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"twentyone/internal/bot"
	"twentyone/internal/config"
	"twentyone/internal/database"
	"twentyone/internal/player"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("Database connected")

	playerRepo := player.NewRepository(db.DB)

	b, err := bot.New(cfg, playerRepo)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Dealing from %s deck (%d decks)", cfg.DeckSource, cfg.DeckCount)

	if err := b.Run(ctx); err != nil {
		log.Fatalf("Bot error: %v", err)
	}
}

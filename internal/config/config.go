package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"twentyone/internal/deck"
	"twentyone/internal/game"
)

const (
	SourceRemote = "remote"
	SourceLocal  = "local"
)

// Config is read in layers: defaults, then the optional TOML file, then the
// environment (including a .env file).
type Config struct {
	BotToken               string        `toml:"bot_token" env:"BOT_TOKEN"`
	DatabasePath           string        `toml:"database_path" env:"DATABASE_PATH"`
	DeckSource             string        `toml:"deck_source" env:"DECK_SOURCE"`
	DeckAPIURL             string        `toml:"deck_api_url" env:"DECK_API_URL"`
	DeckCount              int           `toml:"deck_count" env:"DECK_COUNT"`
	DealerStandsOn         int           `toml:"dealer_stands_on" env:"DEALER_STANDS_ON"`
	DealerSkipOnPlayerBust bool          `toml:"dealer_skip_on_player_bust" env:"DEALER_SKIP_ON_PLAYER_BUST"`
	ResetRoundDelay        time.Duration `toml:"reset_round_delay" env:"RESET_ROUND_DELAY"`
	HTTPTimeout            time.Duration `toml:"http_timeout" env:"HTTP_TIMEOUT"`
}

func Default() *Config {
	return &Config{
		DatabasePath:    "./blackjack.db",
		DeckSource:      SourceRemote,
		DeckAPIURL:      deck.DefaultAPIURL,
		DeckCount:       deck.DefaultDecks,
		DealerStandsOn:  game.DealerStandsOn,
		ResetRoundDelay: 2 * time.Second,
		HTTPTimeout:     10 * time.Second,
	}
}

// FilePath returns CONFIG_FILE, or config.toml under the XDG config home.
func FilePath() string {
	if p := os.Getenv("CONFIG_FILE"); p != "" {
		return p
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "twentyone", "config.toml")
}

func Load() (*Config, error) {
	godotenv.Load()

	cfg := Default()
	if err := cfg.LoadFile(FilePath()); err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile decodes a TOML file over cfg. A missing file is not an error.
func (c *Config) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("error decoding config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.DeckSource != SourceRemote && c.DeckSource != SourceLocal {
		return fmt.Errorf("DECK_SOURCE must be %q or %q, got %q", SourceRemote, SourceLocal, c.DeckSource)
	}
	if c.DeckCount <= 0 {
		return fmt.Errorf("DECK_COUNT must be positive, got %d", c.DeckCount)
	}
	if c.DealerStandsOn < 2 || c.DealerStandsOn > game.BlackjackScore {
		return fmt.Errorf("DEALER_STANDS_ON must be between 2 and 21, got %d", c.DealerStandsOn)
	}
	return nil
}

func (c *Config) RequireBotToken() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is not set")
	}
	return nil
}

func (c *Config) DealerPolicy() game.DealerPolicy {
	return game.DealerPolicy{
		StandOn:          c.DealerStandsOn,
		SkipOnPlayerBust: c.DealerSkipOnPlayerBust,
	}
}

// Supplier builds the card source the config asks for.
func (c *Config) Supplier() game.Supplier {
	if c.DeckSource == SourceLocal {
		return deck.NewShoe(c.DeckCount)
	}
	return deck.NewClient(c.DeckAPIURL, c.DeckCount, c.HTTPTimeout)
}

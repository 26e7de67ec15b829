package player

import (
	"database/sql"
	"errors"
	"fmt"

	"twentyone/internal/game"
)

// Player is the lifetime record of one chat, kept across bot restarts.
type Player struct {
	ChatID int64
	Wins   int
	Losses int
	Pushes int
	Games  int
}

type Stats struct {
	ChatID  int64
	Wins    int
	Games   int
	WinRate string
}

type Repository interface {
	GetOrCreate(chatID int64) (*Player, error)
	Save(player *Player) error
	GetTopByWins(limit int) ([]Stats, error)
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetOrCreate(chatID int64) (*Player, error) {
	player := &Player{ChatID: chatID}

	err := r.db.QueryRow(`
		SELECT wins, losses, pushes, games
		FROM players WHERE chat_id = ?
	`, chatID).Scan(&player.Wins, &player.Losses, &player.Pushes, &player.Games)

	if errors.Is(err, sql.ErrNoRows) {
		_, err = r.db.Exec(`INSERT INTO players (chat_id) VALUES (?)`, chatID)
		if err != nil {
			return nil, fmt.Errorf("failed to create player: %w", err)
		}
		return player, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}

func (r *SQLiteRepository) Save(player *Player) error {
	_, err := r.db.Exec(`
		UPDATE players SET
			wins = ?, losses = ?, pushes = ?, games = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE chat_id = ?
	`, player.Wins, player.Losses, player.Pushes, player.Games, player.ChatID)

	if err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}
	return nil
}

// GetTopByWins ranks players who finished at least one round.
func (r *SQLiteRepository) GetTopByWins(limit int) ([]Stats, error) {
	rows, err := r.db.Query(`
		SELECT chat_id, wins, games
		FROM players
		WHERE games > 0
		ORDER BY wins DESC, games ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load top players: %w", err)
	}
	defer rows.Close()

	var stats []Stats
	for rows.Next() {
		var s Stats
		if err := rows.Scan(&s.ChatID, &s.Wins, &s.Games); err != nil {
			return nil, err
		}
		s.WinRate, _ = game.WinPercentage(s.Wins, s.Games)
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// Record adds one settled round to the lifetime record.
func (p *Player) Record(r game.Result) {
	switch r {
	case game.ResultPlayerWin:
		p.Wins++
	case game.ResultDealerWin:
		p.Losses++
	case game.ResultPush:
		p.Pushes++
	default:
		return
	}
	p.Games++
}

func (p *Player) WinPercentage() (string, bool) {
	return game.WinPercentage(p.Wins, p.Games)
}

package game

import "errors"

var (
	// ErrInvalidCard is returned when a card without a real rank or suit
	// reaches a hand. Such a card must never be scored.
	ErrInvalidCard = errors.New("invalid card")

	ErrRoundInProgress = errors.New("round in progress")
	ErrNoRound         = errors.New("no round in progress")
	ErrRoundOver       = errors.New("round already resolved")
)

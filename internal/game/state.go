package game

import (
	"context"
	"fmt"
	"sync"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseResolved
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseResolved:
		return "resolved"
	}
	return "idle"
}

// Snapshot is a read-only copy of a table, safe to hand to a renderer.
type Snapshot struct {
	Phase       Phase
	PlayerCards []Card
	DealerCards []Card
	PlayerScore int
	DealerScore int
	PlayerSoft  bool
	Blackjack   bool
	Result      Result
	Stats       Stats
}

func (s Snapshot) InProgress() bool {
	return s.Phase == PhasePlaying
}

// State is one player's table: two long-lived hands, the card supplier and
// the session tally. Every action holds the lock for its whole run, so draws
// land in supplier order and never interleave.
type State struct {
	mu       sync.Mutex
	player   *Hand
	dealer   *Hand
	supplier Supplier
	policy   DealerPolicy
	phase    Phase
	result   Result
	stats    Stats
}

func NewState(supplier Supplier, policy DealerPolicy) *State {
	return &State{
		player:   NewHand(),
		dealer:   NewHand(),
		supplier: supplier,
		policy:   policy,
	}
}

// Deal starts a round: player, dealer, player, dealer. A natural blackjack
// stands automatically.
func (s *State) Deal(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhasePlaying {
		return s.snapshot(), ErrRoundInProgress
	}

	s.clear()

	for _, h := range []*Hand{s.player, s.dealer, s.player, s.dealer} {
		if err := drawInto(ctx, h, s.supplier); err != nil {
			s.clear()
			return s.snapshot(), fmt.Errorf("deal: %w", err)
		}
	}
	s.phase = PhasePlaying

	if s.player.HasBlackjack() {
		if err := s.stand(ctx); err != nil {
			return s.snapshot(), err
		}
	}
	return s.snapshot(), nil
}

// Hit gives the player one card. Going bust stands automatically.
func (s *State) Hit(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requirePlaying(); err != nil {
		return s.snapshot(), err
	}

	if err := drawInto(ctx, s.player, s.supplier); err != nil {
		return s.snapshot(), fmt.Errorf("hit: %w", err)
	}

	if s.player.IsBust() {
		if err := s.stand(ctx); err != nil {
			return s.snapshot(), err
		}
	}
	return s.snapshot(), nil
}

// Stand ends the player's turn, plays the dealer out and settles the round.
func (s *State) Stand(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requirePlaying(); err != nil {
		return s.snapshot(), err
	}
	if err := s.stand(ctx); err != nil {
		return s.snapshot(), err
	}
	return s.snapshot(), nil
}

// Reset clears a settled round. A round in play can't be cancelled.
func (s *State) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhasePlaying {
		return ErrRoundInProgress
	}
	s.clear()
	return nil
}

func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *State) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

func (s *State) stand(ctx context.Context) error {
	if err := s.policy.Play(ctx, s.dealer, s.player, s.supplier); err != nil {
		return fmt.Errorf("dealer: %w", err)
	}

	s.result = GetWinner(s.player.Score(), s.dealer.Score())
	s.stats = s.stats.Record(s.result)
	s.phase = PhaseResolved
	return nil
}

func (s *State) requirePlaying() error {
	switch s.phase {
	case PhaseIdle:
		return ErrNoRound
	case PhaseResolved:
		return ErrRoundOver
	}
	return nil
}

func (s *State) clear() {
	s.player.Clear()
	s.dealer.Clear()
	s.result = ResultNone
	s.phase = PhaseIdle
}

func (s *State) snapshot() Snapshot {
	return Snapshot{
		Phase:       s.phase,
		PlayerCards: s.player.Cards(),
		DealerCards: s.dealer.Cards(),
		PlayerScore: s.player.Score(),
		DealerScore: s.dealer.Score(),
		PlayerSoft:  s.player.IsSoft(),
		Blackjack:   s.player.HasBlackjack(),
		Result:      s.result,
		Stats:       s.stats,
	}
}

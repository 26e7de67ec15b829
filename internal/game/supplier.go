package game

import "context"

// Supplier hands out one card per call. Exhaustion and transport failures are
// the supplier's business; the engine passes its errors through untouched.
type Supplier interface {
	Draw(ctx context.Context) (Card, error)
}

// SupplierFunc adapts a function to Supplier.
type SupplierFunc func(ctx context.Context) (Card, error)

func (f SupplierFunc) Draw(ctx context.Context) (Card, error) {
	return f(ctx)
}

// drawInto pulls one card from s into h.
func drawInto(ctx context.Context, h *Hand, s Supplier) error {
	card, err := s.Draw(ctx)
	if err != nil {
		return err
	}
	return h.Draw(card)
}

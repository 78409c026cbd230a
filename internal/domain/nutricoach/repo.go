package nutricoach

import (
	"context"
	"errors"
)

// ErrFruitNotFound is returned when the lookup service knows no fruit by
// the requested name.
var ErrFruitNotFound = errors.New("fruit not found")

type TipRepository interface {
	Create(ctx context.Context, tip *Tip) error
	// ListByUser returns tips newest first, plus the total count.
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Tip, int, error)
}

// TipGenerator produces a coaching message from a prompt. The production
// implementation calls the Gemini API.
type TipGenerator interface {
	GenerateTip(ctx context.Context, prompt string) (string, error)
}

// FruitLookup fetches nutritional facts for a named fruit. The production
// implementation calls the FruityVice API.
type FruitLookup interface {
	Lookup(ctx context.Context, name string) (*Fruit, error)
}

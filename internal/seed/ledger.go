package seed

import "context"

// LedgerRepository records which seed sources have already been applied.
type LedgerRepository interface {
	Applied(ctx context.Context, sourceID string) (bool, error)
	MarkApplied(ctx context.Context, sourceID string) error
}

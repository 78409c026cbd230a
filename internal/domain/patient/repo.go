package patient

import (
	"context"
	"errors"
)

// ErrUnknownUser is returned when no patient row exists for a user ID.
var ErrUnknownUser = errors.New("unknown user")

type Repository interface {
	// InsertAll upserts the given records in a single transaction. Either
	// every record lands or none does.
	InsertAll(ctx context.Context, records []Record) error
	GetByID(ctx context.Context, userID string) (*Record, error)
	AllUserIDs(ctx context.Context) ([]string, error)
	All(ctx context.Context) ([]Record, error)
	// SetCredentials stores the name and password hash written at claim time.
	SetCredentials(ctx context.Context, userID, name, passwordHash string) error
	SetPassword(ctx context.Context, userID, passwordHash string) error
}

package questionnaire

import (
	"context"
	"errors"
)

// ErrNoResponse is returned when a patient has not submitted a
// questionnaire yet.
var ErrNoResponse = errors.New("no questionnaire response")

type Repository interface {
	// Upsert stores the response, replacing any previous one for the user.
	Upsert(ctx context.Context, resp *Response) error
	GetByUserID(ctx context.Context, userID string) (*Response, error)
	HasResponse(ctx context.Context, userID string) (bool, error)
}

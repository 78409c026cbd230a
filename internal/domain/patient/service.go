package patient

import (
	"context"
	"errors"

	"github.com/nutritrack/nutritrack/internal/platform/auth"
)

// MinPasswordLength is the minimum accepted password length for claim and
// password change.
const MinPasswordLength = 8

// Account lifecycle errors. Handlers map these onto HTTP status codes.
var (
	ErrAlreadyClaimed   = errors.New("account already claimed")
	ErrPhoneMismatch    = errors.New("phone number does not match")
	ErrInvalidPassword  = errors.New("password does not meet requirements")
	ErrUnclaimedAccount = errors.New("account has not been claimed")
	ErrWrongPassword    = errors.New("wrong password")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListUserIDs returns every known user ID, numeric IDs first in numeric
// order. This backs the ID picker shown before login.
func (s *Service) ListUserIDs(ctx context.Context) ([]string, error) {
	ids, err := s.repo.AllUserIDs(ctx)
	if err != nil {
		return nil, err
	}
	SortUserIDs(ids)
	return ids, nil
}

func (s *Service) Get(ctx context.Context, userID string) (*Record, error) {
	return s.repo.GetByID(ctx, userID)
}

// Claim turns a pre-seeded, unclaimed record into an account. The caller
// must present the exact phone number stored for the record. Claiming an
// already-claimed account fails regardless of credentials.
func (s *Service) Claim(ctx context.Context, userID, phoneNumber, name, password string) (*Record, error) {
	rec, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if rec.Claimed() {
		return nil, ErrAlreadyClaimed
	}
	if rec.PhoneNumber != phoneNumber {
		return nil, ErrPhoneMismatch
	}
	if len(password) < MinPasswordLength {
		return nil, ErrInvalidPassword
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetCredentials(ctx, userID, name, hash); err != nil {
		return nil, err
	}

	rec.Name = &name
	rec.PasswordHash = &hash
	return rec, nil
}

// Login authenticates a claimed account.
func (s *Service) Login(ctx context.Context, userID, password string) (*Record, error) {
	rec, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !rec.Claimed() {
		return nil, ErrUnclaimedAccount
	}
	if !auth.CheckPassword(*rec.PasswordHash, password) {
		return nil, ErrWrongPassword
	}
	return rec, nil
}

// ChangePassword replaces the password of a claimed account after verifying
// the current one.
func (s *Service) ChangePassword(ctx context.Context, userID, current, next string) error {
	rec, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !rec.Claimed() {
		return ErrUnclaimedAccount
	}
	if !auth.CheckPassword(*rec.PasswordHash, current) {
		return ErrWrongPassword
	}
	if len(next) < MinPasswordLength {
		return ErrInvalidPassword
	}

	hash, err := auth.HashPassword(next)
	if err != nil {
		return err
	}
	return s.repo.SetPassword(ctx, userID, hash)
}

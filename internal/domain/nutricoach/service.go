package nutricoach

import (
	"context"
	"errors"
	"fmt"

	"github.com/nutritrack/nutritrack/internal/domain/patient"
	"github.com/nutritrack/nutritrack/internal/domain/questionnaire"
)

type Service struct {
	tips           TipRepository
	patients       patient.Repository
	questionnaires questionnaire.Repository
	generator      TipGenerator
	fruits         FruitLookup
}

func NewService(tips TipRepository, patients patient.Repository, questionnaires questionnaire.Repository, generator TipGenerator, fruits FruitLookup) *Service {
	return &Service{
		tips:           tips,
		patients:       patients,
		questionnaires: questionnaires,
		generator:      generator,
		fruits:         fruits,
	}
}

// GenerateTip builds a prompt from the user's scores and questionnaire,
// asks the generator for a message, and stores it in the tip history. A
// missing questionnaire is fine; the prompt just omits that section.
func (s *Service) GenerateTip(ctx context.Context, userID string) (*Tip, error) {
	rec, err := s.patients.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	q, err := s.questionnaires.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, questionnaire.ErrNoResponse) {
		return nil, err
	}

	text, err := s.generator.GenerateTip(ctx, buildPrompt(rec, q))
	if err != nil {
		return nil, fmt.Errorf("generate tip: %w", err)
	}

	tip := &Tip{UserID: userID, TipText: text}
	if err := s.tips.Create(ctx, tip); err != nil {
		return nil, err
	}
	return tip, nil
}

// ListTips returns the user's tip history, newest first.
func (s *Service) ListTips(ctx context.Context, userID string, limit, offset int) ([]Tip, int, error) {
	return s.tips.ListByUser(ctx, userID, limit, offset)
}

// FruitInfo looks up nutrition facts for a fruit by name.
func (s *Service) FruitInfo(ctx context.Context, name string) (*Fruit, error) {
	return s.fruits.Lookup(ctx, name)
}

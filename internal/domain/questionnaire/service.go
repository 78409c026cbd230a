package questionnaire

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Submit validates and stores a response, replacing any earlier submission
// by the same user.
func (s *Service) Submit(ctx context.Context, resp *Response) error {
	if len(resp.SelectedFoods) == 0 {
		return fmt.Errorf("at least one food category is required")
	}
	for _, food := range resp.SelectedFoods {
		if !validFood(food) {
			return fmt.Errorf("unknown food category: %s", food)
		}
	}
	if !validPersona(resp.Persona) {
		return fmt.Errorf("unknown persona: %s", resp.Persona)
	}
	for name, v := range map[string]string{
		"meal_time":  resp.MealTime,
		"sleep_time": resp.SleepTime,
		"wake_time":  resp.WakeTime,
	} {
		if !validClockTime(v) {
			return fmt.Errorf("%s must be a valid HH:MM time", name)
		}
	}
	if resp.MealTime == resp.SleepTime || resp.MealTime == resp.WakeTime || resp.SleepTime == resp.WakeTime {
		return fmt.Errorf("meal, sleep and wake times must be distinct")
	}

	return s.repo.Upsert(ctx, resp)
}

func (s *Service) Get(ctx context.Context, userID string) (*Response, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// Completed reports whether the user has submitted a questionnaire. The
// client uses this to route first-time logins into the questionnaire flow.
func (s *Service) Completed(ctx context.Context, userID string) (bool, error) {
	return s.repo.HasResponse(ctx, userID)
}

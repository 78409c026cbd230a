package questionnaire

import (
	"context"
	"testing"
)

type mockRepo struct {
	responses map[string]*Response
	upserts   int
}

func newMockRepo() *mockRepo {
	return &mockRepo{responses: make(map[string]*Response)}
}

func (m *mockRepo) Upsert(_ context.Context, resp *Response) error {
	m.upserts++
	copied := *resp
	m.responses[resp.UserID] = &copied
	return nil
}

func (m *mockRepo) GetByUserID(_ context.Context, userID string) (*Response, error) {
	resp, ok := m.responses[userID]
	if !ok {
		return nil, ErrNoResponse
	}
	copied := *resp
	return &copied, nil
}

func (m *mockRepo) HasResponse(_ context.Context, userID string) (bool, error) {
	_, ok := m.responses[userID]
	return ok, nil
}

func validResponse() *Response {
	return &Response{
		UserID:        "1",
		SelectedFoods: []string{"Fruits", "Vegetables"},
		Persona:       "Balance Seeker",
		MealTime:      "12:30",
		SleepTime:     "23:00",
		WakeTime:      "07:00",
	}
}

func TestSubmit_Valid(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	if err := svc.Submit(context.Background(), validResponse()); err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if repo.upserts != 1 {
		t.Errorf("expected one upsert, got %d", repo.upserts)
	}
}

func TestSubmit_ReplacesPrevious(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	ctx := context.Background()

	first := validResponse()
	if err := svc.Submit(ctx, first); err != nil {
		t.Fatalf("Submit() error: %v", err)
	}

	second := validResponse()
	second.SelectedFoods = []string{"Eggs"}
	second.Persona = "Food Carefree"
	if err := svc.Submit(ctx, second); err != nil {
		t.Fatalf("Submit() error: %v", err)
	}

	got, err := svc.Get(ctx, "1")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Persona != "Food Carefree" {
		t.Errorf("expected replacement to win, got persona %s", got.Persona)
	}
	if len(got.SelectedFoods) != 1 || got.SelectedFoods[0] != "Eggs" {
		t.Errorf("expected foods replaced wholesale, got %v", got.SelectedFoods)
	}
}

func TestSubmit_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Response)
	}{
		{"no foods", func(r *Response) { r.SelectedFoods = nil }},
		{"unknown food", func(r *Response) { r.SelectedFoods = []string{"Pizza"} }},
		{"unknown persona", func(r *Response) { r.Persona = "Gourmet" }},
		{"bad meal time", func(r *Response) { r.MealTime = "25:99" }},
		{"bad sleep time", func(r *Response) { r.SleepTime = "noon" }},
		{"bad wake time", func(r *Response) { r.WakeTime = "" }},
		{"meal equals sleep", func(r *Response) { r.MealTime = r.SleepTime }},
		{"sleep equals wake", func(r *Response) { r.WakeTime = r.SleepTime }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockRepo()
			svc := NewService(repo)
			resp := validResponse()
			tt.mutate(resp)

			if err := svc.Submit(context.Background(), resp); err == nil {
				t.Error("expected validation error")
			}
			if repo.upserts != 0 {
				t.Error("invalid response must not be stored")
			}
		})
	}
}

func TestCompleted(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	ctx := context.Background()

	done, err := svc.Completed(ctx, "1")
	if err != nil {
		t.Fatalf("Completed() error: %v", err)
	}
	if done {
		t.Error("expected not completed before submission")
	}

	if err := svc.Submit(ctx, validResponse()); err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	done, err = svc.Completed(ctx, "1")
	if err != nil {
		t.Fatalf("Completed() error: %v", err)
	}
	if !done {
		t.Error("expected completed after submission")
	}
}

func TestGet_NoResponse(t *testing.T) {
	svc := NewService(newMockRepo())
	if _, err := svc.Get(context.Background(), "1"); err != ErrNoResponse {
		t.Errorf("expected ErrNoResponse, got %v", err)
	}
}

func TestSplitJoinFoods(t *testing.T) {
	foods := []string{"Fruits", "Nuts/Seeds", "Red Meat"}
	joined := JoinFoods(foods)
	if joined != "Fruits,Nuts/Seeds,Red Meat" {
		t.Errorf("unexpected joined form: %s", joined)
	}

	split := SplitFoods(joined)
	if len(split) != 3 || split[1] != "Nuts/Seeds" {
		t.Errorf("unexpected split: %v", split)
	}

	if got := SplitFoods(""); got != nil {
		t.Errorf("empty string must split to nil, got %v", got)
	}
}

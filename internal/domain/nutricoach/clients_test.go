package nutricoach

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGeminiClient_GenerateTip(t *testing.T) {
	var gotBody geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "models/test-model:generateContent") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Error("expected api key in query")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": "Eat more apples!"}}}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := NewGeminiClient("test-key", "test-model").WithBaseURL(srv.URL)
	text, err := client.GenerateTip(context.Background(), "my prompt")
	if err != nil {
		t.Fatalf("GenerateTip() error: %v", err)
	}
	if text != "Eat more apples!" {
		t.Errorf("unexpected tip: %s", text)
	}
	if len(gotBody.Contents) != 1 || gotBody.Contents[0].Parts[0].Text != "my prompt" {
		t.Errorf("prompt not forwarded: %+v", gotBody)
	}
}

func TestGeminiClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewGeminiClient("k", "m").WithBaseURL(srv.URL)
	if _, err := client.GenerateTip(context.Background(), "p"); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestGeminiClient_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	client := NewGeminiClient("k", "m").WithBaseURL(srv.URL)
	if _, err := client.GenerateTip(context.Background(), "p"); err == nil {
		t.Fatal("expected error for empty candidates")
	}
}

func TestFruityViceClient_Lookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/fruit/banana" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"name": "Banana", "family": "Musaceae", "genus": "Musa", "order": "Zingiberales",
			"nutritions": {"calories": 96, "fat": 0.2, "sugar": 17.2, "carbohydrates": 22, "protein": 1}
		}`))
	}))
	defer srv.Close()

	client := NewFruityViceClient(srv.URL)

	// Lookup lowercases the name before calling out.
	fruit, err := client.Lookup(context.Background(), " Banana ")
	if err != nil {
		t.Fatalf("Lookup() error: %v", err)
	}
	if fruit.Name != "Banana" || fruit.Family != "Musaceae" {
		t.Errorf("unexpected fruit: %+v", fruit)
	}
	if fruit.Nutritions.Calories != 96 {
		t.Errorf("unexpected calories: %v", fruit.Nutritions.Calories)
	}
}

func TestFruityViceClient_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewFruityViceClient(srv.URL)
	if _, err := client.Lookup(context.Background(), "dragonglass"); !errors.Is(err, ErrFruitNotFound) {
		t.Errorf("expected ErrFruitNotFound, got %v", err)
	}
}

func TestFruityViceClient_EmptyName(t *testing.T) {
	client := NewFruityViceClient("http://unused.invalid")
	if _, err := client.Lookup(context.Background(), "  "); !errors.Is(err, ErrFruitNotFound) {
		t.Errorf("expected ErrFruitNotFound for blank name, got %v", err)
	}
}

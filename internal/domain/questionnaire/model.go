package questionnaire

import (
	"strings"
	"time"
)

// FoodOptions is the fixed set of food categories a response may select.
var FoodOptions = []string{
	"Fruits", "Vegetables", "Grains", "Red Meat", "Seafood",
	"Poultry", "Fish", "Eggs", "Nuts/Seeds",
}

// Personas is the fixed set of eating personas a response chooses from.
var Personas = []string{
	"Health Devotee", "Mindful Eater", "Wellness Striver",
	"Balance Seeker", "Health Procrastinator", "Food Carefree",
}

// timeLayout is the wall-clock format for meal, sleep and wake times.
const timeLayout = "15:04"

// Response is one patient's food intake questionnaire. Each patient holds at
// most one; resubmitting replaces it wholesale.
type Response struct {
	UserID        string    `json:"user_id"`
	SelectedFoods []string  `json:"selected_foods"`
	Persona       string    `json:"persona"`
	MealTime      string    `json:"meal_time"`
	SleepTime     string    `json:"sleep_time"`
	WakeTime      string    `json:"wake_time"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// JoinFoods flattens the selected foods into the stored comma-separated
// form.
func JoinFoods(foods []string) string {
	return strings.Join(foods, ",")
}

// SplitFoods parses the stored comma-separated form back into a list,
// dropping empty entries.
func SplitFoods(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func validFood(food string) bool {
	for _, f := range FoodOptions {
		if f == food {
			return true
		}
	}
	return false
}

func validPersona(persona string) bool {
	for _, p := range Personas {
		if p == persona {
			return true
		}
	}
	return false
}

func validClockTime(s string) bool {
	_, err := time.Parse(timeLayout, s)
	return err == nil
}

package insights

import "github.com/nutritrack/nutritrack/internal/domain/patient"

// TotalMax is the ceiling of the overall HEIFA score.
const TotalMax = 100.0

// Component is one scored food group with its scale ceiling. Ratio is
// Score/Max clamped to [0, 1] so out-of-range source data never breaks a
// progress display.
type Component struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
	Max   float64 `json:"max"`
	Ratio float64 `json:"ratio"`
}

// Breakdown is a patient's total score plus the fixed, ordered component
// list.
type Breakdown struct {
	Total      Component   `json:"total"`
	Components []Component `json:"components"`
}

// componentScales fixes the display order and per-component maxima.
var componentScales = []struct {
	label string
	max   float64
	score func(patient.Scores) float64
}{
	{"Discretionary", 10, func(s patient.Scores) float64 { return s.Discretionary }},
	{"Vegetables", 10, func(s patient.Scores) float64 { return s.Vegetables }},
	{"Fruits", 10, func(s patient.Scores) float64 { return s.Fruits }},
	{"Grains & Cereals", 5, func(s patient.Scores) float64 { return s.GrainsCereals }},
	{"Whole Grains", 5, func(s patient.Scores) float64 { return s.WholeGrains }},
	{"Meat & Alternatives", 10, func(s patient.Scores) float64 { return s.MeatAlternatives }},
	{"Dairy & Alternatives", 10, func(s patient.Scores) float64 { return s.DairyAlternatives }},
	{"Sodium", 10, func(s patient.Scores) float64 { return s.Sodium }},
	{"Alcohol", 5, func(s patient.Scores) float64 { return s.Alcohol }},
	{"Water", 5, func(s patient.Scores) float64 { return s.Water }},
	{"Sugar", 10, func(s patient.Scores) float64 { return s.Sugar }},
	{"Saturated Fat", 5, func(s patient.Scores) float64 { return s.SaturatedFat }},
	{"Unsaturated Fat", 5, func(s patient.Scores) float64 { return s.UnsaturatedFat }},
}

func newComponent(label string, score, max float64) Component {
	ratio := score / max
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return Component{Label: label, Score: score, Max: max, Ratio: ratio}
}

// NewBreakdown expands a patient's stored scores into the display
// breakdown. The total is reported as imported, not recomputed from the
// components.
func NewBreakdown(scores patient.Scores) *Breakdown {
	components := make([]Component, 0, len(componentScales))
	for _, cs := range componentScales {
		components = append(components, newComponent(cs.label, cs.score(scores), cs.max))
	}
	return &Breakdown{
		Total:      newComponent("Total", scores.HEIFATotal, TotalMax),
		Components: components,
	}
}

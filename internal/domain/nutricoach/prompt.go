package nutricoach

import (
	"fmt"
	"strings"

	"github.com/nutritrack/nutritrack/internal/domain/patient"
	"github.com/nutritrack/nutritrack/internal/domain/questionnaire"
)

// buildPrompt assembles the tip prompt from the patient's scores and, when
// present, their questionnaire answers.
func buildPrompt(rec *patient.Record, q *questionnaire.Response) string {
	var b strings.Builder
	b.WriteString("Generate a short encouraging message to help someone improve their fruit intake.\n\n")
	fmt.Fprintf(&b, "The user is a %s.\n", rec.Sex)
	fmt.Fprintf(&b, "Their total food quality score is %.1f, which represents the Healthy Eating Index for Australian adults (HEIFA) score.\n", rec.Scores.HEIFATotal)
	b.WriteString("Relevant component scores:\n")
	fmt.Fprintf(&b, "- Discretionary: %.1f\n", rec.Scores.Discretionary)
	fmt.Fprintf(&b, "- Vegetables: %.1f\n", rec.Scores.Vegetables)
	fmt.Fprintf(&b, "- Fruits: %.1f\n", rec.Scores.Fruits)
	fmt.Fprintf(&b, "- Grains and cereals: %.1f\n", rec.Scores.GrainsCereals+rec.Scores.WholeGrains)
	fmt.Fprintf(&b, "- Meat and alternatives: %.1f\n", rec.Scores.MeatAlternatives)
	fmt.Fprintf(&b, "- Dairy and alternatives: %.1f\n", rec.Scores.DairyAlternatives)
	fmt.Fprintf(&b, "- Water: %.1f\n", rec.Scores.Water)
	fmt.Fprintf(&b, "- Fat: %.1f\n", rec.Scores.SaturatedFat+rec.Scores.UnsaturatedFat)
	fmt.Fprintf(&b, "- Sodium: %.1f\n", rec.Scores.Sodium)
	fmt.Fprintf(&b, "- Sugar: %.1f\n", rec.Scores.Sugar)
	fmt.Fprintf(&b, "- Alcohol: %.1f\n", rec.Scores.Alcohol)

	if q != nil {
		b.WriteString("\nQuestionnaire data:\n")
		fmt.Fprintf(&b, "- Preferred foods: %s\n", questionnaire.JoinFoods(q.SelectedFoods))
		fmt.Fprintf(&b, "- Selected persona: %s\n", q.Persona)
		fmt.Fprintf(&b, "- Wake-up time: %s\n", q.WakeTime)
		fmt.Fprintf(&b, "- Sleep time: %s\n", q.SleepTime)
		fmt.Fprintf(&b, "- Main meal time: %s\n", q.MealTime)
	}

	b.WriteString("\nUse the data above to make the message relevant and motivating. Make it about 300-350 characters, and can make it colorful by adding some emojis aside.")
	return b.String()
}

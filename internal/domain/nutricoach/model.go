package nutricoach

import (
	"time"

	"github.com/google/uuid"
)

// Tip is one AI-generated coaching message, kept per user as a history.
type Tip struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	TipText   string    `json:"tip_text"`
	CreatedAt time.Time `json:"created_at"`
}

// FruitScoreOptimal is the fruit component score at or above which the
// client skips the fruit lookup flow.
const FruitScoreOptimal = 8.0

// Fruit is the nutritional profile returned by the fruit lookup service.
type Fruit struct {
	Name       string     `json:"name"`
	Family     string     `json:"family"`
	Genus      string     `json:"genus"`
	Order      string     `json:"order"`
	Nutritions Nutritions `json:"nutritions"`
}

type Nutritions struct {
	Calories      float64 `json:"calories"`
	Fat           float64 `json:"fat"`
	Sugar         float64 `json:"sugar"`
	Carbohydrates float64 `json:"carbohydrates"`
	Protein       float64 `json:"protein"`
}

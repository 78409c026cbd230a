package patient

import (
	"sort"
	"strconv"
	"strings"
)

// Sex is the biological sex recorded for a patient in the source dataset.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ParseSex normalises a raw CSV sex value. Anything other than "male"
// (compared case-insensitively) selects the female scoring columns, so it
// maps to SexFemale here as well.
func ParseSex(raw string) Sex {
	if strings.EqualFold(strings.TrimSpace(raw), "Male") {
		return SexMale
	}
	return SexFemale
}

// Scores holds the HEIFA total and per-component scores for one patient.
// The total is stored as imported and is not derived from the components.
type Scores struct {
	HEIFATotal        float64 `json:"heifa_total"`
	Discretionary     float64 `json:"discretionary"`
	Vegetables        float64 `json:"vegetables"`
	Fruits            float64 `json:"fruits"`
	GrainsCereals     float64 `json:"grains_cereals"`
	WholeGrains       float64 `json:"whole_grains"`
	MeatAlternatives  float64 `json:"meat_alternatives"`
	DairyAlternatives float64 `json:"dairy_alternatives"`
	Sodium            float64 `json:"sodium"`
	Alcohol           float64 `json:"alcohol"`
	Water             float64 `json:"water"`
	Sugar             float64 `json:"sugar"`
	SaturatedFat      float64 `json:"saturated_fat"`
	UnsaturatedFat    float64 `json:"unsaturated_fat"`
}

// Record is one patient row. Name and PasswordHash stay nil until the
// account is claimed.
type Record struct {
	UserID       string  `json:"user_id"`
	Name         *string `json:"name"`
	PhoneNumber  string  `json:"-"`
	PasswordHash *string `json:"-"`
	Sex          Sex     `json:"sex"`
	Scores       Scores  `json:"scores"`
}

// Claimed reports whether the account has been taken over by its owner.
// A record is claimed exactly when a password hash is stored.
func (r *Record) Claimed() bool {
	return r.PasswordHash != nil
}

// SortUserIDs orders IDs numerically where possible. Non-numeric IDs sort
// after all numeric ones, alphabetically among themselves.
func SortUserIDs(ids []string) {
	sort.SliceStable(ids, func(i, j int) bool {
		a, aErr := strconv.Atoi(ids[i])
		b, bErr := strconv.Atoi(ids[j])
		switch {
		case aErr == nil && bErr == nil:
			return a < b
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		default:
			return ids[i] < ids[j]
		}
	})
}

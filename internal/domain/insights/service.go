package insights

import (
	"context"

	"github.com/nutritrack/nutritrack/internal/domain/patient"
)

// CohortAverages holds the average total score per sex. A nil average means
// the dataset holds no patients of that sex, which is distinct from an
// average of zero.
type CohortAverages struct {
	Male   *float64 `json:"male"`
	Female *float64 `json:"female"`
}

type Service struct {
	patients patient.Repository
}

func NewService(patients patient.Repository) *Service {
	return &Service{patients: patients}
}

// Breakdown returns the component score breakdown for one patient.
func (s *Service) Breakdown(ctx context.Context, userID string) (*Breakdown, error) {
	rec, err := s.patients.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return NewBreakdown(rec.Scores), nil
}

// Cohort computes the average total score across the whole dataset,
// partitioned by sex.
func (s *Service) Cohort(ctx context.Context) (*CohortAverages, error) {
	records, err := s.patients.All(ctx)
	if err != nil {
		return nil, err
	}

	var maleSum, femaleSum float64
	var maleN, femaleN int
	for _, rec := range records {
		if rec.Sex == patient.SexMale {
			maleSum += rec.Scores.HEIFATotal
			maleN++
		} else {
			femaleSum += rec.Scores.HEIFATotal
			femaleN++
		}
	}

	avg := &CohortAverages{}
	if maleN > 0 {
		v := maleSum / float64(maleN)
		avg.Male = &v
	}
	if femaleN > 0 {
		v := femaleSum / float64(femaleN)
		avg.Female = &v
	}
	return avg, nil
}

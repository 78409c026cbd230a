package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/nutritrack/nutritrack/internal/domain/patient"
)

// SourceCSV is the ledger key for the bundled patient dataset.
const SourceCSV = "csv"

// Seeder performs one-time population of the patient table from a CSV file.
type Seeder struct {
	ledger   LedgerRepository
	patients patient.Repository
	csvPath  string
	logger   zerolog.Logger
}

func NewSeeder(ledger LedgerRepository, patients patient.Repository, csvPath string, logger zerolog.Logger) *Seeder {
	return &Seeder{ledger: ledger, patients: patients, csvPath: csvPath, logger: logger}
}

// SeedIfNeeded imports the dataset unless the ledger says the source was
// already applied. The applied flag is written only after the import
// committed, so a failed run leaves the flag unset and the next start
// retries.
func (s *Seeder) SeedIfNeeded(ctx context.Context, sourceID string) error {
	applied, err := s.ledger.Applied(ctx, sourceID)
	if err != nil {
		return err
	}
	if applied {
		s.logger.Debug().Str("source", sourceID).Msg("seed already applied, skipping")
		return nil
	}

	f, err := os.Open(s.csvPath)
	if err != nil {
		return fmt.Errorf("open seed csv: %w", err)
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return fmt.Errorf("parse seed csv: %w", err)
	}

	if err := s.patients.InsertAll(ctx, records); err != nil {
		return fmt.Errorf("seed patients: %w", err)
	}
	if err := s.ledger.MarkApplied(ctx, sourceID); err != nil {
		return err
	}

	s.logger.Info().Str("source", sourceID).Int("patients", len(records)).Msg("seeded patient dataset")
	return nil
}

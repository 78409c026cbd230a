package seed

import (
	"strings"
	"testing"

	"github.com/nutritrack/nutritrack/internal/domain/patient"
)

// buildCSV assembles a dataset with the full score header. Each row map
// supplies values by column name; unspecified columns default to "0".
func buildCSV(rows ...map[string]string) string {
	header := []string{"User_ID", "PhoneNumber", "Sex"}
	for _, sc := range scoreColumns {
		header = append(header, sc.male, sc.female)
	}

	var b strings.Builder
	b.WriteString(strings.Join(header, ","))
	b.WriteString("\n")
	for _, row := range rows {
		cells := make([]string, len(header))
		for i, col := range header {
			if v, ok := row[col]; ok {
				cells[i] = v
			} else {
				cells[i] = "0"
			}
		}
		b.WriteString(strings.Join(cells, ","))
		b.WriteString("\n")
	}
	return b.String()
}

func TestParse_SexSelectsColumnVariant(t *testing.T) {
	csv := buildCSV(
		map[string]string{
			"User_ID": "1", "PhoneNumber": "61234567", "Sex": "Male",
			"FruitHEIFAscoreMale": "8.5", "FruitHEIFAscoreFemale": "3.2",
			"HEIFAtotalscoreMale": "70", "HEIFAtotalscoreFemale": "50",
		},
		map[string]string{
			"User_ID": "2", "PhoneNumber": "7654321", "Sex": "Female",
			"FruitHEIFAscoreMale": "8.5", "FruitHEIFAscoreFemale": "3.2",
		},
	)

	records, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	male := records[0]
	if male.Sex != patient.SexMale {
		t.Errorf("expected male, got %s", male.Sex)
	}
	if male.Scores.Fruits != 8.5 {
		t.Errorf("male row must read the male column: got %v", male.Scores.Fruits)
	}
	if male.Scores.HEIFATotal != 70 {
		t.Errorf("expected total 70, got %v", male.Scores.HEIFATotal)
	}

	female := records[1]
	if female.Scores.Fruits != 3.2 {
		t.Errorf("female row must read the female column: got %v", female.Scores.Fruits)
	}
}

func TestParse_UnknownSexUsesFemaleColumns(t *testing.T) {
	csv := buildCSV(map[string]string{
		"User_ID": "1", "PhoneNumber": "123", "Sex": "unspecified",
		"WaterHEIFAscoreMale": "5", "WaterHEIFAscoreFemale": "2",
	})

	records, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if records[0].Scores.Water != 2 {
		t.Errorf("unrecognised sex must fall back to female columns, got %v", records[0].Scores.Water)
	}
}

func TestParse_SkipsShortRows(t *testing.T) {
	csv := buildCSV(map[string]string{"User_ID": "1", "PhoneNumber": "123", "Sex": "Male"})
	csv += "2,456,Male\n" // far fewer cells than the header

	records, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected short row to be skipped, got %d records", len(records))
	}
	if records[0].UserID != "1" {
		t.Errorf("expected record 1, got %s", records[0].UserID)
	}
}

func TestParse_UnparsableScoreIsZero(t *testing.T) {
	csv := buildCSV(map[string]string{
		"User_ID": "1", "PhoneNumber": "123", "Sex": "Male",
		"SodiumHEIFAscoreMale": "n/a",
	})

	records, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if records[0].Scores.Sodium != 0 {
		t.Errorf("unparsable cell must read as 0, got %v", records[0].Scores.Sodium)
	}
}

func TestParse_RecordsStartUnclaimed(t *testing.T) {
	csv := buildCSV(map[string]string{"User_ID": "1", "PhoneNumber": "123", "Sex": "Male"})

	records, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if records[0].Claimed() {
		t.Error("imported records must start unclaimed")
	}
	if records[0].Name != nil {
		t.Error("imported records must have no name")
	}
}

func TestParse_MissingRequiredColumnAborts(t *testing.T) {
	// Header without Sex.
	csv := "User_ID,PhoneNumber\n1,123\n"
	_, err := Parse(strings.NewReader(csv))
	if err == nil {
		t.Fatal("expected error for missing Sex column")
	}
	if !strings.Contains(err.Error(), "Sex") {
		t.Errorf("error must name the missing column, got %v", err)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	records, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

package seed

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nutritrack/nutritrack/internal/domain/patient"
)

// scoreColumns maps each score field to its male/female column pair and the
// setter that stores the parsed value on the record.
var scoreColumns = []struct {
	male, female string
	set          func(*patient.Scores, float64)
}{
	{"HEIFAtotalscoreMale", "HEIFAtotalscoreFemale", func(s *patient.Scores, v float64) { s.HEIFATotal = v }},
	{"DiscretionaryHEIFAscoreMale", "DiscretionaryHEIFAscoreFemale", func(s *patient.Scores, v float64) { s.Discretionary = v }},
	{"VegetablesHEIFAscoreMale", "VegetablesHEIFAscoreFemale", func(s *patient.Scores, v float64) { s.Vegetables = v }},
	{"FruitHEIFAscoreMale", "FruitHEIFAscoreFemale", func(s *patient.Scores, v float64) { s.Fruits = v }},
	{"GrainsandcerealsHEIFAscoreMale", "GrainsandcerealsHEIFAscoreFemale", func(s *patient.Scores, v float64) { s.GrainsCereals = v }},
	{"WholegrainsHEIFAscoreMale", "WholegrainsHEIFAscoreFemale", func(s *patient.Scores, v float64) { s.WholeGrains = v }},
	{"MeatandalternativesHEIFAscoreMale", "MeatandalternativesHEIFAscoreFemale", func(s *patient.Scores, v float64) { s.MeatAlternatives = v }},
	{"DairyandalternativesHEIFAscoreMale", "DairyandalternativesHEIFAscoreFemale", func(s *patient.Scores, v float64) { s.DairyAlternatives = v }},
	{"SodiumHEIFAscoreMale", "SodiumHEIFAscoreFemale", func(s *patient.Scores, v float64) { s.Sodium = v }},
	{"AlcoholHEIFAscoreMale", "AlcoholHEIFAscoreFemale", func(s *patient.Scores, v float64) { s.Alcohol = v }},
	{"WaterHEIFAscoreMale", "WaterHEIFAscoreFemale", func(s *patient.Scores, v float64) { s.Water = v }},
	{"SugarHEIFAscoreMale", "SugarHEIFAscoreFemale", func(s *patient.Scores, v float64) { s.Sugar = v }},
	{"SaturatedFatHEIFAscoreMale", "SaturatedFatHEIFAscoreFemale", func(s *patient.Scores, v float64) { s.SaturatedFat = v }},
	{"UnsaturatedFatHEIFAscoreMale", "UnsaturatedFatHEIFAscoreFemale", func(s *patient.Scores, v float64) { s.UnsaturatedFat = v }},
}

// Parse reads the patient dataset from r and returns one unclaimed record
// per valid data row. Rows shorter than the header are skipped. Score cells
// that fail to parse count as 0. Each row reads either the male or the
// female variant of every score column, chosen by that row's Sex value.
func Parse(r io.Reader) ([]patient.Record, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		return nil, nil
	}

	header := splitRow(scanner.Text())

	userIDCol, err := ResolveColumn(header, "User_ID")
	if err != nil {
		return nil, err
	}
	phoneCol, err := ResolveColumn(header, "PhoneNumber")
	if err != nil {
		return nil, err
	}
	sexCol, err := ResolveColumn(header, "Sex")
	if err != nil {
		return nil, err
	}

	type scoreIndex struct {
		male, female int
		set          func(*patient.Scores, float64)
	}
	indexes := make([]scoreIndex, 0, len(scoreColumns))
	for _, sc := range scoreColumns {
		maleIdx, err := ResolveColumn(header, sc.male)
		if err != nil {
			return nil, err
		}
		femaleIdx, err := ResolveColumn(header, sc.female)
		if err != nil {
			return nil, err
		}
		indexes = append(indexes, scoreIndex{male: maleIdx, female: femaleIdx, set: sc.set})
	}

	var records []patient.Record
	for scanner.Scan() {
		values := splitRow(scanner.Text())
		if len(values) < len(header) {
			continue
		}

		sex := patient.ParseSex(values[sexCol])
		rec := patient.Record{
			UserID:      strings.TrimSpace(values[userIDCol]),
			PhoneNumber: strings.TrimSpace(values[phoneCol]),
			Sex:         sex,
		}
		for _, idx := range indexes {
			col := idx.female
			if sex == patient.SexMale {
				col = idx.male
			}
			idx.set(&rec.Scores, parseScore(values[col]))
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return records, nil
}

func splitRow(line string) []string {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseScore(cell string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0
	}
	return v
}

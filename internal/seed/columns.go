package seed

import (
	"fmt"
	"strings"
)

// MissingColumnError reports a header the dataset is required to carry but
// does not. It includes the full header so the operator can see what the
// file actually contained.
type MissingColumnError struct {
	Column string
	Header []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing column: %s (available: %s)", e.Column, strings.Join(e.Header, ", "))
}

// ResolveColumn finds the index of a named column in the header,
// case-insensitively. The first match wins when duplicates exist.
func ResolveColumn(header []string, name string) (int, error) {
	for i, col := range header {
		if strings.EqualFold(col, name) {
			return i, nil
		}
	}
	return 0, &MissingColumnError{Column: name, Header: header}
}

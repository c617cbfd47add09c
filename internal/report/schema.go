package report

import (
	"fmt"
	"strings"

	"sales_analyzer/internal/models"
)

// SchemaError reports required columns absent from an uploaded table.
// It aborts the run before any computation.
type SchemaError struct {
	File    string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s is missing required columns: %s", e.File, strings.Join(e.Missing, ", "))
}

// ValidateSchema checks that every required column is present, collecting
// all absent columns into a single error.
func ValidateSchema(t models.Table, required []string, file string) error {
	var missing []string
	for _, col := range required {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{File: file, Missing: missing}
	}
	return nil
}

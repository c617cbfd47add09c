package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"sales_analyzer/internal/models"
)

// ReadTable parses the first sheet of an xlsx stream into a Table. The
// first row supplies the column names (trimmed; duplicate names keep the
// first occurrence). Rows whose cells are all empty are skipped. Cell
// values stay strings; parsing happens where arithmetic needs it.
func ReadTable(r io.Reader, label string) (models.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return models.Table{}, fmt.Errorf("failed to open %s: %w", label, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return models.Table{}, fmt.Errorf("%s has no sheets", label)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return models.Table{}, fmt.Errorf("failed to read %s: %w", label, err)
	}
	if len(rows) == 0 {
		return models.Table{}, nil
	}

	header := rows[0]
	var table models.Table
	colIndex := make(map[int]string, len(header))
	seen := make(map[string]struct{}, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		colIndex[i] = name
		table.Columns = append(table.Columns, name)
	}

	for _, cells := range rows[1:] {
		row := make(models.Row, len(table.Columns))
		empty := true
		for i, name := range colIndex {
			value := ""
			if i < len(cells) {
				value = cells[i]
			}
			if strings.TrimSpace(value) != "" {
				empty = false
			}
			row[name] = value
		}
		if empty {
			continue
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

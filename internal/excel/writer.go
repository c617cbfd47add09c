package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"sales_analyzer/internal/models"
)

// Content types of the produced artifacts.
const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeCSV  = "text/csv"
)

// Sheet pairs a table with the workbook sheet name it is written under.
type Sheet struct {
	Name  string
	Table models.Table
}

// WriteWorkbook serializes the sheets into a single xlsx workbook, one
// named sheet per table, header row first.
func WriteWorkbook(sheets []Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			// Rename the default sheet rather than leaving it empty.
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return nil, fmt.Errorf("failed to create sheet %s: %w", sheet.Name, err)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return nil, fmt.Errorf("failed to create sheet %s: %w", sheet.Name, err)
			}
		}
		if err := writeSheet(f, sheet.Name, sheet.Table); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, name string, t models.Table) error {
	for col, header := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, cell, header); err != nil {
			return fmt.Errorf("failed to write header on %s: %w", name, err)
		}
	}
	for i, row := range t.Rows {
		for col, header := range t.Columns {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(name, cell, row[header]); err != nil {
				return fmt.Errorf("failed to write row on %s: %w", name, err)
			}
		}
	}
	return nil
}

package excel

import (
	"bytes"
	"strings"
	"testing"

	"sales_analyzer/internal/models"
)

func sampleTable() models.Table {
	return models.Table{
		Columns: []string{"Sr.No", "SKU", "Dis Price", "GP"},
		Rows: []models.Row{
			{"Sr.No": 1, "SKU": "X1", "Dis Price": "1000", "GP": 493.17},
			{"Sr.No": 2, "SKU": "X2", "Dis Price": "500", "GP": 460.0},
		},
	}
}

func TestWriteWorkbookRoundTrip(t *testing.T) {
	data, err := WriteWorkbook([]Sheet{{Name: "Website Orders", Table: sampleTable()}})
	if err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}

	table, err := ReadTable(bytes.NewReader(data), "round trip")
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}

	want := sampleTable()
	if len(table.Columns) != len(want.Columns) {
		t.Fatalf("columns = %v, want %v", table.Columns, want.Columns)
	}
	for i, col := range want.Columns {
		if table.Columns[i] != col {
			t.Fatalf("column %d = %q, want %q", i, table.Columns[i], col)
		}
	}
	if len(table.Rows) != len(want.Rows) {
		t.Fatalf("rows = %d, want %d", len(table.Rows), len(want.Rows))
	}
	// Cells come back as strings regardless of the written type.
	if got := table.Rows[0]["SKU"]; got != "X1" {
		t.Fatalf("SKU = %v, want X1", got)
	}
	if got := table.Rows[1]["Dis Price"]; got != "500" {
		t.Fatalf("Dis Price = %v, want 500", got)
	}
}

func TestWriteWorkbookMultipleSheets(t *testing.T) {
	summary := models.Table{
		Columns: []string{"Product Type", "GP%"},
		Rows:    []models.Row{{"Product Type": "Grand Total", "GP%": "38%"}},
	}

	data, err := WriteWorkbook([]Sheet{
		{Name: "Orders", Table: sampleTable()},
		{Name: "Summary", Table: summary},
	})
	if err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}

	// The reader only looks at the first sheet, so the first table must
	// be the one that comes back.
	table, err := ReadTable(bytes.NewReader(data), "multi sheet")
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if len(table.Rows) != 2 || table.Columns[1] != "SKU" {
		t.Fatalf("first sheet = %v / %d rows, want the orders table", table.Columns, len(table.Rows))
	}
}

func TestReadTableSkipsBlankRowsAndDuplicateHeaders(t *testing.T) {
	src := models.Table{
		Columns: []string{"SKU", "Qty"},
		Rows: []models.Row{
			{"SKU": "X1", "Qty": "1"},
			{"SKU": "", "Qty": ""},
			{"SKU": "X2", "Qty": "3"},
		},
	}
	data, err := WriteWorkbook([]Sheet{{Name: "Orders", Table: src}})
	if err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}

	table, err := ReadTable(bytes.NewReader(data), "orders")
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d, want blank row dropped", len(table.Rows))
	}
}

func TestReadTableRejectsGarbage(t *testing.T) {
	_, err := ReadTable(strings.NewReader("not a workbook"), "order file")
	if err == nil {
		t.Fatal("expected an error for a non-xlsx stream")
	}
	if !strings.Contains(err.Error(), "order file") {
		t.Fatalf("error %q does not name the upload", err)
	}
}

func TestWriteCSV(t *testing.T) {
	data, err := WriteCSV(sampleTable())
	if err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want header plus two rows", len(lines))
	}
	if lines[0] != "Sr.No,SKU,Dis Price,GP" {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != "1,X1,1000,493.17" {
		t.Fatalf("row 1 = %q", lines[1])
	}
	if lines[2] != "2,X2,500,460" {
		t.Fatalf("row 2 = %q", lines[2])
	}
}

func TestWriteCSVEmptyCellsStayEmpty(t *testing.T) {
	table := models.Table{
		Columns: []string{"SKU", "Contact"},
		Rows:    []models.Row{{"SKU": "X1"}},
	}
	data, err := WriteCSV(table)
	if err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if lines[1] != "X1," {
		t.Fatalf("row = %q, want missing cell rendered empty", lines[1])
	}
}

package report

import (
	"testing"

	"sales_analyzer/internal/models"
)

func enrichedRow(category string, price, profit float64) models.Row {
	return models.Row{
		models.ColProductType:  category,
		models.ColSellingPrice: price,
		models.ColGrossProfit:  profit,
	}
}

func TestSummarize_GroupsByCategoryWithGrandTotal(t *testing.T) {
	table := models.Table{
		Columns: []string{models.ColProductType, models.ColSellingPrice, models.ColGrossProfit},
		Rows: []models.Row{
			enrichedRow("Scanners", 1000, 250),
			enrichedRow("Printers", 2000, 1000),
			enrichedRow("Scanners", 1000, 250),
		},
	}

	got := Summarize(table, WebsiteSummaryLabel)

	if len(got.Rows) != 3 {
		t.Fatalf("summary rows = %d, want 2 categories + grand total", len(got.Rows))
	}
	if got.Columns[0] != WebsiteSummaryLabel {
		t.Fatalf("label column = %q, want %q", got.Columns[0], WebsiteSummaryLabel)
	}

	// Categories come out sorted.
	first := got.Rows[0]
	if first[models.ColProductType] != "Printers" {
		t.Fatalf("first category = %v, want Printers", first[models.ColProductType])
	}
	nearlyEqual(t, "Printers price", first[models.ColSellingPrice].(float64), 2000)
	if first[models.ColSummaryPct] != "50%" {
		t.Fatalf("Printers margin = %v, want 50%%", first[models.ColSummaryPct])
	}

	second := got.Rows[1]
	nearlyEqual(t, "Scanners price", second[models.ColSellingPrice].(float64), 2000)
	nearlyEqual(t, "Scanners profit", second[models.ColGrossProfit].(float64), 500)
	if second[models.ColSummaryPct] != "25%" {
		t.Fatalf("Scanners margin = %v, want 25%%", second[models.ColSummaryPct])
	}

	total := got.Rows[2]
	if total[models.ColProductType] != "Grand Total" {
		t.Fatalf("last row = %v, want Grand Total", total[models.ColProductType])
	}
	nearlyEqual(t, "total price", total[models.ColSellingPrice].(float64), 4000)
	nearlyEqual(t, "total profit", total[models.ColGrossProfit].(float64), 1500)
	// 1500/4000 = 37.5% -> 38%. The average of the category margins would
	// be 37.5% too, so use a case where they differ below.
	if total[models.ColSummaryPct] != "38%" {
		t.Fatalf("total margin = %v, want 38%%", total[models.ColSummaryPct])
	}
}

func TestSummarize_GrandTotalIsMarginOfSums(t *testing.T) {
	table := models.Table{
		Columns: []string{models.ColProductType, models.ColSellingPrice, models.ColGrossProfit},
		Rows: []models.Row{
			enrichedRow("A", 100, 90),  // 90%
			enrichedRow("B", 1000, 10), // 1%
		},
	}

	got := Summarize(table, OfficeSummaryLabel)

	// Margin of sums: 100/1100 = 9%. Average of margins would be 46%.
	total := got.Rows[len(got.Rows)-1]
	if total[models.ColSummaryPct] != "9%" {
		t.Fatalf("total margin = %v, want 9%%", total[models.ColSummaryPct])
	}
}

func TestSummarize_ZeroPriceGroupYieldsZeroPercent(t *testing.T) {
	table := models.Table{
		Columns: []string{models.ColProductType, models.ColSellingPrice, models.ColGrossProfit},
		Rows: []models.Row{
			enrichedRow("A", 0, 0),
		},
	}

	got := Summarize(table, WebsiteSummaryLabel)

	for _, row := range got.Rows {
		if row[models.ColSummaryPct] != "0%" {
			t.Fatalf("margin = %v, want 0%% for zero price", row[models.ColSummaryPct])
		}
	}
}

func TestSummarize_EmptyInputYieldsEmptySummary(t *testing.T) {
	got := Summarize(models.Table{}, WebsiteSummaryLabel)

	if len(got.Rows) != 0 || len(got.Columns) != 0 {
		t.Fatalf("summary of empty table = %+v, want empty", got)
	}
}

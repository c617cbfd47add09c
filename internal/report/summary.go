package report

import (
	"math"
	"sort"
	"strconv"

	"sales_analyzer/internal/models"
)

// Summary sheet channel labels, used as the header of the leading empty
// column that tags each summary with its channel.
const (
	WebsiteSummaryLabel = "WEBSITE"
	OfficeSummaryLabel  = "OFFLINE SALES"
)

// Summarize groups enriched rows by product category, sums revenue and
// gross profit per group and appends a Grand Total row. The margin of
// every row, the total included, is its own profit sum over its own
// revenue sum (margin-of-sums, never an average of percentages), rounded
// to the nearest whole percent and rendered with a trailing "%".
//
// An empty input yields an empty summary; no total row is fabricated.
func Summarize(t models.Table, label string) models.Table {
	if t.Empty() {
		return models.Table{}
	}

	type group struct {
		price  float64
		profit float64
	}
	groups := make(map[string]*group)
	var keys []string
	for _, row := range t.Rows {
		category := asString(row[models.ColProductType])
		g, ok := groups[category]
		if !ok {
			g = &group{}
			groups[category] = g
			keys = append(keys, category)
		}
		g.price += numericOrZero(row[models.ColSellingPrice])
		g.profit += numericOrZero(row[models.ColGrossProfit])
	}
	sort.Strings(keys)

	out := models.Table{
		Columns: []string{label, models.ColProductType, models.ColSellingPrice, models.ColGrossProfit, models.ColSummaryPct},
	}

	var totalPrice, totalProfit float64
	for _, key := range keys {
		g := groups[key]
		out.Rows = append(out.Rows, models.Row{
			label:                  "",
			models.ColProductType:  key,
			models.ColSellingPrice: g.price,
			models.ColGrossProfit:  g.profit,
			models.ColSummaryPct:   marginPercent(g.profit, g.price),
		})
		totalPrice += g.price
		totalProfit += g.profit
	}

	out.Rows = append(out.Rows, models.Row{
		label:                  "",
		models.ColProductType:  "Grand Total",
		models.ColSellingPrice: totalPrice,
		models.ColGrossProfit:  totalProfit,
		models.ColSummaryPct:   marginPercent(totalProfit, totalPrice),
	})
	return out
}

// marginPercent formats profit over price as a whole-number percentage,
// guarding a zero price sum.
func marginPercent(profit, price float64) string {
	if price == 0 {
		return "0%"
	}
	return strconv.Itoa(int(math.Round(profit/price*100))) + "%"
}

package report

import (
	"strconv"
	"strings"

	"sales_analyzer/internal/models"
)

// LandingCostNA is the display value of an unresolved landing cost. The
// numeric helper column degrades to 0 so downstream arithmetic never
// fails on a missing cost entry.
const LandingCostNA = "NA"

// UnmatchedPreviewCap bounds how many unresolved SKUs a warning lists
// before truncating.
const UnmatchedPreviewCap = 5

// DedupeCosts collapses the cost table to one landing cost per SKU,
// keeping the first occurrence in input order. Later duplicates are
// dropped.
func DedupeCosts(costs models.Table) map[string]string {
	out := make(map[string]string, len(costs.Rows))
	for _, row := range costs.Rows {
		sku := strings.TrimSpace(asString(row[models.ColSKU]))
		if sku == "" {
			continue
		}
		if _, ok := out[sku]; ok {
			continue
		}
		out[sku] = asString(row[models.ColLandingCost])
	}
	return out
}

// ResolveCosts left-joins the deduped cost map onto the order rows,
// setting the display value and the numeric helper on each row. Rows with
// no cost entry get the NA sentinel and a numeric 0; matched non-numeric
// values keep their display text but also degrade to 0 numerically.
// Returns the unmatched SKUs in first-seen order.
func ResolveCosts(t *models.Table, costs map[string]string) []string {
	seen := make(map[string]struct{})
	var unmatched []string

	for _, row := range t.Rows {
		sku := strings.TrimSpace(asString(row[models.ColSKU]))
		cost, ok := costs[sku]
		if !ok {
			row[models.ColLandingCost] = LandingCostNA
			row[models.ColLandingCostNum] = 0.0
			if _, dup := seen[sku]; !dup {
				seen[sku] = struct{}{}
				unmatched = append(unmatched, sku)
			}
			continue
		}
		row[models.ColLandingCost] = cost
		row[models.ColLandingCostNum] = numericOrZero(cost)
	}

	t.AddColumn(models.ColLandingCost)
	t.AddColumn(models.ColLandingCostNum)
	return unmatched
}

// UnmatchedWarning renders the capped warning text for unresolved SKUs.
// Returns "" when nothing was unmatched.
func UnmatchedWarning(skus []string) string {
	if len(skus) == 0 {
		return ""
	}
	preview := skus
	extra := 0
	if len(preview) > UnmatchedPreviewCap {
		extra = len(preview) - UnmatchedPreviewCap
		preview = preview[:UnmatchedPreviewCap]
	}
	msg := "no landing cost found for SKUs: " + strings.Join(preview, ", ")
	if extra > 0 {
		msg += " and " + strconv.Itoa(extra) + " more"
	}
	return msg
}

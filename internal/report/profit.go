package report

import (
	"sales_analyzer/internal/models"
)

// ComputeProfit derives the profitability columns on every row in place:
// shipping estimate, GST-inclusive selling price, the website channel fee
// where it applies, gross profit and gross profit percentage.
//
// The profit base is the GST-inclusive price by default; the discounted
// variant bases GP and GP % on the raw discounted price instead. The
// channel fee is always a share of the GST-inclusive price, and only
// website orders incur it.
func ComputeProfit(t *models.Table, ch Channel, p Params) {
	for _, row := range t.Rows {
		shipping := EstimateShipping(row[models.ColWeight], p)
		disPrice := numericOrZero(row[models.ColDisPrice])
		selling := disPrice * p.GSTMultiplier

		fee := 0.0
		if ch == ChannelWebsite {
			fee = selling * p.WebsiteFeeRate
			row[models.ColWebsiteCharge] = fee
		}

		base := selling
		if p.ProfitBase == ProfitBaseDiscounted {
			base = disPrice
		}

		landing := numericOrZero(row[models.ColLandingCostNum])
		gp := base - (landing + shipping + fee)

		// Degenerate rows must not fault the percentage.
		pct := 0.0
		if base != 0 {
			pct = gp / base * 100
		}

		row[models.ColShipping] = shipping
		row[models.ColSellingPrice] = selling
		row[models.ColGrossProfit] = gp
		row[models.ColGrossProfitPct] = pct
	}

	t.AddColumn(models.ColShipping)
	t.AddColumn(models.ColSellingPrice)
	if ch == ChannelWebsite {
		t.AddColumn(models.ColWebsiteCharge)
	}
	t.AddColumn(models.ColGrossProfit)
	t.AddColumn(models.ColGrossProfitPct)
}

// EnsureSerialNumbers backfills a leading Sr.No column numbered from 1
// when the ledger did not carry one.
func EnsureSerialNumbers(t *models.Table) {
	if t.HasColumn(models.ColSerialNo) {
		return
	}
	t.Columns = append([]string{models.ColSerialNo}, t.Columns...)
	for i, row := range t.Rows {
		row[models.ColSerialNo] = i + 1
	}
}

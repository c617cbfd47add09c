package report

import (
	"sales_analyzer/internal/models"
)

// Upload labels used in schema error messages.
const (
	OrderFileLabel = "order file"
	CostFileLabel  = "cost file"
)

// Request carries the user's filter and sort selections into a run.
type Request struct {
	Filter   FilterPolicy
	Sources  []string // explicit-subset selection, FilterSubset only
	SortBy   string
	SortDesc bool
}

// ChannelResult is one channel's processed output: the enriched orders in
// their channel column order plus the category summary.
type ChannelResult struct {
	Orders  models.Table
	Summary models.Table
}

// Result is a full pipeline run. A nil channel means no rows landed in
// it; both nil means the user filter matched nothing.
type Result struct {
	Website       *ChannelResult
	Office        *ChannelResult
	UnmatchedSKUs []string
}

// Empty reports whether the run produced no channel output at all.
func (r *Result) Empty() bool {
	return r.Website == nil && r.Office == nil
}

// Run executes the whole pipeline on the two uploaded tables: schema
// check, source-label normalization, user filter, then per channel the
// cost resolution, profitability computation, column projection, optional
// sort and category summary. Deterministic for fixed inputs; no state
// survives the call.
func Run(orders, costs models.Table, req Request, p Params) (*Result, error) {
	if err := ValidateSchema(orders, models.RequiredOrderColumns, OrderFileLabel); err != nil {
		return nil, err
	}
	if err := ValidateSchema(costs, models.RequiredCostColumns, CostFileLabel); err != nil {
		return nil, err
	}

	NormalizeSources(&orders)
	filtered := FilterBySource(orders, req.Filter, req.Sources)
	if filtered.Empty() {
		return &Result{}, nil
	}

	costMap := DedupeCosts(costs)
	res := &Result{}
	seen := make(map[string]struct{})

	website, unmatched := processChannel(filtered, ChannelWebsite, costMap, req, p)
	res.Website = website
	for _, sku := range unmatched {
		if _, ok := seen[sku]; !ok {
			seen[sku] = struct{}{}
			res.UnmatchedSKUs = append(res.UnmatchedSKUs, sku)
		}
	}

	office, unmatched := processChannel(filtered, ChannelOffice, costMap, req, p)
	res.Office = office
	for _, sku := range unmatched {
		if _, ok := seen[sku]; !ok {
			seen[sku] = struct{}{}
			res.UnmatchedSKUs = append(res.UnmatchedSKUs, sku)
		}
	}

	return res, nil
}

// processChannel narrows the filtered rows to one channel and enriches
// them. Returns nil when the channel ends up empty.
func processChannel(filtered models.Table, ch Channel, costs map[string]string, req Request, p Params) (*ChannelResult, []string) {
	var policy FilterPolicy
	var columns []string
	var label string
	if ch == ChannelWebsite {
		policy, columns, label = FilterWebsite, models.WebsiteColumns, WebsiteSummaryLabel
	} else {
		policy, columns, label = FilterOffice, models.OfficeColumns, OfficeSummaryLabel
	}

	sub := FilterBySource(filtered, policy, nil)
	if sub.Empty() {
		return nil, nil
	}
	// Each channel appends its own derived columns; don't share the slice.
	sub.Columns = append([]string(nil), sub.Columns...)

	unmatched := ResolveCosts(&sub, costs)
	ComputeProfit(&sub, ch, p)
	EnsureSerialNumbers(&sub)

	orders := sub.Project(columns)
	SortTable(&orders, req.SortBy, req.SortDesc)

	return &ChannelResult{
		Orders:  orders,
		Summary: Summarize(sub, label),
	}, unmatched
}

package report

import (
	"sort"
	"strings"

	"sales_analyzer/internal/models"
)

// OfficeSources is the closed list of labels treated as office-channel
// orders. The empty string and "nan" cover ledgers whose source cell was
// left blank. This is an enumerated list, not "everything that isn't
// website".
var OfficeSources = []string{
	"", "nan", "Tender", "Direct Sales", "Chat Tawk",
	"Reseller", "Instagram", "Facebook", "India Mart",
	"Just Dial", "Exhibition",
}

var officeSourceSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(OfficeSources))
	for _, s := range OfficeSources {
		set[s] = struct{}{}
	}
	return set
}()

// NormalizeSource converts a source cell to its comparable label form.
func NormalizeSource(v any) string {
	return strings.TrimSpace(asString(v))
}

// IsWebsiteSource reports whether a normalized label names a website
// order. Substring match, case-insensitive.
func IsWebsiteSource(label string) bool {
	return strings.Contains(strings.ToLower(label), "website")
}

// IsOfficeSource reports whether a normalized label is in the enumerated
// office-source list. Exact, case-sensitive match.
func IsOfficeSource(label string) bool {
	_, ok := officeSourceSet[label]
	return ok
}

// NormalizeSources trims the source label on every row in place, so all
// later comparisons and groupings see the cleaned value.
func NormalizeSources(t *models.Table) {
	for _, row := range t.Rows {
		row[models.ColOrderFrom] = NormalizeSource(row[models.ColOrderFrom])
	}
}

// FilterBySource keeps the rows matching the policy. An empty selection
// under FilterSubset yields zero rows, not all rows.
func FilterBySource(t models.Table, policy FilterPolicy, selected []string) models.Table {
	var keep func(label string) bool
	switch policy {
	case FilterWebsite:
		keep = IsWebsiteSource
	case FilterOffice:
		keep = IsOfficeSource
	case FilterSubset:
		set := make(map[string]struct{}, len(selected))
		for _, s := range selected {
			set[strings.TrimSpace(s)] = struct{}{}
		}
		keep = func(label string) bool {
			_, ok := set[label]
			return ok
		}
	default:
		// pass-through
		return t
	}

	out := models.Table{Columns: t.Columns}
	for _, row := range t.Rows {
		if keep(NormalizeSource(row[models.ColOrderFrom])) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

// DistinctSources lists the distinct normalized source labels of a
// ledger, sorted, for the explicit-subset selection UI.
func DistinctSources(t models.Table) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, row := range t.Rows {
		label := NormalizeSource(row[models.ColOrderFrom])
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}

package report

import (
	"sort"

	"sales_analyzer/internal/models"
)

// SortTable orders the rows by the named column, stable, numeric-aware:
// when both cells parse as numbers they compare numerically, otherwise as
// strings. A missing or empty column name leaves the order untouched.
func SortTable(t *models.Table, column string, desc bool) {
	if column == "" || !t.HasColumn(column) {
		return
	}
	sort.SliceStable(t.Rows, func(i, j int) bool {
		if desc {
			i, j = j, i
		}
		return cellLess(t.Rows[i][column], t.Rows[j][column])
	})
}

func cellLess(a, b any) bool {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return af < bf
	}
	return asString(a) < asString(b)
}

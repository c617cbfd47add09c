package models

// Column names of the uploaded order ledger.
const (
	ColSerialNo      = "Sr.No"
	ColModelName     = "Model Name"
	ColSKU           = "SKU"
	ColProductType   = "Product Type"
	ColBrand         = "Brand Company"
	ColQRCode        = "QR Code"
	ColWeight        = "Weight(KG)"
	ColOrderFrom     = "Order From"
	ColOrderID       = "Order Id"
	ColQty           = "Qty"
	ColDisPrice      = "Dis Price"
	ColDate          = "Date"
	ColContact       = "Contact"
	ColEmail         = "Email"
	ColShippingState = "Shipping State"
	ColSalesPerson   = "Sales Person"
)

// Columns of the uploaded cost table and of the derived output.
const (
	ColLandingCost    = "Landing Cost GST"
	ColLandingCostNum = "Landing Cost GST Num" // internal numeric helper, never exported
	ColShipping       = "Shipping"
	ColSellingPrice   = "Selling Price with gst"
	ColWebsiteCharge  = "Website charge"
	ColGrossProfit    = "GP"
	ColGrossProfitPct = "GP %"
	ColSummaryPct     = "GP%"
)

// Row maps a column name to its cell value. Values read from a sheet are
// strings; derived columns hold float64 or int values.
type Row map[string]any

// Table is an ordered set of columns plus the rows holding their values.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn appends a column to the ordered list if not already present.
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}

// Project returns a copy of the table restricted to the given columns,
// in the given order, skipping columns the table does not have.
func (t *Table) Project(columns []string) Table {
	kept := make([]string, 0, len(columns))
	for _, c := range columns {
		if t.HasColumn(c) {
			kept = append(kept, c)
		}
	}

	rows := make([]Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		row := make(Row, len(kept))
		for _, c := range kept {
			row[c] = r[c]
		}
		rows = append(rows, row)
	}
	return Table{Columns: kept, Rows: rows}
}

// Website and office output column orders. The projection keeps only the
// columns actually present in the processed table.
var (
	WebsiteColumns = []string{
		ColSerialNo, ColModelName, ColSKU, ColProductType, ColBrand, ColQRCode,
		ColWeight, ColOrderFrom, ColOrderID, ColQty, ColDisPrice, ColDate,
		ColLandingCost, ColShipping, ColWebsiteCharge,
		ColSellingPrice, ColGrossProfit, ColGrossProfitPct,
	}

	OfficeColumns = []string{
		ColSerialNo, ColModelName, ColSKU, ColProductType, ColBrand, ColQRCode,
		ColWeight, ColOrderFrom, ColOrderID, ColQty, ColDisPrice, ColDate,
		ColContact, ColEmail, ColShippingState, ColSalesPerson,
		ColLandingCost, ColShipping, ColSellingPrice, ColGrossProfit, ColGrossProfitPct,
	}
)

// Required upload schemas. A missing column aborts the run with a schema
// error naming the file and the absent columns.
var (
	RequiredOrderColumns = []string{ColOrderFrom, ColSKU, ColWeight, ColDisPrice}
	RequiredCostColumns  = []string{ColSKU, ColLandingCost}
)

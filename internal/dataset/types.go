package dataset

import "time"

// Column names expected in the input tables. Header matching is
// case-insensitive and ignores surrounding whitespace.
const (
	ColPropertyID = "gnaf_pid"
	ColMeshBlock  = "mb_2016_code"
	ColPrice      = "price"
	ColSaleDate   = "date_sold"
)

// PropertyRecord maps a property identifier to the ABS mesh block
// containing the property
type PropertyRecord struct {
	PropertyID string
	MeshBlock  string
}

// Transaction is a single recorded sale of a property
type Transaction struct {
	PropertyID string
	Price      float64
	SaleDate   time.Time
}

// Year returns the calendar year the sale occurred in
func (t Transaction) Year() int {
	return t.SaleDate.Year()
}

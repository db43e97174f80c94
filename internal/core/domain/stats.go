package domain

// CategoryCount is one bar of the hot-categories chart.
type CategoryCount struct {
	Name  string
	Count int
}

// PriceBucket is one bar of the price-distribution chart.
type PriceBucket struct {
	Label string
	Count int
}

type StatusCount struct {
	Status int `json:"status"`
	Count  int `json:"count"`
}

// TableStats is the diagnostic snapshot: row counts per table plus the
// product status histogram.
type TableStats struct {
	RowCounts     map[string]int
	ProductStatus []StatusCount
}

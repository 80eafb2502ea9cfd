package domain

// ExportRow is a single row in the full-data export.
// It is a flat, denormalized view: one row per restaurant, with visit fields
// zero-valued for restaurants that have not been visited yet.
//
// Dates are pre-formatted as "2006-01-02" strings so callers writing CSV do
// not need to know the storage format.
type ExportRow struct {
	// Restaurant fields, always populated.
	RestaurantID int64
	Name         string
	Location     string
	Country      string
	PriceRange   int
	CuisineType  string

	// Visit fields, zero values when the restaurant has no visit.
	VisitDate   string
	Rating      int
	MealType    string
	TotalCost   *float64
	WouldReturn bool
	Visited     bool
}

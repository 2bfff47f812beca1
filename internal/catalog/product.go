package catalog

// Product is a catalog item. The core never mutates products; they are
// seeded at migration time and administered out of band.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

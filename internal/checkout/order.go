package checkout

import "time"

// Order is immutable once created. Total captures the cart snapshot at
// checkout time; later price changes never touch it.
type Order struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

// PricedLine is a cart line joined with the product's current price,
// as loaded at the start of checkout.
type PricedLine struct {
	ProductID int64
	Quantity  int32
	UnitPrice float64
}

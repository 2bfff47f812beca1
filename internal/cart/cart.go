package cart

// Line is one (user, product, quantity) record pending purchase.
// A user may hold several lines for the same product; lines are never
// merged on insert, they accumulate.
type Line struct {
	ID        int64 `json:"id"`
	UserID    int64 `json:"user_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int32 `json:"quantity"`
}

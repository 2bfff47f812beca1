package checkout

import (
	"context"
	"fmt"

	"github.com/Sharanupriya/GrocerDash/internal/logger"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// PlaceOrder converts the user's current cart into a persisted order:
// load priced lines, refuse an empty cart, total them, then atomically
// insert the order and clear the cart. The total is fixed at call time;
// later price changes never affect a placed order.
func (s *Service) PlaceOrder(ctx context.Context, userID int64) (*Order, error) {
	lines, err := s.repo.PricedLines(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart for checkout: %w", err)
	}

	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	var total float64
	for _, l := range lines {
		total += float64(l.Quantity) * l.UnitPrice
	}

	order, err := s.repo.CreateOrderAndClearCart(ctx, userID, total)
	if err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}

	logger.Info("order placed", map[string]any{
		"order_id": order.ID,
		"user_id":  userID,
		"lines":    len(lines),
		"total":    order.Total,
	})

	return order, nil
}

// ListOrders returns the user's order history, newest first.
func (s *Service) ListOrders(ctx context.Context, userID int64) ([]Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

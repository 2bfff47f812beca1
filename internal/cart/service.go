package cart

import (
	"context"
	"errors"

	"github.com/Sharanupriya/GrocerDash/internal/catalog"
)

var (
	ErrInvalidProduct  = errors.New("product id must be positive")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// ProductCatalog is the read-only slice of the catalog the cart needs.
type ProductCatalog interface {
	ByIDs(ctx context.Context, ids []int64) ([]catalog.Product, error)
}

type Service struct {
	repo    Repository
	catalog ProductCatalog
}

func NewService(repo Repository, catalog ProductCatalog) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// AddToCart inserts a new line. It never merges with an existing line
// for the same product; repeated adds accumulate as separate rows.
func (s *Service) AddToCart(
	ctx context.Context,
	userID int64,
	productID int64,
	quantity int32,
) (Line, error) {

	if productID <= 0 {
		return Line{}, ErrInvalidProduct
	}
	if quantity < 1 {
		return Line{}, ErrInvalidQuantity
	}

	return s.repo.Insert(ctx, Line{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	})
}

// ViewCart returns the user's raw lines plus the distinct products they
// reference, to be paired by the caller. No subtotal is computed here;
// totals belong to checkout.
func (s *Service) ViewCart(
	ctx context.Context,
	userID int64,
) ([]Line, []catalog.Product, error) {

	lines, err := s.repo.LinesForUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if len(lines) == 0 {
		return lines, nil, nil
	}

	seen := make(map[int64]struct{}, len(lines))
	ids := make([]int64, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.ProductID]; ok {
			continue
		}
		seen[l.ProductID] = struct{}{}
		ids = append(ids, l.ProductID)
	}

	products, err := s.catalog.ByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	return lines, products, nil
}

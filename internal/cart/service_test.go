package cart

import (
	"context"
	"testing"

	"github.com/Sharanupriya/GrocerDash/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCart_InsertsLine(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo, &mockCatalog{})

	line, err := svc.AddToCart(context.Background(), 1, 5, 2)
	require.NoError(t, err)

	assert.Equal(t, int64(1), line.UserID)
	assert.Equal(t, int64(5), line.ProductID)
	assert.Equal(t, int32(2), line.Quantity)
	assert.NotZero(t, line.ID)
}

func TestAddToCart_DuplicateLinesAccumulate(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo, &mockCatalog{})
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, 1, 5, 2)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, 1, 5, 3)
	require.NoError(t, err)

	// same product twice stays two rows, never a merged quantity
	require.Len(t, repo.inserted, 2)
	assert.Equal(t, int32(2), repo.inserted[0].Quantity)
	assert.Equal(t, int32(3), repo.inserted[1].Quantity)
}

func TestAddToCart_Validation(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo, &mockCatalog{})
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, 1, 0, 2)
	assert.ErrorIs(t, err, ErrInvalidProduct)

	_, err = svc.AddToCart(ctx, 1, 5, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	assert.Empty(t, repo.inserted, "invalid input must not reach the repository")
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	repo := &mockRepository{insertErr: ErrUnknownProduct}
	svc := NewService(repo, &mockCatalog{})

	_, err := svc.AddToCart(context.Background(), 1, 999, 1)
	assert.ErrorIs(t, err, ErrUnknownProduct)
}

func TestViewCart_ReturnsLinesAndDistinctProducts(t *testing.T) {
	repo := &mockRepository{
		lines: []Line{
			{ID: 1, UserID: 1, ProductID: 10, Quantity: 2},
			{ID: 2, UserID: 1, ProductID: 20, Quantity: 1},
			{ID: 3, UserID: 1, ProductID: 10, Quantity: 4},
			{ID: 4, UserID: 2, ProductID: 30, Quantity: 1},
		},
	}
	cat := &mockCatalog{products: map[int64]catalog.Product{
		10: {ID: 10, Name: "Apple", Price: 150.00},
		20: {ID: 20, Name: "Banana", Price: 40.00},
		30: {ID: 30, Name: "Milk", Price: 55.00},
	}}
	svc := NewService(repo, cat)

	lines, products, err := svc.ViewCart(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, lines, 3, "only user 1's lines")
	require.Len(t, products, 2, "duplicate product references collapse")

	require.Len(t, cat.calls, 1)
	assert.Equal(t, []int64{10, 20}, cat.calls[0])
}

func TestViewCart_Empty(t *testing.T) {
	repo := &mockRepository{}
	cat := &mockCatalog{}
	svc := NewService(repo, cat)

	lines, products, err := svc.ViewCart(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.Empty(t, products)
	assert.Empty(t, cat.calls, "no catalog lookup for an empty cart")
}

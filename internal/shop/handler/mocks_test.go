package handler

import (
	"context"

	"github.com/Sharanupriya/GrocerDash/internal/cart"
	"github.com/Sharanupriya/GrocerDash/internal/catalog"
	"github.com/Sharanupriya/GrocerDash/internal/checkout"
)

type stubCatalog struct {
	products []catalog.Product
	err      error
}

func (s *stubCatalog) List(ctx context.Context) ([]catalog.Product, error) {
	return s.products, s.err
}

type stubCart struct {
	line     cart.Line
	lines    []cart.Line
	products []catalog.Product
	err      error

	addCalls int
}

func (s *stubCart) AddToCart(ctx context.Context, userID, productID int64, quantity int32) (cart.Line, error) {
	s.addCalls++
	if s.err != nil {
		return cart.Line{}, s.err
	}
	return s.line, nil
}

func (s *stubCart) ViewCart(ctx context.Context, userID int64) ([]cart.Line, []catalog.Product, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	return s.lines, s.products, nil
}

type stubCheckout struct {
	order  *checkout.Order
	orders []checkout.Order
	err    error

	placeCalls int
}

func (s *stubCheckout) PlaceOrder(ctx context.Context, userID int64) (*checkout.Order, error) {
	s.placeCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.order, nil
}

func (s *stubCheckout) ListOrders(ctx context.Context, userID int64) ([]checkout.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.orders, nil
}

package checkout

import (
	"context"
	"time"
)

type mockRepository struct {
	lines      []PricedLine
	linesErr   error
	createErr  error
	nextID     int64
	created    []*Order
	clearedFor []int64
	orders     []Order
}

func (m *mockRepository) PricedLines(ctx context.Context, userID int64) ([]PricedLine, error) {
	if m.linesErr != nil {
		return nil, m.linesErr
	}
	return m.lines, nil
}

func (m *mockRepository) CreateOrderAndClearCart(
	ctx context.Context,
	userID int64,
	total float64,
) (*Order, error) {
	if m.createErr != nil {
		// atomic contract: on failure neither the order nor the
		// cart wipe is visible
		return nil, m.createErr
	}
	m.nextID++
	order := &Order{
		ID:        m.nextID,
		UserID:    userID,
		Total:     total,
		CreatedAt: time.Now(),
	}
	m.created = append(m.created, order)
	m.clearedFor = append(m.clearedFor, userID)
	m.lines = nil
	return order, nil
}

func (m *mockRepository) ListByUser(ctx context.Context, userID int64) ([]Order, error) {
	return m.orders, nil
}

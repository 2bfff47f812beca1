package cart

import (
	"context"

	"github.com/Sharanupriya/GrocerDash/internal/catalog"
)

type mockRepository struct {
	lines     []Line
	insertErr error
	nextID    int64
	inserted  []Line
}

func (m *mockRepository) Insert(ctx context.Context, line Line) (Line, error) {
	if m.insertErr != nil {
		return Line{}, m.insertErr
	}
	m.nextID++
	line.ID = m.nextID
	m.inserted = append(m.inserted, line)
	m.lines = append(m.lines, line)
	return line, nil
}

func (m *mockRepository) LinesForUser(ctx context.Context, userID int64) ([]Line, error) {
	var out []Line
	for _, l := range m.lines {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

type mockCatalog struct {
	products map[int64]catalog.Product
	calls    [][]int64
}

func (m *mockCatalog) ByIDs(ctx context.Context, ids []int64) ([]catalog.Product, error) {
	m.calls = append(m.calls, ids)
	var out []catalog.Product
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

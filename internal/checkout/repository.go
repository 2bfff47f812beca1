package checkout

import (
	"context"
	"fmt"

	"github.com/Sharanupriya/GrocerDash/internal/db"
)

// Repository is the storage contract for checkout. The order insert and
// the cart wipe must be atomic: implementations either commit both or
// leave neither visible.
type Repository interface {
	PricedLines(ctx context.Context, userID int64) ([]PricedLine, error)
	CreateOrderAndClearCart(ctx context.Context, userID int64, total float64) (*Order, error)
	ListByUser(ctx context.Context, userID int64) ([]Order, error)
}

type PostgresRepository struct {
	db *db.DB
}

func NewPostgresRepository(db *db.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) PricedLines(ctx context.Context, userID int64) ([]PricedLine, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT ci.product_id, ci.quantity, p.price
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.user_id = $1
		ORDER BY ci.id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query priced cart lines: %w", err)
	}
	defer rows.Close()

	var lines []PricedLine
	for rows.Next() {
		var l PricedLine
		if err := rows.Scan(&l.ProductID, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan priced line: %w", err)
		}
		lines = append(lines, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return lines, nil
}

// CreateOrderAndClearCart wraps the order insert and the cart deletion
// in one transaction. Any failure rolls back both.
func (r *PostgresRepository) CreateOrderAndClearCart(
	ctx context.Context,
	userID int64,
	total float64,
) (*Order, error) {

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin checkout tx: %w", err)
	}
	defer tx.Rollback()

	order := &Order{
		UserID: userID,
		Total:  total,
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, total, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`, userID, total).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM cart_items WHERE user_id = $1
	`, userID); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit checkout tx: %w", err)
	}

	return order, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, total, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query orders by user: %w", err)
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Total, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return orders, nil
}

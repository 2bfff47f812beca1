package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sharanupriya/GrocerDash/internal/db"

	"github.com/lib/pq"
)

var ErrUnknownProduct = errors.New("product does not exist")

// Repository persists cart lines.
type Repository interface {
	Insert(ctx context.Context, line Line) (Line, error)
	LinesForUser(ctx context.Context, userID int64) ([]Line, error)
}

type PostgresRepository struct {
	db *db.DB
}

func NewPostgresRepository(db *db.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, line Line) (Line, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id
	`, line.UserID, line.ProductID, line.Quantity).Scan(&line.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return Line{}, ErrUnknownProduct
		}
		return Line{}, fmt.Errorf("insert cart line: %w", err)
	}

	return line, nil
}

func (r *PostgresRepository) LinesForUser(ctx context.Context, userID int64) ([]Line, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, product_id, quantity
		FROM cart_items
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query cart lines: %w", err)
	}
	defer rows.Close()

	var lines []Line
	for rows.Next() {
		var l Line
		if err := rows.Scan(&l.ID, &l.UserID, &l.ProductID, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan cart line: %w", err)
		}
		lines = append(lines, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return lines, nil
}

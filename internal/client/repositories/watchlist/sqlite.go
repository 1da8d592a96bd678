package watchlist

import (
	"context"
	"fmt"

	"github.com/onkmade/secondhand/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

var _ Repository = (*SQLiteRepository)(nil)

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) IsWatched(ctx context.Context, productID string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM watchlist WHERE product_id = ?`, productID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check watchlist[%s]: %w", productID, err)
	}
	return n > 0, nil
}

func (r *SQLiteRepository) Add(ctx context.Context, productID string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO watchlist (product_id) VALUES (?)
		ON CONFLICT(product_id) DO NOTHING
	`, productID)
	if err != nil {
		return fmt.Errorf("failed to add watchlist[%s]: %w", productID, err)
	}
	return nil
}

func (r *SQLiteRepository) Remove(ctx context.Context, productID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM watchlist WHERE product_id = ?`, productID)
	if err != nil {
		return fmt.Errorf("failed to remove watchlist[%s]: %w", productID, err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT product_id FROM watchlist ORDER BY added_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list watchlist: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan watchlist row: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate watchlist rows: %w", err)
	}

	return ids, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM watchlist`)
	if err != nil {
		return fmt.Errorf("failed to clear watchlist: %w", err)
	}
	return nil
}

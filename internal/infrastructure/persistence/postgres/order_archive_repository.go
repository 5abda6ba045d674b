package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/KishoreVB70/icp-marketplace/internal/domain/order"
)

// OrderArchiveRepository is the durable copy of committed orders, written by
// the archiver from the event stream. Upserts by id, so replayed events are
// harmless.
type OrderArchiveRepository struct {
	pool *pgxpool.Pool
}

func NewOrderArchiveRepository(pool *pgxpool.Pool) *OrderArchiveRepository {
	return &OrderArchiveRepository{pool: pool}
}

func (r *OrderArchiveRepository) Archive(ctx context.Context, o *domain.Order) error {
	if o == nil {
		return fmt.Errorf("order is nil")
	}

	const query = `
		INSERT INTO order_archive (id, product_id, price, status, seller, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET product_id = EXCLUDED.product_id,
			price = EXCLUDED.price,
			status = EXCLUDED.status,
			seller = EXCLUDED.seller,
			created_at = EXCLUDED.created_at;
	`

	if err := r.ensureTable(ctx); err != nil {
		return err
	}

	_, err := r.pool.Exec(ctx, query,
		o.ID,
		o.ProductID,
		int64(o.Price),
		string(o.Status),
		o.Seller,
		o.CreatedAt,
	)
	return err
}

func (r *OrderArchiveRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	const query = `
		SELECT id, product_id, price, status, seller, created_at
		FROM order_archive
		WHERE id = $1;
	`
	var (
		o     domain.Order
		price int64
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID,
		&o.ProductID,
		&price,
		&o.Status,
		&o.Seller,
		&o.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	o.Price = uint64(price)
	return &o, nil
}

func (r *OrderArchiveRepository) ensureTable(ctx context.Context) error {
	const stmt = `
		CREATE TABLE IF NOT EXISTS order_archive (
			id TEXT PRIMARY KEY,
			product_id TEXT NOT NULL,
			price BIGINT NOT NULL,
			status TEXT NOT NULL,
			seller TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
	`
	_, err := r.pool.Exec(ctx, stmt)
	return err
}

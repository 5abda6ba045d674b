package repository

import (
	"context"

	"github.com/KishoreVB70/icp-marketplace/internal/domain/order"
)

// OrderRepository is the order KV table. Orders are append-only in this
// system: no update or delete.
type OrderRepository interface {
	List(ctx context.Context) ([]*order.Order, error)
	Save(ctx context.Context, o *order.Order) error
}

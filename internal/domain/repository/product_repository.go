package repository

import (
	"context"

	"github.com/KishoreVB70/icp-marketplace/internal/domain/product"
)

// ProductRepository is the product KV table. FindByID and Remove return
// product.ErrNotFound when the id is absent; Remove hands back the removed
// record.
type ProductRepository interface {
	List(ctx context.Context) ([]*product.Product, error)
	FindByID(ctx context.Context, id string) (*product.Product, error)
	Save(ctx context.Context, p *product.Product) error
	Remove(ctx context.Context, id string) (*product.Product, error)
}

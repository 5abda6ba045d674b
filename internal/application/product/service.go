package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domain "github.com/KishoreVB70/icp-marketplace/internal/domain/product"
	"github.com/KishoreVB70/icp-marketplace/internal/domain/repository"
)

// Service owns the product lifecycle. Payload fields are accepted largely
// as-is; the seller is always the calling identity, never client input.
type Service struct {
	repo repository.ProductRepository
}

func NewService(repo repository.ProductRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, seller string, payload domain.Payload) (*domain.Product, error) {
	p := domain.New(uuid.NewString(), seller, payload)
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}
	return p, nil
}

// Update merges the patch over the stored record. NotFound propagates and
// the store is left untouched.
func (s *Service) Update(ctx context.Context, id string, patch domain.Patch) (*domain.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(p)

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}
	return p, nil
}

// Delete removes the product and returns its prior value.
func (s *Service) Delete(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.Remove(ctx, id)
}

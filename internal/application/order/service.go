package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/KishoreVB70/icp-marketplace/internal/domain/ledger"
	domain "github.com/KishoreVB70/icp-marketplace/internal/domain/order"
	"github.com/KishoreVB70/icp-marketplace/internal/domain/repository"
	"github.com/KishoreVB70/icp-marketplace/pkg/logger"
)

// Publisher announces committed orders. Optional.
type Publisher interface {
	PublishOrderCompleted(ctx context.Context, o *domain.Order) error
}

// Service runs the order workflow: product lookup, allowance transfer, then
// the paired order/product writes. Attempts against the same product are
// serialized by a per-product lock so soldAmount increments are never lost;
// attempts against different products proceed independently.
type Service struct {
	products  repository.ProductRepository
	orders    repository.OrderRepository
	transfer  ledger.TransferClient
	publisher Publisher
	locks     *keyedMutex
	log       logger.Logger
}

func NewService(
	products repository.ProductRepository,
	orders repository.OrderRepository,
	transfer ledger.TransferClient,
	publisher Publisher,
	log logger.Logger,
) *Service {
	return &Service{
		products:  products,
		orders:    orders,
		transfer:  transfer,
		publisher: publisher,
		locks:     newKeyedMutex(),
		log:       log,
	}
}

func (s *Service) List(ctx context.Context) ([]*domain.Order, error) {
	return s.orders.List(ctx)
}

// CreateOrder purchases one unit of the product for the buyer.
//
// The lock covers the whole pass, lookup through commit, so the price read,
// the transfer amount and the soldAmount increment all refer to the same
// product snapshot and no observer can see an order without its increment.
// On any failure before commit, neither store is touched.
func (s *Service) CreateOrder(ctx context.Context, buyer, productID string) (*domain.Order, error) {
	unlock := s.locks.lock(productID)
	defer unlock()

	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	// Irreversible external side effect. Invoked exactly once per attempt;
	// the client never retries on its own.
	receipt, err := s.transfer.Transfer(ctx, buyer, p.Seller, p.Price)
	if err != nil {
		return nil, err
	}

	o, err := domain.New(uuid.NewString(), p.ID, p.Price, p.Seller)
	if err != nil {
		return nil, fmt.Errorf("build order: %w", err)
	}

	if err := s.orders.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	p.SoldAmount++
	if err := s.products.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}

	s.log.Info("order committed",
		logger.String("order_id", o.ID),
		logger.String("product_id", p.ID),
		logger.Uint64("price", o.Price),
		logger.Uint64("block_index", receipt.BlockIndex),
	)

	s.announce(ctx, o)

	return o, nil
}

// announce publishes the committed order. The commit already happened, so a
// publish failure is logged and swallowed.
func (s *Service) announce(ctx context.Context, o *domain.Order) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderCompleted(ctx, o); err != nil {
		s.log.Warn("publish order event failed",
			logger.String("order_id", o.ID),
			logger.Error(err),
		)
	}
}

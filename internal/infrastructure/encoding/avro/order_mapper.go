package avro

import (
	"fmt"
	"time"

	domain "github.com/KishoreVB70/icp-marketplace/internal/domain/order"
)

// ToOrderEventNative converts a committed order to the goavro native form
// matching OrderEventSchema.
func ToOrderEventNative(o *domain.Order) (map[string]interface{}, error) {
	if o == nil {
		return nil, fmt.Errorf("order is nil")
	}

	return map[string]interface{}{
		"id":         o.ID,
		"product_id": o.ProductID,
		"price":      int64(o.Price),
		"status":     string(o.Status),
		"seller":     o.Seller,
		"created_at": o.CreatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

// FromOrderEventNative rebuilds an order from a decoded event record.
func FromOrderEventNative(record map[string]interface{}) (*domain.Order, error) {
	o := &domain.Order{}

	var ok bool
	if o.ID, ok = record["id"].(string); !ok || o.ID == "" {
		return nil, fmt.Errorf("order event: missing id")
	}
	if o.ProductID, ok = record["product_id"].(string); !ok || o.ProductID == "" {
		return nil, fmt.Errorf("order event: missing product_id")
	}

	price, ok := record["price"].(int64)
	if !ok || price < 0 {
		return nil, fmt.Errorf("order event: invalid price")
	}
	o.Price = uint64(price)

	status, ok := record["status"].(string)
	if !ok {
		return nil, fmt.Errorf("order event: missing status")
	}
	o.Status = domain.Status(status)
	if !o.Status.IsValid() {
		return nil, fmt.Errorf("order event: unknown status %q", status)
	}

	if o.Seller, ok = record["seller"].(string); !ok {
		return nil, fmt.Errorf("order event: missing seller")
	}

	createdAt, ok := record["created_at"].(string)
	if !ok {
		return nil, fmt.Errorf("order event: missing created_at")
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("order event: parse created_at: %w", err)
	}
	o.CreatedAt = ts

	return o, nil
}

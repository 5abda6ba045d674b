package order

import "time"

// Order records a completed purchase of one product. Price and seller are a
// snapshot taken at order time; later edits to the product never rewrite them.
type Order struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Price     uint64    `json:"price"`
	Status    Status    `json:"status"`
	Seller    string    `json:"seller"`
	CreatedAt time.Time `json:"createdAt"`
}

func New(id, productID string, price uint64, seller string) (*Order, error) {
	if id == "" || productID == "" {
		return nil, ErrMissingField
	}

	return &Order{
		ID:        id,
		ProductID: productID,
		Price:     price,
		Status:    StatusCompleted,
		Seller:    seller,
		CreatedAt: time.Now().UTC(),
	}, nil
}

package product

import "time"

// Product is a listed sellable item. Price is in the ledger token's minor
// unit. SoldAmount only ever grows, and only through a committed order.
type Product struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	Price         uint64    `json:"price"`
	Seller        string    `json:"seller"`
	AttachmentURL string    `json:"attachmentURL"`
	SoldAmount    uint64    `json:"soldAmount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Payload carries the caller-supplied fields for product creation.
// ID, seller and soldAmount are never accepted from the outside.
type Payload struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	Price         uint64 `json:"price"`
	AttachmentURL string `json:"attachmentURL"`
}

// Patch is a partial update. Nil fields are left untouched, making the set
// of mutable fields an explicit contract rather than a JSON-merge accident.
type Patch struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Location      *string `json:"location"`
	Price         *uint64 `json:"price"`
	AttachmentURL *string `json:"attachmentURL"`
}

func New(id, seller string, payload Payload) *Product {
	now := time.Now().UTC()
	return &Product{
		ID:            id,
		Title:         payload.Title,
		Description:   payload.Description,
		Location:      payload.Location,
		Price:         payload.Price,
		Seller:        seller,
		AttachmentURL: payload.AttachmentURL,
		SoldAmount:    0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Apply merges the patch over p field by field. ID, Seller and SoldAmount
// are immutable here; UpdatedAt is bumped.
func (patch Patch) Apply(p *Product) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.AttachmentURL != nil {
		p.AttachmentURL = *patch.AttachmentURL
	}
	p.UpdatedAt = time.Now().UTC()
}

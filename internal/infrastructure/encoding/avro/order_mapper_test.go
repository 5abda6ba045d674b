package avro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/KishoreVB70/icp-marketplace/internal/domain/order"
)

func TestOrderEvent_EncodeDecode(t *testing.T) {
	// Arrange
	codec, err := NewCodec(OrderEventSchema)
	require.NoError(t, err)

	original := &domain.Order{
		ID:        "o-1",
		ProductID: "p-1",
		Price:     500,
		Status:    domain.StatusCompleted,
		Seller:    "seller-a",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	// Act
	native, err := ToOrderEventNative(original)
	require.NoError(t, err)

	binary, err := codec.EncodeNative(native)
	require.NoError(t, err)

	record, err := codec.DecodeNative(binary)
	require.NoError(t, err)

	decoded, err := FromOrderEventNative(record)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, original.ID, decoded.ID)
	assert.Equal(t, original.ProductID, decoded.ProductID)
	assert.Equal(t, original.Price, decoded.Price)
	assert.Equal(t, original.Status, decoded.Status)
	assert.Equal(t, original.Seller, decoded.Seller)
	assert.True(t, original.CreatedAt.Equal(decoded.CreatedAt))
}

func TestFromOrderEventNative_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		record map[string]interface{}
	}{
		{name: "missing id", record: map[string]interface{}{"product_id": "p-1"}},
		{name: "missing product", record: map[string]interface{}{"id": "o-1"}},
		{
			name: "unknown status",
			record: map[string]interface{}{
				"id": "o-1", "product_id": "p-1", "price": int64(1),
				"status": "Shipped", "seller": "s", "created_at": "2025-06-01T12:00:00Z",
			},
		},
		{
			name: "bad timestamp",
			record: map[string]interface{}{
				"id": "o-1", "product_id": "p-1", "price": int64(1),
				"status": "Completed", "seller": "s", "created_at": "yesterday",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromOrderEventNative(tt.record)
			assert.Error(t, err)
		})
	}
}

func TestToOrderEventNative_Nil(t *testing.T) {
	_, err := ToOrderEventNative(nil)
	assert.Error(t, err)
}

package avro

// OrderEventSchema is the Avro schema for committed-order events. Every
// field is present at commit time, so no unions are needed.
const OrderEventSchema = `{
	"type": "record",
	"name": "OrderEvent",
	"namespace": "com.marketplace.order",
	"fields": [
		{"name": "id", "type": "string"},
		{"name": "product_id", "type": "string"},
		{"name": "price", "type": "long"},
		{"name": "status", "type": "string"},
		{"name": "seller", "type": "string"},
		{"name": "created_at", "type": "string"}
	]
}`

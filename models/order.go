package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderItem is a snapshot of a purchased line at the time the order was
// placed.
type OrderItem struct {
	Name     string  `json:"name" bson:"name"`
	Image    string  `json:"image" bson:"image"`
	Price    float64 `json:"price" bson:"price"`
	Quantity int     `json:"quantity" bson:"quantity"`
}

// Order is a user's order history document. The storefront only reads
// orders; they are written by the fulfilment pipeline.
type Order struct {
	ID        uuid.UUID   `json:"id" bson:"_id"`
	UserID    uuid.UUID   `json:"-" bson:"user_id"`
	Items     []OrderItem `json:"items" bson:"items"`
	Total     float64     `json:"total" bson:"total"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
}

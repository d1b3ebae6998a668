package models

import "github.com/google/uuid"

// Product is a catalog document. The storefront never mutates products; they
// are seeded and managed by the back-office tooling.
type Product struct {
	ID             uuid.UUID         `json:"id" bson:"_id"`
	Name           string            `json:"name" bson:"name"`
	Price          float64           `json:"price" bson:"price"`
	OriginalPrice  *float64          `json:"original_price,omitempty" bson:"original_price,omitempty"`
	Category       string            `json:"category" bson:"category"`
	Description    string            `json:"description" bson:"description"`
	Images         []string          `json:"images" bson:"images"`
	Features       []string          `json:"features,omitempty" bson:"features,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty" bson:"specifications,omitempty"`
	IsNew          bool              `json:"is_new,omitempty" bson:"is_new,omitempty"`
	IsSale         bool              `json:"is_sale,omitempty" bson:"is_sale,omitempty"`
}

// PrimaryImage returns the first image URL, or "" when the product has none.
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

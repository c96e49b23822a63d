package domain

import "time"

type Product struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description,omitempty"`
	PriceCents         int64     `json:"priceCents"`
	OriginalPriceCents *int64    `json:"originalPriceCents,omitempty"`
	Image              string    `json:"image,omitempty"`
	Category           string    `json:"category"`
	Brand              string    `json:"brand"`
	Rating             int       `json:"rating,omitempty"`
	StockQuantity      int       `json:"stockQuantity"`
	InStock            bool      `json:"inStock"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

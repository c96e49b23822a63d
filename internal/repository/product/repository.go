package product

import (
	"context"

	"techhub-store/internal/domain"
)

// CreateInput carries the fields required to create a product. Stock may
// be zero; InStock is always derived from it.
type CreateInput struct {
	Name               string
	Description        string
	PriceCents         int64
	OriginalPriceCents *int64
	Image              string
	Category           string
	Brand              string
	Rating             int
	StockQuantity      int
}

// UpdateInput carries a partial update; nil fields keep current values.
type UpdateInput struct {
	Name               *string
	Description        *string
	PriceCents         *int64
	OriginalPriceCents *int64
	Image              *string
	Category           *string
	Brand              *string
	Rating             *int
	StockQuantity      *int
}

type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in CreateInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in UpdateInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	UpdateStock(ctx context.Context, id string, stockQuantity int) error
}

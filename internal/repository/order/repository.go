package order

import (
	"context"

	"techhub-store/internal/domain"
)

type Repository interface {
	Insert(ctx context.Context, order domain.Order) error
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	GetByNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
}

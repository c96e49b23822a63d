package order

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"techhub-store/internal/domain"
	orderrepo "techhub-store/internal/repository/order"
)

type repo interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	GetByNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
}

type Service struct {
	repo   repo
	logger *logrus.Logger
}

func New(repo orderrepo.Repository, logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.New()
	}
	return &Service{repo: repo, logger: logger}
}

// UserOrders lists the user's order history, newest first.
func (s *Service) UserOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errors.New("user id required")
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) ByNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	if strings.TrimSpace(orderNumber) == "" {
		return nil, errors.New("order number required")
	}
	return s.repo.GetByNumber(ctx, orderNumber)
}

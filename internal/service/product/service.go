package product

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"techhub-store/internal/domain"
	productrepo "techhub-store/internal/repository/product"
)

// Stock status labels used by the admin stock listing.
const (
	StockStatusOut = "out-of-stock"
	StockStatusLow = "low-stock"
	StockStatusIn  = "in-stock"
)

const lowStockThreshold = 3

type repo interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in productrepo.CreateInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in productrepo.UpdateInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	UpdateStock(ctx context.Context, id string, stockQuantity int) error
}

type Service struct {
	repo   repo
	logger *logrus.Logger
}

func New(repo productrepo.Repository, logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.New()
	}
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("product id required")
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in productrepo.CreateInput) (*domain.Product, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}
	// An original price at or below the sale price is not a discount.
	if in.OriginalPriceCents != nil && *in.OriginalPriceCents <= in.PriceCents {
		in.OriginalPriceCents = nil
	}
	return s.repo.Create(ctx, in)
}

func (s *Service) Update(ctx context.Context, id string, in productrepo.UpdateInput) (*domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("product id required")
	}
	if err := validateUpdate(in); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, in)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("product id required")
	}
	return s.repo.Delete(ctx, id)
}

// SetStock sets the absolute stock count for a product. Negative values
// are rejected; zero marks the product out of stock.
func (s *Service) SetStock(ctx context.Context, id string, stockQuantity int) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("product id required")
	}
	if stockQuantity < 0 {
		return errors.New("stock quantity cannot be negative")
	}
	if err := s.repo.UpdateStock(ctx, id, stockQuantity); err != nil {
		return err
	}
	s.logger.WithFields(logrus.Fields{"id": id, "stockQuantity": stockQuantity}).Info("product service: stock set")
	return nil
}

// StockStatus classifies a stock count for the admin listing.
func StockStatus(stockQuantity int) string {
	switch {
	case stockQuantity == 0:
		return StockStatusOut
	case stockQuantity <= lowStockThreshold:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

func validateCreate(in productrepo.CreateInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("name required")
	}
	if strings.TrimSpace(in.Category) == "" {
		return errors.New("category required")
	}
	if strings.TrimSpace(in.Brand) == "" {
		return errors.New("brand required")
	}
	if in.PriceCents <= 0 {
		return errors.New("price must be positive")
	}
	if in.StockQuantity < 0 {
		return errors.New("stock quantity cannot be negative")
	}
	return nil
}

func validateUpdate(in productrepo.UpdateInput) error {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return errors.New("name required")
	}
	if in.Category != nil && strings.TrimSpace(*in.Category) == "" {
		return errors.New("category required")
	}
	if in.Brand != nil && strings.TrimSpace(*in.Brand) == "" {
		return errors.New("brand required")
	}
	if in.PriceCents != nil && *in.PriceCents <= 0 {
		return errors.New("price must be positive")
	}
	if in.StockQuantity != nil && *in.StockQuantity < 0 {
		return errors.New("stock quantity cannot be negative")
	}
	return nil
}

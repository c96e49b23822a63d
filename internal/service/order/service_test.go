package order

import (
	"context"
	"testing"

	"techhub-store/internal/domain"
)

type stubRepo struct {
	orders     []domain.Order
	listedUser string
	lookedUp   string
}

func (s *stubRepo) Insert(ctx context.Context, order domain.Order) error {
	s.orders = append(s.orders, order)
	return nil
}

func (s *stubRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	s.listedUser = userID
	return s.orders, nil
}

func (s *stubRepo) GetByNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	s.lookedUp = orderNumber
	for i := range s.orders {
		if s.orders[i].OrderNumber == orderNumber {
			return &s.orders[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func TestUserOrders(t *testing.T) {
	repo := &stubRepo{orders: []domain.Order{{OrderNumber: "A1B2C3D4E"}}}
	svc := New(repo, nil)

	if _, err := svc.UserOrders(context.Background(), "  "); err == nil {
		t.Fatal("blank user id should be rejected")
	}
	if repo.listedUser != "" {
		t.Fatal("repo should not be reached on validation failure")
	}

	got, err := svc.UserOrders(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("UserOrders: %v", err)
	}
	if len(got) != 1 || repo.listedUser != "user-1" {
		t.Fatalf("unexpected result: %+v (listed %q)", got, repo.listedUser)
	}
}

func TestByNumber(t *testing.T) {
	repo := &stubRepo{orders: []domain.Order{{OrderNumber: "A1B2C3D4E"}}}
	svc := New(repo, nil)

	if _, err := svc.ByNumber(context.Background(), ""); err == nil {
		t.Fatal("blank order number should be rejected")
	}

	got, err := svc.ByNumber(context.Background(), "A1B2C3D4E")
	if err != nil {
		t.Fatalf("ByNumber: %v", err)
	}
	if got.OrderNumber != "A1B2C3D4E" {
		t.Fatalf("unexpected order: %+v", got)
	}

	if _, err := svc.ByNumber(context.Background(), "ZZZZZZZZZ"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

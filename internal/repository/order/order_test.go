package order

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"techhub-store/internal/domain"
	"techhub-store/internal/migrate"
)

func TestPostgresInsertAndFetch(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE orders RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate orders: %v", err)
	}

	repo := NewPostgres(pool, nil)

	order := domain.Order{
		ID:          uuid.NewString(),
		OrderNumber: "A1B2C3D4E",
		UserID:      "user-1",
		Items: []domain.OrderItem{
			{ProductID: "p1", Name: "iPad Pro 12.9\" M2", PriceCents: 849900, Quantity: 2, Brand: "Apple"},
		},
		TotalCents:    1699800,
		PaymentMethod: "pix",
		PaymentStatus: domain.PaymentStatusCompleted,
		CreatedAt:     time.Now().UTC(),
	}
	if err := repo.Insert(ctx, order); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, err := repo.GetByNumber(ctx, "A1B2C3D4E")
	if err != nil {
		t.Fatalf("GetByNumber: %v", err)
	}
	if got.UserID != "user-1" || got.TotalCents != 1699800 {
		t.Fatalf("unexpected order %+v", got)
	}
	if len(got.Items) != 1 || got.Items[0].Quantity != 2 {
		t.Fatalf("items not round-tripped: %+v", got.Items)
	}

	list, err := repo.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 order, got %d", len(list))
	}

	if _, err := repo.GetByNumber(ctx, "ZZZZZZZZZ"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

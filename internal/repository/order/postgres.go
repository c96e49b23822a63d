package order

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"techhub-store/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *logrus.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *logrus.Logger) Repository {
	if logger == nil {
		logger = logrus.New()
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Insert(ctx context.Context, order domain.Order) error {
	const q = `
INSERT INTO orders (id, order_number, user_id, items, total_cents, payment_method, payment_status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`
	items, err := json.Marshal(order.Items)
	if err != nil {
		return pkgerrors.Wrap(err, "encode order items")
	}
	_, err = r.pool.Exec(ctx, q,
		order.ID,
		order.OrderNumber,
		order.UserID,
		items,
		order.TotalCents,
		order.PaymentMethod,
		order.PaymentStatus,
		order.CreatedAt,
	)
	if err != nil {
		r.logger.WithError(err).WithField("orderNumber", order.OrderNumber).Error("order repo: insert")
		return err
	}
	return nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const q = `
SELECT id::text, order_number, user_id, items, total_cents, payment_method, payment_status, created_at
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		r.logger.WithError(err).WithField("userId", userID).Error("order repo: list")
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		r.logger.WithError(err).WithField("userId", userID).Error("order repo: list rows")
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	const q = `
SELECT id::text, order_number, user_id, items, total_cents, payment_method, payment_status, created_at
FROM orders
WHERE order_number = $1
`
	o, err := scanOrder(r.pool.QueryRow(ctx, q, orderNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.WithError(err).WithField("orderNumber", orderNumber).Error("order repo: get")
		return nil, err
	}
	return &o, nil
}

func scanOrder(row pgx.Row) (domain.Order, error) {
	var o domain.Order
	var items []byte
	err := row.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.UserID,
		&items,
		&o.TotalCents,
		&o.PaymentMethod,
		&o.PaymentStatus,
		&o.CreatedAt,
	)
	if err != nil {
		return domain.Order{}, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return domain.Order{}, pkgerrors.Wrap(err, "decode order items")
		}
	}
	return o, nil
}

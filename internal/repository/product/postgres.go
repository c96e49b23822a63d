package product

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"techhub-store/internal/domain"
)

const productColumns = `id::text, name, COALESCE(description, ''), price_cents, original_price_cents, COALESCE(image, ''), category, brand, COALESCE(rating, 0), stock_quantity, created_at, updated_at`

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

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.WithError(err).Error("product repo: list")
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.WithError(err).Error("product repo: list rows")
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.WithError(err).WithField("id", id).Error("product repo: get")
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, description, price_cents, original_price_cents, image, category, brand, rating, stock_quantity)
VALUES ($1, NULLIF($2, ''), $3, $4, NULLIF($5, ''), $6, $7, $8, $9)
RETURNING ` + productColumns + `
`
	p, err := scanProduct(r.pool.QueryRow(ctx, q,
		in.Name,
		in.Description,
		in.PriceCents,
		in.OriginalPriceCents,
		in.Image,
		in.Category,
		in.Brand,
		in.Rating,
		in.StockQuantity,
	))
	if err != nil {
		r.logger.WithError(err).WithField("name", in.Name).Error("product repo: create")
		return nil, err
	}
	r.logger.WithFields(logrus.Fields{"id": p.ID, "name": p.Name}).Info("product repo: created")
	return &p, nil
}

func (r *postgresRepo) Update(ctx context.Context, id string, in UpdateInput) (*domain.Product, error) {
	const q = `
UPDATE products SET
    name = COALESCE($2, name),
    description = COALESCE($3, description),
    price_cents = COALESCE($4, price_cents),
    original_price_cents = COALESCE($5, original_price_cents),
    image = COALESCE($6, image),
    category = COALESCE($7, category),
    brand = COALESCE($8, brand),
    rating = COALESCE($9, rating),
    stock_quantity = COALESCE($10, stock_quantity),
    updated_at = now()
WHERE id = $1
RETURNING ` + productColumns + `
`
	p, err := scanProduct(r.pool.QueryRow(ctx, q,
		id,
		in.Name,
		in.Description,
		in.PriceCents,
		in.OriginalPriceCents,
		in.Image,
		in.Category,
		in.Brand,
		in.Rating,
		in.StockQuantity,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.WithError(err).WithField("id", id).Error("product repo: update")
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM products WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		r.logger.WithError(err).WithField("id", id).Error("product repo: delete")
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) UpdateStock(ctx context.Context, id string, stockQuantity int) error {
	const q = `
UPDATE products
SET stock_quantity = $2,
    updated_at = now()
WHERE id = $1
`
	cmd, err := r.pool.Exec(ctx, q, id, stockQuantity)
	if err != nil {
		r.logger.WithError(err).WithField("id", id).Error("product repo: update stock")
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.WithFields(logrus.Fields{"id": id, "stockQuantity": stockQuantity}).Debug("product repo: stock updated")
	return nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.PriceCents,
		&p.OriginalPriceCents,
		&p.Image,
		&p.Category,
		&p.Brand,
		&p.Rating,
		&p.StockQuantity,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return domain.Product{}, err
	}
	p.InStock = p.StockQuantity > 0
	return p, nil
}

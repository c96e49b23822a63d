package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Name               string
	PriceCents         int64
	OriginalPriceCents *int64
	Image              string
	Category           string
	Brand              string
	Rating             int
	StockQuantity      int
}

func cents(v int64) *int64 { return &v }

// Apply inserts the demo catalog for manual testing. It is idempotent:
// products already present (matched by name) are left alone.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{Name: `MacBook Pro 16" M3 Pro`, PriceCents: 1599900, OriginalPriceCents: cents(1799900), Image: "photo-1486312338219-ce68d2c6f44d", Category: "Laptops", Brand: "Apple", Rating: 5, StockQuantity: 5},
		{Name: "Dell XPS 13 Plus", PriceCents: 899900, OriginalPriceCents: cents(999900), Image: "photo-1488590528505-98d2b5aba04b", Category: "Laptops", Brand: "Dell", Rating: 4, StockQuantity: 8},
		{Name: "Samsung Galaxy S24 Ultra", PriceCents: 699900, Image: "photo-1581091226825-a6a2a5aee158", Category: "Smartphones", Brand: "Samsung", Rating: 5, StockQuantity: 0},
		{Name: `iPad Pro 12.9" M2`, PriceCents: 999900, OriginalPriceCents: cents(1199900), Image: "photo-1649972904349-6e44c42644a7", Category: "Tablets", Brand: "Apple", Rating: 5, StockQuantity: 3},
		{Name: "Lenovo ThinkPad X1 Carbon", PriceCents: 1299900, Image: "photo-1518770660439-4636190af475", Category: "Laptops", Brand: "Lenovo", Rating: 4, StockQuantity: 12},
		{Name: "HP Spectre x360", PriceCents: 799900, OriginalPriceCents: cents(899900), Image: "photo-1488590528505-98d2b5aba04b", Category: "Laptops", Brand: "HP", Rating: 4, StockQuantity: 7},
		{Name: "iPhone 15 Pro Max", PriceCents: 899900, Image: "photo-1581091226825-a6a2a5aee158", Category: "Smartphones", Brand: "Apple", Rating: 5, StockQuantity: 15},
		{Name: "Samsung Galaxy Tab S9 Ultra", PriceCents: 599900, OriginalPriceCents: cents(649900), Image: "photo-1649972904349-6e44c42644a7", Category: "Tablets", Brand: "Samsung", Rating: 4, StockQuantity: 0},
	}

	for _, p := range products {
		if err := insertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("seed product %s: %w", p.Name, err)
		}
	}

	return nil
}

func insertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (name, price_cents, original_price_cents, image, category, brand, rating, stock_quantity)
SELECT $1, $2, $3, $4, $5, $6, $7, $8
WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $1)
`
	_, err := pool.Exec(ctx, q,
		p.Name,
		p.PriceCents,
		p.OriginalPriceCents,
		p.Image,
		p.Category,
		p.Brand,
		p.Rating,
		p.StockQuantity,
	)
	return err
}

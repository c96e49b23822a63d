// Package catalog adapts the product storage into the read-only,
// full-refresh view the storefront browses and the cart reconciles
// against.
package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"techhub-store/internal/domain"
)

type ProductFetcher interface {
	List(ctx context.Context) ([]domain.Product, error)
}

type Catalog struct {
	products ProductFetcher
	logger   *logrus.Logger
}

func New(products ProductFetcher, logger *logrus.Logger) *Catalog {
	if logger == nil {
		logger = logrus.New()
	}
	return &Catalog{products: products, logger: logger}
}

// LoadProducts fetches the full current product list, newest first. A
// fetch failure degrades to an empty catalog rather than failing the
// session.
func (c *Catalog) LoadProducts(ctx context.Context) []domain.Product {
	products, err := c.products.List(ctx)
	if err != nil {
		c.logger.WithError(err).Error("catalog: load products")
		return []domain.Product{}
	}
	return products
}

// Filters narrows and orders a loaded product list for browsing.
type Filters struct {
	Search      string
	Category    string
	MinCents    int64
	MaxCents    int64
	InStockOnly bool
	SortBy      string
}

const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortName      = "name"
)

// Filter applies the storefront's browse filters in memory. MaxCents of
// zero means unbounded. An unknown SortBy keeps the fetched order.
func Filter(products []domain.Product, f Filters) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	search := strings.ToLower(strings.TrimSpace(f.Search))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if p.PriceCents < f.MinCents {
			continue
		}
		if f.MaxCents > 0 && p.PriceCents > f.MaxCents {
			continue
		}
		if f.InStockOnly && !p.InStock {
			continue
		}
		out = append(out, p)
	}

	switch f.SortBy {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PriceCents < out[j].PriceCents })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PriceCents > out[j].PriceCents })
	case SortName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	}
	return out
}

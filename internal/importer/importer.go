// Package importer loads product catalogs from CSV exports, for bulk
// onboarding outside the admin API.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"techhub-store/internal/domain"
	productrepo "techhub-store/internal/repository/product"
)

type ProductWriter interface {
	Create(ctx context.Context, in productrepo.CreateInput) (*domain.Product, error)
}

// CSVImporter reads a product CSV export and creates one product per row.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
	}
}

// Run parses CSV rows and creates products. It stops at the first invalid
// row and reports how many products were created before it.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		in, ok := parseRow(record, index)
		if !ok {
			continue
		}
		if err := i.save(ctx, in); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, in productrepo.CreateInput) error {
	if in.Name == "" || in.Category == "" || in.Brand == "" || in.PriceCents == 0 {
		return fmt.Errorf("invalid product row (missing required fields) for %q", in.Name)
	}
	if _, err := i.productRepo.Create(ctx, in); err != nil {
		return fmt.Errorf("create product %q: %w", in.Name, err)
	}
	return nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[h] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) (productrepo.CreateInput, bool) {
	name := pick(record, index, "name")
	if name == "" {
		return productrepo.CreateInput{}, false
	}

	in := productrepo.CreateInput{
		Name:          name,
		Description:   pick(record, index, "description"),
		PriceCents:    pickInt64(record, index, "priceCents"),
		Image:         pick(record, index, "image"),
		Category:      pick(record, index, "category"),
		Brand:         pick(record, index, "brand"),
		Rating:        int(pickInt64(record, index, "rating")),
		StockQuantity: int(pickInt64(record, index, "stockQuantity")),
	}
	if orig := pickInt64(record, index, "originalPriceCents"); orig > 0 {
		in.OriginalPriceCents = &orig
	}
	return in, true
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}

func pickInt64(record []string, index map[string]int, key string) int64 {
	raw := pick(record, index, key)
	if raw == "" {
		return 0
	}
	v, _ := strconv.ParseInt(raw, 10, 64)
	return v
}

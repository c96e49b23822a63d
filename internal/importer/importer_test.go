package importer

import (
	"context"
	"strings"
	"testing"

	"techhub-store/internal/domain"
	productrepo "techhub-store/internal/repository/product"
)

type stubProductRepo struct {
	items []productrepo.CreateInput
}

func (s *stubProductRepo) Create(_ context.Context, in productrepo.CreateInput) (*domain.Product, error) {
	s.items = append(s.items, in)
	return &domain.Product{ID: "gen", Name: in.Name}, nil
}

func TestCSVImporterRun(t *testing.T) {
	csvData := `name,description,priceCents,originalPriceCents,image,category,brand,rating,stockQuantity
MacBook Pro 16",Apple laptop,1599900,1799900,photo-1,Laptops,Apple,5,5
Samsung Galaxy S24 Ultra,Flagship phone,649900,,photo-2,Smartphones,Samsung,4,0
`

	repo := &stubProductRepo{}
	imp := NewCSVImporter(strings.NewReader(csvData), repo)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 products imported, got %d", count)
	}

	first := repo.items[0]
	if first.Name != "MacBook Pro 16\"" || first.PriceCents != 1599900 || first.Brand != "Apple" || first.StockQuantity != 5 {
		t.Fatalf("unexpected product data: %+v", first)
	}
	if first.OriginalPriceCents == nil || *first.OriginalPriceCents != 1799900 {
		t.Fatalf("expected original price preserved, got %+v", first.OriginalPriceCents)
	}

	second := repo.items[1]
	if second.OriginalPriceCents != nil {
		t.Fatalf("expected no original price, got %v", *second.OriginalPriceCents)
	}
	if second.StockQuantity != 0 {
		t.Fatalf("expected zero stock, got %d", second.StockQuantity)
	}
}

func TestCSVImporterSkipsBlankRows(t *testing.T) {
	csvData := `name,priceCents,category,brand,stockQuantity
,100,Laptops,Apple,1
iPhone 15 Pro Max,899900,Smartphones,Apple,15
`
	repo := &stubProductRepo{}
	imp := NewCSVImporter(strings.NewReader(csvData), repo)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 product imported, got %d", count)
	}
}

func TestCSVImporterRejectsIncompleteRow(t *testing.T) {
	csvData := `name,priceCents,category,brand,stockQuantity
Nameless Gadget,0,Tablets,Acme,3
`
	imp := NewCSVImporter(strings.NewReader(csvData), &stubProductRepo{})

	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatal("expected error for row missing priceCents")
	}
}

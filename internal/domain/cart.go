package domain

// CartLine is one product entry in the cart. Name, price, image and brand
// are snapshots taken at add time; StockQuantity/InStock are the last
// known stock values for the product and are refreshed on quantity
// updates and catalog reconciliation.
type CartLine struct {
	ProductID     string `json:"productId"`
	Name          string `json:"name"`
	PriceCents    int64  `json:"priceCents"`
	Image         string `json:"image,omitempty"`
	Brand         string `json:"brand,omitempty"`
	Quantity      int    `json:"quantity"`
	StockQuantity int    `json:"stockQuantity"`
	InStock       bool   `json:"inStock"`
}

// Cart aggregates the session's lines. TotalItems and TotalCents are
// derived from the lines and never stored independently.
type Cart struct {
	Lines      []CartLine `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalCents int64      `json:"totalCents"`
}

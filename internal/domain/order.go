package domain

import "time"

// PaymentStatusCompleted is set on every order at insert time: payment is
// simulated, there is no gateway confirmation to wait for.
const PaymentStatusCompleted = "completed"

// OrderItem is a frozen copy of a cart line at checkout time. Later stock
// or price changes never affect historical orders.
type OrderItem struct {
	ProductID  string `json:"productId"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Quantity   int    `json:"quantity"`
	Image      string `json:"image,omitempty"`
	Brand      string `json:"brand,omitempty"`
}

type Order struct {
	ID            string      `json:"id"`
	OrderNumber   string      `json:"orderNumber"`
	UserID        string      `json:"userId"`
	Items         []OrderItem `json:"items"`
	TotalCents    int64       `json:"totalCents"`
	PaymentMethod string      `json:"paymentMethod"`
	PaymentStatus string      `json:"paymentStatus"`
	CreatedAt     time.Time   `json:"createdAt"`
}

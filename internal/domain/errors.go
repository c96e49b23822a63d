package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidQuantity rejects zero or negative requested quantities.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	// ErrInsufficientStock rejects requests that exceed the known stock.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrEmptyCart rejects checkout of an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
)

// OutOfStockError reports a checkout re-validation failure: the
// authoritative stock dropped below the cart quantity.
type OutOfStockError struct {
	ProductName string
	Requested   int
	Available   int
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("out of stock: %s (requested %d, available %d)", e.ProductName, e.Requested, e.Available)
}

func (e *OutOfStockError) Unwrap() error { return ErrInsufficientStock }

// ProductGoneError reports a product that vanished between cart
// population and checkout re-validation.
type ProductGoneError struct {
	ProductName string
}

func (e *ProductGoneError) Error() string {
	return fmt.Sprintf("product no longer available: %s", e.ProductName)
}

func (e *ProductGoneError) Unwrap() error { return ErrNotFound }

// OrderPersistenceError wraps a failed order insert. No stock has been
// decremented when this is returned, so the checkout is safe to retry.
type OrderPersistenceError struct {
	Err error
}

func (e *OrderPersistenceError) Error() string {
	return fmt.Sprintf("persist order: %v", e.Err)
}

func (e *OrderPersistenceError) Unwrap() error { return e.Err }

// StockUpdateError wraps a failed post-order stock decrement. The order
// record exists and earlier decrements are not undone, so inventory may
// be inconsistent with recorded orders.
type StockUpdateError struct {
	ProductID string
	Err       error
}

func (e *StockUpdateError) Error() string {
	return fmt.Sprintf("update stock for product %s: %v", e.ProductID, e.Err)
}

func (e *StockUpdateError) Unwrap() error { return e.Err }

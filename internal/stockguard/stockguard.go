// Package stockguard holds the pure stock validation rules shared by the
// cart and checkout flows. All checks run against the last fetched stock
// snapshot, which may be stale relative to the database; there is no
// server-side reservation.
package stockguard

import "techhub-store/internal/domain"

// ValidateAdd decides whether requested more units of a product may join
// the cart given how many are already there and the last known stock.
func ValidateAdd(requested, inCart, totalStock int) error {
	if requested <= 0 {
		return domain.ErrInvalidQuantity
	}
	if inCart+requested > totalStock {
		return domain.ErrInsufficientStock
	}
	return nil
}

// ValidateSet decides whether a line's quantity may be set to newQty.
// A newQty <= 0 is an implicit remove and is always accepted.
func ValidateSet(newQty, totalStock int) error {
	if newQty <= 0 {
		return nil
	}
	if newQty > totalStock {
		return domain.ErrInsufficientStock
	}
	return nil
}

// Available is the stock still offerable to the session: total stock
// minus what the cart already holds, floored at zero.
func Available(totalStock, inCart int) int {
	available := totalStock - inCart
	if available < 0 {
		return 0
	}
	return available
}

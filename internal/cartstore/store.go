// Package cartstore holds the session cart state machine. Each store is
// the single owner of one session's cart; mutations validate against the
// last known stock snapshot, recompute totals from scratch, and persist
// the full line set after every change.
package cartstore

import (
	"sync"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"techhub-store/internal/domain"
	"techhub-store/internal/stockguard"
)

// Persistence is the device-local cart storage collaborator.
type Persistence interface {
	ReadCart() ([]domain.CartLine, error)
	WriteCart([]domain.CartLine) error
}

type Store struct {
	mu      sync.Mutex
	lines   []domain.CartLine
	persist Persistence
	logger  *logrus.Logger
}

// New loads the persisted cart into a Store. A missing or corrupt
// persisted cart falls back to empty without error.
func New(persist Persistence, logger *logrus.Logger) *Store {
	if logger == nil {
		logger = logrus.New()
	}
	s := &Store{persist: persist, logger: logger}
	if persist != nil {
		lines, err := persist.ReadCart()
		if err != nil {
			logger.WithError(err).Warn("cart store: discarding unreadable persisted cart")
		} else {
			s.lines = lines
		}
	}
	return s
}

// AddItem puts qty units of product into the cart, merging with an
// existing line for the same product. The line snapshots the product's
// name, price, image, brand and stock at add time. On rejection the cart
// is left untouched.
func (s *Store) AddItem(product domain.Product, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(product.ID)
	inCart := 0
	if idx >= 0 {
		inCart = s.lines[idx].Quantity
	}
	if err := stockguard.ValidateAdd(qty, inCart, product.StockQuantity); err != nil {
		return err
	}

	if idx >= 0 {
		s.lines[idx].Quantity += qty
		s.lines[idx].StockQuantity = product.StockQuantity
		s.lines[idx].InStock = product.StockQuantity > 0
	} else {
		s.lines = append(s.lines, domain.CartLine{
			ProductID:     product.ID,
			Name:          product.Name,
			PriceCents:    product.PriceCents,
			Image:         product.Image,
			Brand:         product.Brand,
			Quantity:      qty,
			StockQuantity: product.StockQuantity,
			InStock:       product.StockQuantity > 0,
		})
	}
	return s.persistLocked()
}

// UpdateQuantity sets the line's quantity, refreshing the cached stock
// snapshot from totalStock. A qty <= 0 removes the line. Updating an
// absent line is a no-op.
func (s *Store) UpdateQuantity(productID string, qty, totalStock int) error {
	if qty <= 0 {
		s.RemoveItem(productID)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := stockguard.ValidateSet(qty, totalStock); err != nil {
		return err
	}
	idx := s.indexOf(productID)
	if idx < 0 {
		return nil
	}
	s.lines[idx].Quantity = qty
	s.lines[idx].StockQuantity = totalStock
	s.lines[idx].InStock = totalStock > 0
	return s.persistLocked()
}

// RemoveItem drops the line if present. Removing an absent product id is
// a no-op, not an error.
func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(productID)
	if idx < 0 {
		return
	}
	s.lines = append(s.lines[:idx], s.lines[idx+1:]...)
	if err := s.persistLocked(); err != nil {
		s.logger.WithError(err).Warn("cart store: persist after remove")
	}
}

// Clear resets the cart to empty.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	if err := s.persistLocked(); err != nil {
		s.logger.WithError(err).Warn("cart store: persist after clear")
	}
}

// Reconcile shrinks the cart toward freshly fetched stock truth: lines
// whose product is missing from the catalog or out of stock are dropped,
// and quantities above the fetched stock are clamped down. Quantities are
// never raised.
func (s *Store) Reconcile(products []domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	changed := false
	kept := s.lines[:0]
	for _, line := range s.lines {
		product, ok := byID[line.ProductID]
		if !ok || product.StockQuantity == 0 {
			s.logger.WithFields(logrus.Fields{
				"productId": line.ProductID,
				"name":      line.Name,
			}).Info("cart store: dropping unavailable line")
			changed = true
			continue
		}
		if line.Quantity > product.StockQuantity {
			line.Quantity = product.StockQuantity
			changed = true
		}
		if line.StockQuantity != product.StockQuantity {
			line.StockQuantity = product.StockQuantity
			line.InStock = product.StockQuantity > 0
			changed = true
		}
		kept = append(kept, line)
	}
	s.lines = kept
	if len(s.lines) == 0 {
		s.lines = nil
	}

	if changed {
		if err := s.persistLocked(); err != nil {
			s.logger.WithError(err).Warn("cart store: persist after reconcile")
		}
	}
}

// Cart returns a copy of the cart with totals folded from the lines.
func (s *Store) Cart() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := domain.Cart{Lines: make([]domain.CartLine, len(s.lines))}
	copy(cart.Lines, s.lines)
	for _, line := range s.lines {
		cart.TotalItems += line.Quantity
		cart.TotalCents += line.PriceCents * int64(line.Quantity)
	}
	return cart
}

// QuantityOf reports how many units of the product the cart holds.
func (s *Store) QuantityOf(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.indexOf(productID); idx >= 0 {
		return s.lines[idx].Quantity
	}
	return 0
}

// AvailableStock is the stock still offerable to this session for the
// product, given its last fetched total stock.
func (s *Store) AvailableStock(productID string, totalStock int) int {
	return stockguard.Available(totalStock, s.QuantityOf(productID))
}

func (s *Store) indexOf(productID string) int {
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) persistLocked() error {
	if s.persist == nil {
		return nil
	}
	if err := s.persist.WriteCart(s.lines); err != nil {
		return pkgerrors.Wrap(err, "persist cart")
	}
	return nil
}

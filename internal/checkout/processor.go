// Package checkout converts a validated cart into a persisted order and
// issues the compensating stock decrements. The flow is a three-step saga
// with no rollback: re-validate against authoritative stock, insert the
// order, then decrement stock one product at a time.
package checkout

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"techhub-store/internal/domain"
)

type ProductGateway interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	UpdateStock(ctx context.Context, id string, stockQuantity int) error
}

type OrderGateway interface {
	Insert(ctx context.Context, order domain.Order) error
}

// CartSession is the slice of the cart store the processor needs: a
// snapshot to freeze into the order and a way to clear on success.
type CartSession interface {
	Cart() domain.Cart
	Clear()
}

type Processor struct {
	products      ProductGateway
	orders        OrderGateway
	logger        *logrus.Logger
	maxConcurrent int
}

func New(products ProductGateway, orders OrderGateway, logger *logrus.Logger, maxConcurrent int) *Processor {
	if logger == nil {
		logger = logrus.New()
	}
	if maxConcurrent <= 0 {
		maxConcurrent = 4
	}
	return &Processor{
		products:      products,
		orders:        orders,
		logger:        logger,
		maxConcurrent: maxConcurrent,
	}
}

// PlaceOrder runs the checkout saga and returns the generated order
// number.
//
// Step 1 re-fetches every product and fails the whole operation, with no
// writes issued, if any line exceeds the authoritative stock or its
// product vanished. Step 2 inserts the order with a frozen item snapshot
// and a total recomputed from the lines, never trusted from the client.
// Step 3 decrements stock per product using the stock fetched in step 1,
// floored at zero; a failure partway leaves the order in place and
// earlier decrements applied.
//
// The validate-then-write window is not closed: two sessions can both
// pass step 1 before either reaches step 3 and oversell the product.
func (p *Processor) PlaceOrder(ctx context.Context, userID string, cart CartSession, payment domain.Payment) (string, error) {
	snapshot := cart.Cart()
	if len(snapshot.Lines) == 0 {
		return "", domain.ErrEmptyCart
	}

	fetched, err := p.revalidate(ctx, snapshot.Lines)
	if err != nil {
		return "", err
	}

	order := buildOrder(userID, snapshot.Lines, payment)
	if err := p.orders.Insert(ctx, order); err != nil {
		p.logger.WithError(err).WithField("orderNumber", order.OrderNumber).Error("checkout: insert order")
		return "", &domain.OrderPersistenceError{Err: err}
	}

	for i, line := range snapshot.Lines {
		newStock := fetched[i].StockQuantity - line.Quantity
		if newStock < 0 {
			newStock = 0
		}
		if err := p.products.UpdateStock(ctx, line.ProductID, newStock); err != nil {
			p.logger.WithError(err).WithFields(logrus.Fields{
				"orderNumber": order.OrderNumber,
				"productId":   line.ProductID,
			}).Error("checkout: stock decrement failed, inventory may be inconsistent")
			return "", &domain.StockUpdateError{ProductID: line.ProductID, Err: errors.Wrap(err, "decrement")}
		}
	}

	cart.Clear()
	p.logger.WithFields(logrus.Fields{
		"orderNumber": order.OrderNumber,
		"userId":      userID,
		"totalCents":  order.TotalCents,
	}).Info("checkout: order placed")
	return order.OrderNumber, nil
}

// revalidate fetches the authoritative record for every cart line. Reads
// fan out with a bounded group; any failure aborts checkout before any
// write occurs.
func (p *Processor) revalidate(ctx context.Context, lines []domain.CartLine) ([]domain.Product, error) {
	fetched := make([]domain.Product, len(lines))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.maxConcurrent)

	for i := range lines {
		i := i
		g.Go(func() error {
			line := lines[i]
			product, err := p.products.GetByID(ctx, line.ProductID)
			if err != nil {
				if stderrors.Is(err, domain.ErrNotFound) {
					return &domain.ProductGoneError{ProductName: line.Name}
				}
				return errors.Wrapf(err, "fetch product %s", line.ProductID)
			}
			if product.StockQuantity < line.Quantity {
				return &domain.OutOfStockError{
					ProductName: line.Name,
					Requested:   line.Quantity,
					Available:   product.StockQuantity,
				}
			}
			fetched[i] = *product
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return fetched, nil
}

func buildOrder(userID string, lines []domain.CartLine, payment domain.Payment) domain.Order {
	items := make([]domain.OrderItem, 0, len(lines))
	var total int64
	for _, line := range lines {
		items = append(items, domain.OrderItem{
			ProductID:  line.ProductID,
			Name:       line.Name,
			PriceCents: line.PriceCents,
			Quantity:   line.Quantity,
			Image:      line.Image,
			Brand:      line.Brand,
		})
		total += line.PriceCents * int64(line.Quantity)
	}
	return domain.Order{
		ID:            uuid.NewString(),
		OrderNumber:   NewOrderNumber(),
		UserID:        userID,
		Items:         items,
		TotalCents:    total,
		PaymentMethod: payment.Method(),
		PaymentStatus: domain.PaymentStatusCompleted,
		CreatedAt:     time.Now().UTC(),
	}
}

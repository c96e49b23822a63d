package cartstore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techhub-store/internal/domain"
)

type memPersistence struct {
	lines     []domain.CartLine
	readErr   error
	writeErr  error
	writeCnt  int
	lastWrite []domain.CartLine
}

func (m *memPersistence) ReadCart() ([]domain.CartLine, error) {
	return m.lines, m.readErr
}

func (m *memPersistence) WriteCart(lines []domain.CartLine) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.writeCnt++
	m.lastWrite = append([]domain.CartLine(nil), lines...)
	return nil
}

func laptop(stock int) domain.Product {
	return domain.Product{
		ID:            "p-laptop",
		Name:          "Dell XPS 13 Plus",
		PriceCents:    899900,
		Image:         "photo-1488590528505-98d2b5aba04b",
		Brand:         "Dell",
		Category:      "Laptops",
		StockQuantity: stock,
		InStock:       stock > 0,
	}
}

func phone(stock int) domain.Product {
	return domain.Product{
		ID:            "p-phone",
		Name:          "iPhone 15 Pro Max",
		PriceCents:    899900,
		Brand:         "Apple",
		Category:      "Smartphones",
		StockQuantity: stock,
		InStock:       stock > 0,
	}
}

func TestNewLoadsPersistedCart(t *testing.T) {
	persisted := []domain.CartLine{{ProductID: "p-laptop", Name: "Dell XPS 13 Plus", PriceCents: 899900, Quantity: 2, StockQuantity: 8, InStock: true}}
	store := New(&memPersistence{lines: persisted}, nil)

	cart := store.Cart()
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.TotalItems)
	assert.Equal(t, int64(1799800), cart.TotalCents)
}

func TestNewFallsBackToEmptyOnCorruptPersistence(t *testing.T) {
	store := New(&memPersistence{readErr: errors.New("corrupt")}, nil)

	cart := store.Cart()
	assert.Empty(t, cart.Lines)
	assert.Zero(t, cart.TotalItems)
	assert.Zero(t, cart.TotalCents)
}

func TestAddItemMergesLines(t *testing.T) {
	store := New(&memPersistence{}, nil)

	require.NoError(t, store.AddItem(laptop(8), 1))
	require.NoError(t, store.AddItem(laptop(8), 2))

	cart := store.Cart()
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
	assert.Equal(t, 3, cart.TotalItems)
}

func TestAddItemSnapshotsProduct(t *testing.T) {
	store := New(&memPersistence{}, nil)
	require.NoError(t, store.AddItem(laptop(8), 1))

	line := store.Cart().Lines[0]
	assert.Equal(t, "Dell XPS 13 Plus", line.Name)
	assert.Equal(t, int64(899900), line.PriceCents)
	assert.Equal(t, "Dell", line.Brand)
	assert.Equal(t, 8, line.StockQuantity)
	assert.True(t, line.InStock)
}

// Quantity never exceeds the known stock, whatever sequence of adds and
// updates runs against it.
func TestStockCeiling(t *testing.T) {
	const stock = 4
	store := New(&memPersistence{}, nil)

	for i := 0; i < 10; i++ {
		_ = store.AddItem(laptop(stock), 1)
	}
	assert.Equal(t, stock, store.QuantityOf("p-laptop"))

	_ = store.UpdateQuantity("p-laptop", 9, stock)
	assert.Equal(t, stock, store.QuantityOf("p-laptop"))
}

// A rejected mutation leaves the cart byte-for-byte unchanged.
func TestRejectWithoutMutate(t *testing.T) {
	store := New(&memPersistence{}, nil)
	require.NoError(t, store.AddItem(laptop(4), 2))
	before := store.Cart()

	assert.ErrorIs(t, store.AddItem(laptop(4), 3), domain.ErrInsufficientStock)
	assert.ErrorIs(t, store.AddItem(laptop(4), 0), domain.ErrInvalidQuantity)
	assert.ErrorIs(t, store.AddItem(laptop(4), -1), domain.ErrInvalidQuantity)
	assert.ErrorIs(t, store.UpdateQuantity("p-laptop", 5, 4), domain.ErrInsufficientStock)

	assert.Equal(t, before, store.Cart())
}

// Totals are always the fold over lines, after every mutation.
func TestTotalsDerivedFromLines(t *testing.T) {
	store := New(&memPersistence{}, nil)

	check := func() {
		cart := store.Cart()
		items := 0
		var cents int64
		for _, line := range cart.Lines {
			items += line.Quantity
			cents += line.PriceCents * int64(line.Quantity)
		}
		assert.Equal(t, items, cart.TotalItems)
		assert.Equal(t, cents, cart.TotalCents)
	}

	require.NoError(t, store.AddItem(laptop(8), 2))
	check()
	require.NoError(t, store.AddItem(phone(15), 1))
	check()
	require.NoError(t, store.UpdateQuantity("p-laptop", 5, 8))
	check()
	store.RemoveItem("p-phone")
	check()
	store.Clear()
	check()
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	store := New(&memPersistence{}, nil)
	require.NoError(t, store.AddItem(laptop(8), 2))

	require.NoError(t, store.UpdateQuantity("p-laptop", 0, 8))
	assert.Empty(t, store.Cart().Lines)

	require.NoError(t, store.AddItem(laptop(8), 2))
	require.NoError(t, store.UpdateQuantity("p-laptop", -3, 8))
	assert.Empty(t, store.Cart().Lines)
}

func TestUpdateQuantityRefreshesStockSnapshot(t *testing.T) {
	store := New(&memPersistence{}, nil)
	require.NoError(t, store.AddItem(laptop(8), 2))

	require.NoError(t, store.UpdateQuantity("p-laptop", 3, 6))
	line := store.Cart().Lines[0]
	assert.Equal(t, 3, line.Quantity)
	assert.Equal(t, 6, line.StockQuantity)
}

func TestRemoveItemIdempotent(t *testing.T) {
	store := New(&memPersistence{}, nil)
	require.NoError(t, store.AddItem(laptop(8), 2))
	before := store.Cart()

	store.RemoveItem("no-such-product")
	assert.Equal(t, before, store.Cart())

	store.RemoveItem("p-laptop")
	store.RemoveItem("p-laptop")
	assert.Empty(t, store.Cart().Lines)
}

// Reconciliation clamps quantities down to fresh stock and drops lines
// whose product vanished or sold out; it never raises a quantity.
func TestReconcile(t *testing.T) {
	store := New(&memPersistence{}, nil)
	require.NoError(t, store.AddItem(laptop(8), 5))
	require.NoError(t, store.AddItem(phone(15), 3))

	store.Reconcile([]domain.Product{laptop(2)})

	cart := store.Cart()
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "p-laptop", cart.Lines[0].ProductID)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, 2, cart.Lines[0].StockQuantity)

	store.Reconcile([]domain.Product{laptop(0)})
	assert.Empty(t, store.Cart().Lines)
}

func TestReconcileKeepsValidLines(t *testing.T) {
	store := New(&memPersistence{}, nil)
	require.NoError(t, store.AddItem(laptop(8), 2))

	store.Reconcile([]domain.Product{laptop(8), phone(15)})

	cart := store.Cart()
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
}

func TestMutationsPersist(t *testing.T) {
	persist := &memPersistence{}
	store := New(persist, nil)

	require.NoError(t, store.AddItem(laptop(8), 1))
	require.NoError(t, store.UpdateQuantity("p-laptop", 2, 8))
	store.RemoveItem("p-laptop")

	assert.Equal(t, 3, persist.writeCnt)
	assert.Empty(t, persist.lastWrite)
}

func TestAddItemSurfacesPersistError(t *testing.T) {
	store := New(&memPersistence{writeErr: errors.New("disk full")}, nil)

	err := store.AddItem(laptop(8), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestAvailableStock(t *testing.T) {
	store := New(&memPersistence{}, nil)
	require.NoError(t, store.AddItem(laptop(8), 3))

	assert.Equal(t, 5, store.AvailableStock("p-laptop", 8))
	assert.Equal(t, 0, store.AvailableStock("p-laptop", 2))
	assert.Equal(t, 8, store.AvailableStock("p-phone", 8))
}

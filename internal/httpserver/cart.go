package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"techhub-store/internal/domain"
)

const (
	sessionHeader = "X-Session-ID"
	userHeader    = "X-User-ID"
)

// sessionID resolves the caller's cart session, minting a fresh id when
// none is presented. The id is always echoed back so the client can keep
// it.
func sessionID(c *gin.Context) string {
	id := strings.TrimSpace(c.GetHeader(sessionHeader))
	if id == "" {
		id = uuid.NewString()
	}
	c.Header(sessionHeader, id)
	return id
}

// getCartHandler returns the session cart. The catalog is refreshed first
// and the cart reconciled against it, so stale lines shrink toward truth
// on every read.
func getCartHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := deps.Carts.ForSession(sessionID(c))
		store.Reconcile(deps.Catalog.LoadProducts(c.Request.Context()))
		c.JSON(http.StatusOK, store.Cart())
	}
}

type addCartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func addCartItemHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ProductID) == "" {
			jsonError(c, http.StatusBadRequest, "productId required")
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}

		product, err := deps.ProductSvc.Get(c.Request.Context(), req.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				jsonError(c, http.StatusNotFound, "product not found")
				return
			}
			jsonError(c, http.StatusInternalServerError, "failed to load product")
			return
		}

		store := deps.Carts.ForSession(sessionID(c))
		if err := store.AddItem(*product, req.Quantity); err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, store.Cart())
	}
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func updateCartItemHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			jsonError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		productID := c.Param("productId")
		store := deps.Carts.ForSession(sessionID(c))

		// A non-positive quantity is an implicit remove; no stock lookup
		// is needed for that.
		if req.Quantity <= 0 {
			store.RemoveItem(productID)
			c.JSON(http.StatusOK, store.Cart())
			return
		}

		product, err := deps.ProductSvc.Get(c.Request.Context(), productID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				jsonError(c, http.StatusNotFound, "product not found")
				return
			}
			jsonError(c, http.StatusInternalServerError, "failed to load product")
			return
		}
		if err := store.UpdateQuantity(productID, req.Quantity, product.StockQuantity); err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, store.Cart())
	}
}

func removeCartItemHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := deps.Carts.ForSession(sessionID(c))
		store.RemoveItem(c.Param("productId"))
		c.JSON(http.StatusOK, store.Cart())
	}
}

func clearCartHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := deps.Carts.ForSession(sessionID(c))
		store.Clear()
		c.JSON(http.StatusOK, store.Cart())
	}
}

func respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		jsonError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrInsufficientStock):
		jsonError(c, http.StatusConflict, err.Error())
	default:
		jsonError(c, http.StatusInternalServerError, "failed to update cart")
	}
}

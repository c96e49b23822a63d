package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"techhub-store/internal/domain"
)

type checkoutRequest struct {
	UserID  string         `json:"userId"`
	Payment paymentRequest `json:"payment"`
}

type paymentRequest struct {
	Type         string `json:"type"`
	Number       string `json:"number"`
	Holder       string `json:"holder"`
	Expiry       string `json:"expiry"`
	CVV          string `json:"cvv"`
	Installments int    `json:"installments"`
	CPF          string `json:"cpf"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
}

func (r paymentRequest) toDomain() (domain.Payment, error) {
	switch r.Type {
	case "credit":
		return domain.CardPayment{
			Number:       r.Number,
			Holder:       r.Holder,
			Expiry:       r.Expiry,
			CVV:          r.CVV,
			Installments: r.Installments,
		}, nil
	case "boleto":
		return domain.BoletoPayment{CPF: r.CPF, Email: r.Email}, nil
	case "pix":
		return domain.PixPayment{CPF: r.CPF, Email: r.Email, Phone: r.Phone}, nil
	default:
		return nil, errors.New("unsupported payment type")
	}
}

// checkoutHandler places an order from the session cart. Stock and
// missing-product rejections are safe to retry; persistence and stock
// update failures mean the order may be in an inconsistent state, which
// the response states explicitly.
func checkoutHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			jsonError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		userID := strings.TrimSpace(req.UserID)
		if userID == "" {
			userID = strings.TrimSpace(c.GetHeader(userHeader))
		}
		if userID == "" {
			jsonError(c, http.StatusBadRequest, "userId required")
			return
		}
		payment, err := req.Payment.toDomain()
		if err != nil {
			jsonError(c, http.StatusBadRequest, err.Error())
			return
		}

		store := deps.Carts.ForSession(sessionID(c))
		orderNumber, err := deps.Checkout.PlaceOrder(c.Request.Context(), userID, store, payment)
		if err != nil {
			respondCheckoutError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"orderNumber": orderNumber})
	}
}

func respondCheckoutError(c *gin.Context, err error) {
	var outOfStock *domain.OutOfStockError
	var gone *domain.ProductGoneError
	var persistence *domain.OrderPersistenceError
	var stockUpdate *domain.StockUpdateError

	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		jsonError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &outOfStock), errors.As(err, &gone):
		jsonError(c, http.StatusConflict, err.Error())
	case errors.As(err, &persistence):
		jsonError(c, http.StatusBadGateway, "failed to process order, no charge was made; please retry")
	case errors.As(err, &stockUpdate):
		jsonError(c, http.StatusBadGateway, "order processing failed partway; the order may be in an inconsistent state")
	default:
		jsonError(c, http.StatusInternalServerError, "failed to process order")
	}
}

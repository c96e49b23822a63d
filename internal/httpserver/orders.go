package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"techhub-store/internal/domain"
)

func listOrdersHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.Query("userId"))
		if userID == "" {
			userID = strings.TrimSpace(c.GetHeader(userHeader))
		}
		if userID == "" {
			jsonError(c, http.StatusBadRequest, "userId required")
			return
		}
		orders, err := deps.OrderSvc.UserOrders(c.Request.Context(), userID)
		if err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to load orders")
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, orders)
	}
}

func getOrderHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := deps.OrderSvc.ByNumber(c.Request.Context(), c.Param("orderNumber"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				jsonError(c, http.StatusNotFound, "order not found")
				return
			}
			jsonError(c, http.StatusInternalServerError, "failed to load order")
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

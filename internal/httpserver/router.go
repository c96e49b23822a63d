package httpserver

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"techhub-store/internal/cartstore"
	"techhub-store/internal/catalog"
	"techhub-store/internal/checkout"
	ordersvc "techhub-store/internal/service/order"
	productsvc "techhub-store/internal/service/product"
)

// Deps collects the services the routes are built from.
type Deps struct {
	ProductSvc *productsvc.Service
	OrderSvc   *ordersvc.Service
	Catalog    *catalog.Catalog
	Carts      *cartstore.Manager
	Checkout   *checkout.Processor
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *logrus.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:    []string{"Origin", "Content-Type", sessionHeader, userHeader},
		ExposeHeaders:   []string{sessionHeader},
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	{
		api.GET("/products", listProductsHandler(deps))
		api.GET("/products/:id", getProductHandler(deps))
		api.POST("/products", createProductHandler(deps))
		api.PUT("/products/:id", updateProductHandler(deps))
		api.DELETE("/products/:id", deleteProductHandler(deps))
		api.PATCH("/products/:id/stock", setStockHandler(deps))

		api.GET("/cart", getCartHandler(deps))
		api.POST("/cart/items", addCartItemHandler(deps))
		api.PATCH("/cart/items/:productId", updateCartItemHandler(deps))
		api.DELETE("/cart/items/:productId", removeCartItemHandler(deps))
		api.DELETE("/cart", clearCartHandler(deps))

		api.POST("/checkout", checkoutHandler(deps))

		api.GET("/orders", listOrdersHandler(deps))
		api.GET("/orders/:orderNumber", getOrderHandler(deps))
	}

	return router
}

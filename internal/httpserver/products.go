package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"techhub-store/internal/catalog"
	"techhub-store/internal/domain"
	productrepo "techhub-store/internal/repository/product"
	productsvc "techhub-store/internal/service/product"
)

type productResponse struct {
	domain.Product
	StockStatus string `json:"stockStatus"`
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{Product: p, StockStatus: productsvc.StockStatus(p.StockQuantity)}
}

// listProductsHandler serves the browsable catalog: a full refresh,
// newest first, optionally narrowed by query filters. A storage failure
// degrades to an empty list.
func listProductsHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := deps.Catalog.LoadProducts(c.Request.Context())
		filtered := catalog.Filter(products, catalog.Filters{
			Search:      c.Query("search"),
			Category:    c.Query("category"),
			MinCents:    queryInt64(c, "minPriceCents"),
			MaxCents:    queryInt64(c, "maxPriceCents"),
			InStockOnly: c.Query("inStock") == "true",
			SortBy:      c.Query("sort"),
		})
		out := make([]productResponse, 0, len(filtered))
		for _, p := range filtered {
			out = append(out, toProductResponse(p))
		}
		c.JSON(http.StatusOK, out)
	}
}

func getProductHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := deps.ProductSvc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				jsonError(c, http.StatusNotFound, "product not found")
				return
			}
			jsonError(c, http.StatusInternalServerError, "failed to load product")
			return
		}
		c.JSON(http.StatusOK, toProductResponse(*p))
	}
}

type createProductRequest struct {
	Name               string `json:"name"`
	Description        string `json:"description"`
	PriceCents         int64  `json:"priceCents"`
	OriginalPriceCents *int64 `json:"originalPriceCents"`
	Image              string `json:"image"`
	Category           string `json:"category"`
	Brand              string `json:"brand"`
	Rating             int    `json:"rating"`
	StockQuantity      int    `json:"stockQuantity"`
}

func createProductHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			jsonError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		p, err := deps.ProductSvc.Create(c.Request.Context(), productrepo.CreateInput{
			Name:               req.Name,
			Description:        req.Description,
			PriceCents:         req.PriceCents,
			OriginalPriceCents: req.OriginalPriceCents,
			Image:              req.Image,
			Category:           req.Category,
			Brand:              req.Brand,
			Rating:             req.Rating,
			StockQuantity:      req.StockQuantity,
		})
		if err != nil {
			jsonError(c, http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusCreated, toProductResponse(*p))
	}
}

type updateProductRequest struct {
	Name               *string `json:"name"`
	Description        *string `json:"description"`
	PriceCents         *int64  `json:"priceCents"`
	OriginalPriceCents *int64  `json:"originalPriceCents"`
	Image              *string `json:"image"`
	Category           *string `json:"category"`
	Brand              *string `json:"brand"`
	Rating             *int    `json:"rating"`
	StockQuantity      *int    `json:"stockQuantity"`
}

func updateProductHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			jsonError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		p, err := deps.ProductSvc.Update(c.Request.Context(), c.Param("id"), productrepo.UpdateInput{
			Name:               req.Name,
			Description:        req.Description,
			PriceCents:         req.PriceCents,
			OriginalPriceCents: req.OriginalPriceCents,
			Image:              req.Image,
			Category:           req.Category,
			Brand:              req.Brand,
			Rating:             req.Rating,
			StockQuantity:      req.StockQuantity,
		})
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				jsonError(c, http.StatusNotFound, "product not found")
				return
			}
			jsonError(c, http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusOK, toProductResponse(*p))
	}
}

func deleteProductHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.ProductSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				jsonError(c, http.StatusNotFound, "product not found")
				return
			}
			jsonError(c, http.StatusInternalServerError, "failed to delete product")
			return
		}
		c.Status(http.StatusNoContent)
	}
}

type setStockRequest struct {
	StockQuantity *int `json:"stockQuantity"`
}

func setStockHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setStockRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.StockQuantity == nil {
			jsonError(c, http.StatusBadRequest, "stockQuantity required")
			return
		}
		if err := deps.ProductSvc.SetStock(c.Request.Context(), c.Param("id"), *req.StockQuantity); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				jsonError(c, http.StatusNotFound, "product not found")
				return
			}
			jsonError(c, http.StatusBadRequest, err.Error())
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func queryInt64(c *gin.Context, key string) int64 {
	raw := c.Query(key)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campusgo/campus-market/internal/core/domain"
	"github.com/campusgo/campus-market/internal/core/service"
)

type ProductHandler struct {
	products *service.ProductService
}

func NewProductHandler(products *service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

type publishRequest struct {
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	CategoryID  int64   `json:"category_id"`
	UserID      int64   `json:"user_id"`
	Description string  `json:"description"`
}

// List answers with a bare {products, count} body; filter values that do not
// parse are ignored rather than rejected.
func (h *ProductHandler) List(c *gin.Context) {
	filter := domain.ProductFilter{}

	if raw := c.Query("category_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.CategoryID = &id
		}
	}
	if raw := c.Query("min_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &v
		}
	}
	if raw := c.Query("max_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &v
		}
	}

	products := h.products.List(c.Request.Context(), filter)
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

func (h *ProductHandler) Publish(c *gin.Context) {
	var req publishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	req.ProductName = strings.TrimSpace(req.ProductName)
	switch {
	case req.ProductName == "":
		respondError(c, http.StatusBadRequest, "product name must not be empty")
		return
	case req.Price <= 0:
		respondError(c, http.StatusBadRequest, "price must be greater than 0")
		return
	case req.CategoryID == 0:
		respondError(c, http.StatusBadRequest, "please select a category")
		return
	case req.UserID == 0:
		respondError(c, http.StatusBadRequest, "invalid user")
		return
	}

	id, err := h.products.Publish(c.Request.Context(), domain.NewProduct{
		Name:        req.ProductName,
		Price:       req.Price,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		OwnerID:     req.UserID,
	})
	switch {
	case errors.Is(err, domain.ErrStorageUnavailable):
		respondError(c, http.StatusInternalServerError, "database connection failed")
	case err != nil:
		respondError(c, http.StatusInternalServerError, "publish failed")
	default:
		respondOK(c, "published successfully", gin.H{"product_id": id})
	}
}

func (h *ProductHandler) Categories(c *gin.Context) {
	categories := h.products.Categories(c.Request.Context())
	respondOK(c, "", gin.H{"categories": categories})
}

func (h *ProductHandler) UserProducts(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid user id")
		return
	}

	products, err := h.products.UserProducts(c.Request.Context(), userID)
	switch {
	case errors.Is(err, domain.ErrStorageUnavailable):
		respondError(c, http.StatusInternalServerError, "database connection failed")
	case err != nil:
		respondError(c, http.StatusInternalServerError, "query failed")
	default:
		respondOK(c, "", gin.H{
			"products": products,
			"count":    len(products),
		})
	}
}

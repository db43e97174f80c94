package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusgo/campus-market/internal/core/domain"
	"github.com/campusgo/campus-market/internal/core/service"
)

type FavoriteHandler struct {
	favorites *service.FavoriteService
}

func NewFavoriteHandler(favorites *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

type toggleFavoriteRequest struct {
	UserID    int64 `json:"user_id"`
	ProductID int64 `json:"product_id"`
}

func (h *FavoriteHandler) Toggle(c *gin.Context) {
	var req toggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == 0 || req.ProductID == 0 {
		respondError(c, http.StatusBadRequest, "missing parameters")
		return
	}

	isFavorite, err := h.favorites.Toggle(c.Request.Context(), req.UserID, req.ProductID)
	switch {
	case errors.Is(err, domain.ErrStorageUnavailable):
		respondError(c, http.StatusInternalServerError, "database connection failed")
	case err != nil:
		respondError(c, http.StatusInternalServerError, "operation failed")
	default:
		message := "favorite removed"
		if isFavorite {
			message = "favorite added"
		}
		respondOK(c, message, gin.H{"is_favorite": isFavorite})
	}
}

func (h *FavoriteHandler) UserFavorites(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid user id")
		return
	}

	favorites, err := h.favorites.UserFavorites(c.Request.Context(), userID)
	switch {
	case errors.Is(err, domain.ErrStorageUnavailable):
		respondError(c, http.StatusInternalServerError, "database connection failed")
	case err != nil:
		respondError(c, http.StatusInternalServerError, "query failed")
	default:
		respondOK(c, "", gin.H{
			"favorites": favorites,
			"count":     len(favorites),
		})
	}
}

func (h *FavoriteHandler) CheckFavorite(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid user id")
		return
	}
	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid product id")
		return
	}

	isFavorite, err := h.favorites.IsFavorite(c.Request.Context(), userID, productID)
	switch {
	case errors.Is(err, domain.ErrStorageUnavailable):
		respondError(c, http.StatusInternalServerError, "database connection failed")
	case err != nil:
		respondError(c, http.StatusInternalServerError, "query failed")
	default:
		respondOK(c, "", gin.H{"is_favorite": isFavorite})
	}
}

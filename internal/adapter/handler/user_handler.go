package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campusgo/campus-market/internal/core/domain"
	"github.com/campusgo/campus-market/internal/core/service"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)
	if username == "" || password == "" {
		respondError(c, http.StatusBadRequest, "username and password must not be empty")
		return
	}

	u, err := h.users.Login(c.Request.Context(), username, password)
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "incorrect username or password")
	case errors.Is(err, domain.ErrStorageUnavailable):
		respondError(c, http.StatusInternalServerError, "database connection failed")
	case err != nil:
		respondError(c, http.StatusInternalServerError, "internal server error")
	default:
		respondOK(c, "login successful", gin.H{
			"user_id":  u.ID,
			"username": u.Username,
			"email":    u.Email,
		})
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)
	email := strings.TrimSpace(req.Email)

	if username == "" || password == "" {
		respondError(c, http.StatusBadRequest, "username and password must not be empty")
		return
	}
	if len(password) < 6 {
		respondError(c, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}

	u, err := h.users.Register(c.Request.Context(), username, password, email)
	switch {
	case errors.Is(err, domain.ErrDuplicateUsername):
		respondError(c, http.StatusBadRequest, "username already exists")
	case errors.Is(err, domain.ErrStorageUnavailable):
		respondError(c, http.StatusInternalServerError, "database connection failed")
	case err != nil:
		respondError(c, http.StatusInternalServerError, "registration failed")
	default:
		respondOK(c, "registration successful", gin.H{
			"user_id":  u.ID,
			"username": u.Username,
		})
	}
}

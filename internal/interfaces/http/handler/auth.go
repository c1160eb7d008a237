package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/procure/backend/internal/application/identity"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/procure/backend/internal/interfaces/http/dto"
)

// AuthHandler handles signup and login endpoints. Outcomes, success and
// failure alike, use the {success, message} shape rather than the resource
// error body.
type AuthHandler struct {
	BaseHandler
	authService *identity.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identity.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/signup", h.Signup)
	rg.POST("/login", h.Login)
}

// Signup handles POST /signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req identity.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewAuthResponse(false, "Invalid request body"))
		return
	}

	result, err := h.authService.Signup(c.Request.Context(), req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAuthResponse(true, result.Message))
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req identity.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewAuthResponse(false, "Invalid request body"))
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAuthResponse(true, result.Message))
}

// handleAuthError maps a domain error onto the auth outcome shape
func (h *AuthHandler) handleAuthError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(dto.GetHTTPStatus(domainErr.Code), dto.NewAuthResponse(false, domainErr.Message))
		return
	}
	c.JSON(http.StatusInternalServerError, dto.NewAuthResponse(false, "Internal server error"))
}

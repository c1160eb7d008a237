package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/procure/backend/internal/interfaces/http/dto"
)

// BaseHandler provides common handler utilities. Resource endpoints speak
// raw record bodies and {"error": message} failures; the auth handler has
// its own outcome shape.
type BaseHandler struct{}

// OK sends a raw 200 response
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a raw 201 response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends a 204 response with an empty body
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error body with the given status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.NewErrorBody(message))
}

// BadRequest sends a 400 error body
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, message)
}

// InternalError sends a 500 error body
func (h *BaseHandler) InternalError(c *gin.Context) {
	h.Error(c, http.StatusInternalServerError, "Internal server error")
}

// HandleDomainError maps a domain error to its HTTP status and error body.
// Anything that is not a domain error surfaces as a 500.
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(dto.GetHTTPStatus(domainErr.Code), dto.NewErrorBody(domainErr.Message))
		return
	}
	h.InternalError(c)
}

// parseID parses a path parameter as a record ID
func parseID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// isValidationError reports whether a binding failure came from field
// validation rather than malformed JSON
func isValidationError(err error) bool {
	var validationErrs validator.ValidationErrors
	return errors.As(err, &validationErrs)
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fabrica/internal/core/apperror"
	"fabrica/internal/core/appctx"
	"fabrica/internal/core/id"
	"fabrica/internal/infrastructure/http/v1/dto"
)

// BaseHandler provides common handler utilities.
type BaseHandler struct{}

// NewBaseHandler creates a new base handler.
func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// BindJSON binds and validates JSON request body.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.Error(c, apperror.NewValidation("invalid request body").WithDetail("error", err.Error()))
		return false
	}
	return true
}

// Error registers the error on the Gin context and aborts the request.
// The JSON response is produced by middleware.ErrorHandler (single source of truth).
func (h *BaseHandler) Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ParseIntQuery parses an integer query parameter with a default value.
func (h *BaseHandler) ParseIntQuery(c *gin.Context, key string, defaultVal int) int {
	val := c.Query(key)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return parsed
}

// ParseIDParam parses a path parameter as an entity ID.
func (h *BaseHandler) ParseIDParam(c *gin.Context, key string) (id.ID, bool) {
	parsed, err := id.Parse(c.Param(key))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format").WithDetail("param", key))
		return id.Nil(), false
	}
	return parsed, true
}

// Actor returns the acting user's ID from the request context.
func (h *BaseHandler) Actor(c *gin.Context) id.ID {
	return appctx.GetActor(c.Request.Context())
}

// parseQueryID parses a query-string value as an entity ID.
func parseQueryID(raw string) (id.ID, error) {
	parsed, err := id.Parse(raw)
	if err != nil {
		return id.Nil(), apperror.NewValidation("invalid id format").WithDetail("value", raw)
	}
	return parsed, nil
}

// Created sends a 201 response with data.
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// OK sends a 200 response with data.
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// NoContent sends a 204 response.
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Success sends a success response.
func (h *BaseHandler) Success(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: message})
}

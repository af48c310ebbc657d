package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoriesCarryCodeAndStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		code   string
		status int
	}{
		{"validation", NewValidation("bad input"), CodeValidation, http.StatusBadRequest},
		{"not found", NewNotFound("order", "42"), CodeNotFound, http.StatusNotFound},
		{"invalid quantity", NewInvalidQuantity(0), CodeInvalidQuantity, http.StatusUnprocessableEntity},
		{"insufficient stock", NewInsufficientStock("b", 8, 5), CodeInsufficientStock, http.StatusUnprocessableEntity},
		{"requirements not met", NewRequirementsNotMet("p"), CodeRequirementsNotMet, http.StatusUnprocessableEntity},
		{"invalid discount", NewInvalidDiscount(20, 25), CodeInvalidDiscount, http.StatusUnprocessableEntity},
		{"already delivered", NewAlreadyDelivered("o"), CodeAlreadyDelivered, http.StatusUnprocessableEntity},
		{"conflict", NewConflict("busy"), CodeConflict, http.StatusConflict},
		{"duplicate", NewDuplicate("product", "code"), CodeDuplicate, http.StatusConflict},
		{"concurrent modification", NewConcurrentModification("order", "42"), CodeConcurrentModification, http.StatusConflict},
		{"unauthorized", NewUnauthorized("no token"), CodeUnauthorized, http.StatusUnauthorized},
		{"forbidden", NewForbidden("no access"), CodeForbidden, http.StatusForbidden},
		{"internal", NewInternal(errors.New("boom")), CodeInternal, http.StatusInternalServerError},
		{"database", NewDatabase(errors.New("boom")), CodeDatabase, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
		})
	}
}

func TestWithDetail(t *testing.T) {
	err := NewValidation("bad input").
		WithDetail("field", "quantity").
		WithDetail("hint", "must be positive")

	assert.Equal(t, "quantity", err.Details["field"])
	assert.Equal(t, "must be positive", err.Details["hint"])
}

func TestInsufficientStockDetails(t *testing.T) {
	err := NewInsufficientStock("batch-1", int64(8), int64(5))

	assert.Equal(t, "batch-1", err.Details["offered_product_id"])
	assert.Equal(t, int64(8), err.Details["requested"])
	assert.Equal(t, int64(5), err.Details["available"])
}

func TestErrorStringIncludesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternal(cause)

	assert.Contains(t, err.Error(), CodeInternal)
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestAsAppErrorThroughWrapping(t *testing.T) {
	orig := NewNotFound("order", "42")
	wrapped := fmt.Errorf("load order: %w", orig)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, appErr.Code)

	assert.True(t, IsAppError(wrapped))
	assert.True(t, IsNotFound(wrapped))
}

func TestInspectionHelpers(t *testing.T) {
	assert.True(t, IsDuplicate(NewDuplicate("product", "code")))
	assert.True(t, IsInsufficientStock(NewInsufficientStock("b", 1, 0)))
	assert.True(t, IsRequirementsNotMet(NewRequirementsNotMet("p")))

	assert.False(t, IsNotFound(NewValidation("nope")))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsAppError(errors.New("plain")))
	assert.False(t, IsAppError(nil))
}

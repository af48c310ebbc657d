package handlers

import (
	"github.com/gin-gonic/gin"

	"fabrica/internal/core/apperror"
	"fabrica/internal/core/appctx"
	"fabrica/internal/domain"
	"fabrica/internal/domain/auth"
	"fabrica/internal/infrastructure/http/v1/dto"
)

// AuthHandler handles authentication and user management.
type AuthHandler struct {
	*BaseHandler
	service *auth.Service
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(base *BaseHandler, service *auth.Service) *AuthHandler {
	return &AuthHandler{BaseHandler: base, service: service}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	tokens, user, err := h.service.Login(ctx, req.ToCredentials())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromTokenPair(tokens, user))
}

// Refresh handles POST /auth/refresh.
func (h *AuthHandler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RefreshTokenRequest
	if !h.BindJSON(c, &req) {
		return
	}

	tokens, err := h.service.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromTokenPair(tokens, nil))
}

// Logout handles POST /auth/logout, revoking the user's refresh tokens.
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	user := appctx.GetUser(ctx)
	if user == nil {
		h.Error(c, apperror.NewUnauthorized("authentication required"))
		return
	}

	if err := h.service.Logout(ctx, user.UserID); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "logged out")
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	userCtx := appctx.GetUser(ctx)
	if userCtx == nil {
		h.Error(c, apperror.NewUnauthorized("authentication required"))
		return
	}

	user, err := h.service.GetUserByID(ctx, userCtx.UserID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromUser(user))
}

// Register handles POST /users, creating a new user account.
func (h *AuthHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RegisterUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.service.Register(ctx, req.ToRegisterRequest())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromUser(user))
}

// ListUsers handles GET /users.
func (h *AuthHandler) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()

	filter := domain.DefaultListFilter()
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "username")
	filter.IncludeInactive = c.Query("includeInactive") == "true"

	result, err := h.service.ListUsers(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, u := range result.Items {
		items[i] = dto.FromUser(u)
	}

	h.OK(c, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// GetUser handles GET /users/:id.
func (h *AuthHandler) GetUser(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.service.GetUserByID(ctx, userID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromUser(user))
}

// SetRole handles PUT /users/:id/role.
func (h *AuthHandler) SetRole(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SetRoleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.service.SetRole(ctx, userID, req.Role)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromUser(user))
}

// Deactivate handles DELETE /users/:id, disabling the account and
// revoking its tokens.
func (h *AuthHandler) Deactivate(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Deactivate(ctx, userID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

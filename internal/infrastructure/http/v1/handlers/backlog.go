package handlers

import (
	"github.com/gin-gonic/gin"

	"fabrica/internal/domain/backlog"
	"fabrica/internal/infrastructure/http/v1/dto"
)

// BacklogHandler exposes raw CRUD over the unmet-demand queue. Order
// rejections and production runs drive the queue in the normal flow;
// the write endpoints let operators record or correct demand by hand.
type BacklogHandler struct {
	*BaseHandler
	service *backlog.Service
}

// NewBacklogHandler creates a backlog handler.
func NewBacklogHandler(base *BaseHandler, service *backlog.Service) *BacklogHandler {
	return &BacklogHandler{BaseHandler: base, service: service}
}

// List handles GET /backlog. A productId query narrows the list to one
// product's entries; the default order is oldest first, matching the
// drain order.
func (h *BacklogHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := h.ParseListFilter(c, "created_at")

	if raw := c.Query("productId"); raw != "" {
		productID, err := parseQueryID(raw)
		if err != nil {
			h.Error(c, err)
			return
		}
		filter.ProductID = &productID
	}

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, e := range result.Items {
		items[i] = dto.FromBacklogEntry(e)
	}

	h.OK(c, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /backlog/:id.
func (h *BacklogHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	entryID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	entry, err := h.service.GetByID(ctx, entryID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromBacklogEntry(entry))
}

// Create handles POST /backlog.
func (h *BacklogHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateBacklogEntryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	entry := req.ToEntity()
	if err := h.service.Create(ctx, entry, h.Actor(c)); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromBacklogEntry(entry))
}

// Update handles PUT /backlog/:id.
func (h *BacklogHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	entryID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBacklogEntryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	entry, err := h.service.GetByID(ctx, entryID)
	if err != nil {
		h.Error(c, err)
		return
	}

	req.ApplyTo(entry)

	if err := h.service.Update(ctx, entry, h.Actor(c)); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromBacklogEntry(entry))
}

// Delete handles DELETE /backlog/:id.
func (h *BacklogHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	entryID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, entryID, h.Actor(c)); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"fabrica/internal/domain"
	"fabrica/internal/domain/order"
	"fabrica/internal/infrastructure/http/v1/dto"
)

// OrderHandler handles customer orders.
type OrderHandler struct {
	*BaseHandler
	service *order.Service
}

// NewOrderHandler creates an order handler.
func NewOrderHandler(base *BaseHandler, service *order.Service) *OrderHandler {
	return &OrderHandler{BaseHandler: base, service: service}
}

// Create handles POST /orders. Settlement happens here: the total is
// fixed from the current price and discount at creation time.
func (h *OrderHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ord, err := h.service.CreateOrder(ctx, req.ToInput(), h.Actor(c))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromOrder(ord))
}

// Update handles PATCH /orders/:id with partial updates, including the
// delivery transition.
func (h *OrderHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	orderID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ord, err := h.service.UpdateOrder(ctx, orderID, req.ToPatch(), h.Actor(c))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromOrder(ord))
}

// Get handles GET /orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	orderID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	ord, err := h.service.GetByID(ctx, orderID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromOrder(ord))
}

// List handles GET /orders. An offeredProductId query narrows the list
// to orders against one batch.
func (h *OrderHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := h.ParseListFilter(c, "-order_date")

	var (
		result domain.ListResult[*order.Order]
		err    error
	)
	if raw := c.Query("offeredProductId"); raw != "" {
		batchID, parseErr := parseQueryID(raw)
		if parseErr != nil {
			h.Error(c, parseErr)
			return
		}
		result, err = h.service.ListByOfferedProduct(ctx, batchID, filter)
	} else {
		result, err = h.service.List(ctx, filter)
	}
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{
		Items:      mapOrders(result.Items),
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Delete handles DELETE /orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	orderID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.CatalogService.Delete(ctx, orderID, h.Actor(c)); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

func mapOrders(orders []*order.Order) []any {
	items := make([]any, len(orders))
	for i, o := range orders {
		items[i] = dto.FromOrder(o)
	}
	return items
}

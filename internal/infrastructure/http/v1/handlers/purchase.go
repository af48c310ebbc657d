package handlers

import (
	"github.com/gin-gonic/gin"

	"fabrica/internal/domain"
	"fabrica/internal/domain/purchase"
	"fabrica/internal/infrastructure/http/v1/dto"
)

// PurchaseHandler handles raw material purchases.
type PurchaseHandler struct {
	*BaseHandler
	service *purchase.Service
}

// NewPurchaseHandler creates a purchase handler.
func NewPurchaseHandler(base *BaseHandler, service *purchase.Service) *PurchaseHandler {
	return &PurchaseHandler{BaseHandler: base, service: service}
}

// Create handles POST /purchases.
func (h *PurchaseHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreatePurchaseRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p, err := h.service.CreatePurchase(ctx, req.SupplierID, req.RawMaterialID, req.Quantity, h.Actor(c))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromPurchase(p))
}

// Update handles PATCH /purchases/:id with partial updates, including
// the receipt transition that credits raw material stock.
func (h *PurchaseHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	purchaseID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePurchaseRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p, err := h.service.UpdatePurchase(ctx, purchaseID, req.ToPatch(), h.Actor(c))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromPurchase(p))
}

// Get handles GET /purchases/:id.
func (h *PurchaseHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	purchaseID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	p, err := h.service.GetByID(ctx, purchaseID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromPurchase(p))
}

// List handles GET /purchases. A supplierId query narrows the list to
// one supplier's purchases.
func (h *PurchaseHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := h.ParseListFilter(c, "-order_date")

	var (
		result domain.ListResult[*purchase.Purchase]
		err    error
	)
	if raw := c.Query("supplierId"); raw != "" {
		supplierID, parseErr := parseQueryID(raw)
		if parseErr != nil {
			h.Error(c, parseErr)
			return
		}
		result, err = h.service.ListBySupplier(ctx, supplierID, filter)
	} else {
		result, err = h.service.List(ctx, filter)
	}
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{
		Items:      mapPurchases(result.Items),
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Delete handles DELETE /purchases/:id.
func (h *PurchaseHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	purchaseID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.CatalogService.Delete(ctx, purchaseID, h.Actor(c)); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

func mapPurchases(purchases []*purchase.Purchase) []any {
	items := make([]any, len(purchases))
	for i, p := range purchases {
		items[i] = dto.FromPurchase(p)
	}
	return items
}

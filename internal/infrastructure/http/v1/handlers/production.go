package handlers

import (
	"github.com/gin-gonic/gin"

	"fabrica/internal/core/apperror"
	"fabrica/internal/domain/offered"
	"fabrica/internal/infrastructure/http/v1/dto"
)

// ProductionHandler handles offered product batches and production runs.
type ProductionHandler struct {
	*CatalogHandler[*offered.Product, dto.ProduceRequest, dto.UpdateOfferedProductRequest]
	service *offered.Service
}

// NewProductionHandler creates a production handler.
func NewProductionHandler(base *BaseHandler, service *offered.Service) *ProductionHandler {
	catalog := NewCatalogHandler(base, CatalogHandlerConfig[*offered.Product, dto.ProduceRequest, dto.UpdateOfferedProductRequest]{
		Service:    service.CatalogService,
		EntityName: "offered_product",
		// Batches are created through Produce, not the generic create.
		MapCreateDTO: nil,
		MapUpdateDTO: func(req dto.UpdateOfferedProductRequest, existing *offered.Product) *offered.Product {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(p *offered.Product) any { return dto.FromOfferedProduct(p) },
	})

	return &ProductionHandler{
		CatalogHandler: catalog,
		service:        service,
	}
}

// Produce handles POST /production/runs. It consumes raw materials,
// serves the backlog and stores the remainder as a new batch.
func (h *ProductionHandler) Produce(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ProduceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	batch, _, err := h.service.Produce(ctx, req.ProductID, req.WarehouseID, req.Quantity, h.Actor(c))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.ProduceResponse{Batch: dto.FromOfferedProduct(batch)})
}

// Check handles POST /production/check, a dry-run requirement check
// that consumes nothing.
func (h *ProductionHandler) Check(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CheckRequirementsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.service.CheckRequirements(ctx, req.ProductID, req.Quantity)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromCheckResult(result))
}

// Create is not available for batches; Produce is the only way in.
func (h *ProductionHandler) Create(c *gin.Context) {
	h.Error(c, apperror.NewValidation("batches are created through production runs"))
}

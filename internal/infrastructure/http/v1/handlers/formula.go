package handlers

import (
	"github.com/gin-gonic/gin"

	"fabrica/internal/domain/formula"
	"fabrica/internal/infrastructure/http/v1/dto"
)

// FormulaHandler handles bill-of-material lines.
type FormulaHandler struct {
	*CatalogHandler[*formula.Line, dto.CreateFormulaLineRequest, dto.UpdateFormulaLineRequest]
	service *formula.Service
}

// NewFormulaHandler creates a formula handler.
func NewFormulaHandler(base *BaseHandler, service *formula.Service) *FormulaHandler {
	catalog := NewCatalogHandler(base, CatalogHandlerConfig[*formula.Line, dto.CreateFormulaLineRequest, dto.UpdateFormulaLineRequest]{
		Service:      service.CatalogService,
		EntityName:   "formula_line",
		DefaultOrder: "created_at",
		MapCreateDTO: func(req dto.CreateFormulaLineRequest) *formula.Line {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateFormulaLineRequest, existing *formula.Line) *formula.Line {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(l *formula.Line) any { return dto.FromFormulaLine(l) },
	})

	return &FormulaHandler{
		CatalogHandler: catalog,
		service:        service,
	}
}

// ListByProduct handles GET /products/:id/formula, returning the
// product's active bill of material.
func (h *FormulaHandler) ListByProduct(c *gin.Context) {
	ctx := c.Request.Context()

	productID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	lines, err := h.service.ListByProduct(ctx, productID)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(lines))
	for i, l := range lines {
		items[i] = dto.FromFormulaLine(l)
	}

	h.OK(c, dto.ListResponse{
		Items:      items,
		TotalCount: int64(len(lines)),
		Limit:      len(lines),
	})
}

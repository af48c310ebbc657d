package handlers

import (
	"fabrica/internal/domain/catalogs/price"
	"fabrica/internal/domain/catalogs/product"
	"fabrica/internal/domain/catalogs/rawmaterial"
	"fabrica/internal/domain/catalogs/supplier"
	"fabrica/internal/domain/catalogs/warehouse"
	"fabrica/internal/infrastructure/http/v1/dto"
)

// WarehouseHandler handles warehouse catalog requests.
type WarehouseHandler = CatalogHandler[*warehouse.Warehouse, dto.CreateWarehouseRequest, dto.UpdateWarehouseRequest]

// NewWarehouseHandler creates a warehouse handler.
func NewWarehouseHandler(base *BaseHandler, service *warehouse.Service) *WarehouseHandler {
	return NewCatalogHandler(base, CatalogHandlerConfig[*warehouse.Warehouse, dto.CreateWarehouseRequest, dto.UpdateWarehouseRequest]{
		Service:    service.CatalogService,
		EntityName: "warehouse",
		MapCreateDTO: func(req dto.CreateWarehouseRequest) *warehouse.Warehouse {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateWarehouseRequest, existing *warehouse.Warehouse) *warehouse.Warehouse {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(wh *warehouse.Warehouse) any { return dto.FromWarehouse(wh) },
	})
}

// SupplierHandler handles supplier catalog requests.
type SupplierHandler = CatalogHandler[*supplier.Supplier, dto.CreateSupplierRequest, dto.UpdateSupplierRequest]

// NewSupplierHandler creates a supplier handler.
func NewSupplierHandler(base *BaseHandler, service *supplier.Service) *SupplierHandler {
	return NewCatalogHandler(base, CatalogHandlerConfig[*supplier.Supplier, dto.CreateSupplierRequest, dto.UpdateSupplierRequest]{
		Service:    service.CatalogService,
		EntityName: "supplier",
		MapCreateDTO: func(req dto.CreateSupplierRequest) *supplier.Supplier {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateSupplierRequest, existing *supplier.Supplier) *supplier.Supplier {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(s *supplier.Supplier) any { return dto.FromSupplier(s) },
	})
}

// ProductHandler handles product catalog requests.
type ProductHandler = CatalogHandler[*product.Product, dto.CreateProductRequest, dto.UpdateProductRequest]

// NewProductHandler creates a product handler.
func NewProductHandler(base *BaseHandler, service *product.Service) *ProductHandler {
	return NewCatalogHandler(base, CatalogHandlerConfig[*product.Product, dto.CreateProductRequest, dto.UpdateProductRequest]{
		Service:    service.CatalogService,
		EntityName: "product",
		MapCreateDTO: func(req dto.CreateProductRequest) *product.Product {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateProductRequest, existing *product.Product) *product.Product {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(p *product.Product) any { return dto.FromProduct(p) },
	})
}

// RawMaterialHandler handles raw material catalog requests.
type RawMaterialHandler = CatalogHandler[*rawmaterial.RawMaterial, dto.CreateRawMaterialRequest, dto.UpdateRawMaterialRequest]

// NewRawMaterialHandler creates a raw material handler.
func NewRawMaterialHandler(base *BaseHandler, service *rawmaterial.Service) *RawMaterialHandler {
	return NewCatalogHandler(base, CatalogHandlerConfig[*rawmaterial.RawMaterial, dto.CreateRawMaterialRequest, dto.UpdateRawMaterialRequest]{
		Service:    service.CatalogService,
		EntityName: "raw_material",
		MapCreateDTO: func(req dto.CreateRawMaterialRequest) *rawmaterial.RawMaterial {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateRawMaterialRequest, existing *rawmaterial.RawMaterial) *rawmaterial.RawMaterial {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(m *rawmaterial.RawMaterial) any { return dto.FromRawMaterial(m) },
	})
}

// PriceHandler handles price catalog requests.
type PriceHandler = CatalogHandler[*price.Price, dto.CreatePriceRequest, dto.UpdatePriceRequest]

// NewPriceHandler creates a price handler.
func NewPriceHandler(base *BaseHandler, service *price.Service) *PriceHandler {
	return NewCatalogHandler(base, CatalogHandlerConfig[*price.Price, dto.CreatePriceRequest, dto.UpdatePriceRequest]{
		Service:      service.CatalogService,
		EntityName:   "price",
		DefaultOrder: "-created_at",
		MapCreateDTO: func(req dto.CreatePriceRequest) *price.Price {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdatePriceRequest, existing *price.Price) *price.Price {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(p *price.Price) any { return dto.FromPrice(p) },
	})
}

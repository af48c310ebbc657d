// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"fabrica/internal/infrastructure/http/v1/middleware"
)

// CatalogRouteHandler defines the interface for catalog handlers.
type CatalogRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// RegisterCatalogRoutes registers standard CRUD routes for a catalog,
// guarded by read and write permissions.
func RegisterCatalogRoutes(group *gin.RouterGroup, handler CatalogRouteHandler, readPerm, writePerm string) {
	group.GET("", middleware.RequirePermission(readPerm), handler.List)
	group.POST("", middleware.RequirePermission(writePerm), handler.Create)
	group.GET("/:id", middleware.RequirePermission(readPerm), handler.Get)
	group.PUT("/:id", middleware.RequirePermission(writePerm), handler.Update)
	group.DELETE("/:id", middleware.RequirePermission(writePerm), handler.Delete)
}

package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"fabrica/internal/domain/auth"
	"fabrica/internal/domain/backlog"
	"fabrica/internal/domain/catalogs/price"
	"fabrica/internal/domain/catalogs/product"
	"fabrica/internal/domain/catalogs/rawmaterial"
	"fabrica/internal/domain/catalogs/supplier"
	"fabrica/internal/domain/catalogs/warehouse"
	"fabrica/internal/domain/formula"
	"fabrica/internal/domain/offered"
	"fabrica/internal/domain/order"
	"fabrica/internal/domain/purchase"
	"fabrica/internal/infrastructure/http/v1/handlers"
	"fabrica/internal/infrastructure/http/v1/middleware"
	"fabrica/pkg/logger"
)

// RouterConfig carries the wired services the router exposes.
type RouterConfig struct {
	Logger       *logger.Logger
	Pool         *pgxpool.Pool
	JWTValidator middleware.JWTValidator

	AuthService *auth.Service

	Warehouses   *warehouse.Service
	Suppliers    *supplier.Service
	Products     *product.Service
	RawMaterials *rawmaterial.Service
	Prices       *price.Service

	Formulas *formula.Service
	Offered  *offered.Service
	Backlog  *backlog.Service

	Orders    *order.Service
	Purchases *purchase.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints, no auth required
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	router.GET("/healthz", healthHandler.Liveness)
	router.GET("/readyz", healthHandler.Readiness)

	base := handlers.NewBaseHandler()
	authHandler := handlers.NewAuthHandler(base, cfg.AuthService)

	api := router.Group("/api/v1")
	{
		// Public auth endpoints
		public := api.Group("/auth")
		public.POST("/login", authHandler.Login)
		public.POST("/refresh", authHandler.Refresh)

		// Everything below requires a valid token
		protected := api.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		authorized := protected.Group("/auth")
		authorized.POST("/logout", authHandler.Logout)
		authorized.GET("/me", authHandler.Me)

		registerCatalogRoutes(protected, base, cfg)
		registerProductionRoutes(protected, base, cfg)
		registerDocumentRoutes(protected, base, cfg)
		registerUserRoutes(protected, authHandler)
	}

	return router
}

// registerCatalogRoutes wires the catalog CRUD surface.
func registerCatalogRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	catalogs := rg.Group("/catalog")

	RegisterCatalogRoutes(
		catalogs.Group("/warehouses"),
		handlers.NewWarehouseHandler(base, cfg.Warehouses),
		auth.PermCatalogRead, auth.PermCatalogWrite,
	)
	RegisterCatalogRoutes(
		catalogs.Group("/suppliers"),
		handlers.NewSupplierHandler(base, cfg.Suppliers),
		auth.PermCatalogRead, auth.PermCatalogWrite,
	)
	RegisterCatalogRoutes(
		catalogs.Group("/raw-materials"),
		handlers.NewRawMaterialHandler(base, cfg.RawMaterials),
		auth.PermCatalogRead, auth.PermCatalogWrite,
	)
	RegisterCatalogRoutes(
		catalogs.Group("/prices"),
		handlers.NewPriceHandler(base, cfg.Prices),
		auth.PermCatalogRead, auth.PermCatalogWrite,
	)

	// Products additionally expose their bill of material.
	products := catalogs.Group("/products")
	formulaHandler := handlers.NewFormulaHandler(base, cfg.Formulas)
	RegisterCatalogRoutes(
		products,
		handlers.NewProductHandler(base, cfg.Products),
		auth.PermCatalogRead, auth.PermCatalogWrite,
	)
	products.GET("/:id/formula", middleware.RequirePermission(auth.PermCatalogRead), formulaHandler.ListByProduct)

	RegisterCatalogRoutes(
		catalogs.Group("/formula-lines"),
		formulaHandler,
		auth.PermCatalogRead, auth.PermCatalogWrite,
	)
}

// registerProductionRoutes wires production runs, offered batches and
// the backlog queue.
func registerProductionRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	production := rg.Group("/production")

	productionHandler := handlers.NewProductionHandler(base, cfg.Offered)
	production.POST("/runs", middleware.RequirePermission(auth.PermProductionRun), productionHandler.Produce)
	production.POST("/check", middleware.RequirePermission(auth.PermProductionRun), productionHandler.Check)

	batches := production.Group("/batches")
	batches.GET("", middleware.RequirePermission(auth.PermCatalogRead), productionHandler.List)
	batches.GET("/:id", middleware.RequirePermission(auth.PermCatalogRead), productionHandler.Get)
	batches.PUT("/:id", middleware.RequirePermission(auth.PermProductionRun), productionHandler.Update)
	batches.DELETE("/:id", middleware.RequirePermission(auth.PermProductionRun), productionHandler.Delete)

	backlogHandler := handlers.NewBacklogHandler(base, cfg.Backlog)
	backlogGroup := rg.Group("/backlog")
	backlogGroup.GET("", middleware.RequirePermission(auth.PermCatalogRead), backlogHandler.List)
	backlogGroup.GET("/:id", middleware.RequirePermission(auth.PermCatalogRead), backlogHandler.Get)
	backlogGroup.POST("", middleware.RequirePermission(auth.PermProductionRun), backlogHandler.Create)
	backlogGroup.PUT("/:id", middleware.RequirePermission(auth.PermProductionRun), backlogHandler.Update)
	backlogGroup.DELETE("/:id", middleware.RequirePermission(auth.PermProductionRun), backlogHandler.Delete)
}

// registerDocumentRoutes wires orders and purchases.
func registerDocumentRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	orderHandler := handlers.NewOrderHandler(base, cfg.Orders)
	orders := rg.Group("/orders")
	orders.GET("", middleware.RequirePermission(auth.PermCatalogRead), orderHandler.List)
	orders.GET("/:id", middleware.RequirePermission(auth.PermCatalogRead), orderHandler.Get)
	orders.POST("", middleware.RequirePermission(auth.PermOrdersWrite), orderHandler.Create)
	orders.PATCH("/:id", middleware.RequirePermission(auth.PermOrdersWrite), orderHandler.Update)
	orders.DELETE("/:id", middleware.RequirePermission(auth.PermOrdersWrite), orderHandler.Delete)

	purchaseHandler := handlers.NewPurchaseHandler(base, cfg.Purchases)
	purchases := rg.Group("/purchases")
	purchases.GET("", middleware.RequirePermission(auth.PermCatalogRead), purchaseHandler.List)
	purchases.GET("/:id", middleware.RequirePermission(auth.PermCatalogRead), purchaseHandler.Get)
	purchases.POST("", middleware.RequirePermission(auth.PermPurchasesWrite), purchaseHandler.Create)
	purchases.PATCH("/:id", middleware.RequirePermission(auth.PermPurchasesWrite), purchaseHandler.Update)
	purchases.DELETE("/:id", middleware.RequirePermission(auth.PermPurchasesWrite), purchaseHandler.Delete)
}

// registerUserRoutes wires user administration.
func registerUserRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	users := rg.Group("/users")
	users.Use(middleware.RequirePermission(auth.PermUsersManage))

	users.POST("", authHandler.Register)
	users.GET("", authHandler.ListUsers)
	users.GET("/:id", authHandler.GetUser)
	users.PUT("/:id/role", authHandler.SetRole)
	users.DELETE("/:id", authHandler.Deactivate)
}

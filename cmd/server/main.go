// Package main is the entry point for the fabrica API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

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
	v1 "fabrica/internal/infrastructure/http/v1"
	"fabrica/internal/infrastructure/storage/postgres"
	"fabrica/internal/infrastructure/storage/postgres/auth_repo"
	"fabrica/internal/infrastructure/storage/postgres/catalog_repo"
	"fabrica/internal/infrastructure/storage/postgres/document_repo"
	"fabrica/internal/infrastructure/storage/postgres/production_repo"
	"fabrica/pkg/config"
	"fabrica/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := logger.WithLogger(context.Background(), log)
	log.Info("starting fabrica server")

	// --- Database ---
	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(cfg.DatabaseURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	auditService, err := postgres.NewAuditService(txManager)
	if err != nil {
		log.Fatalw("failed to initialize audit service", "error", err)
	}

	// --- Auth ---
	jwtConfig := auth.DefaultJWTConfig(cfg.JWTSecret)
	if cfg.JWTAccessTTLMins > 0 {
		jwtConfig.AccessTokenTTL = time.Duration(cfg.JWTAccessTTLMins) * time.Minute
	}
	jwtService := auth.NewJWTService(jwtConfig)

	authService := auth.NewService(
		auth_repo.NewUserRepo(txManager),
		auth_repo.NewTokenRepo(txManager),
		txManager,
		jwtService,
		auth.DefaultServiceConfig(),
	)

	// --- Catalogs ---
	warehouseRepo := catalog_repo.NewWarehouseRepo(txManager)
	supplierRepo := catalog_repo.NewSupplierRepo(txManager)
	productRepo := catalog_repo.NewProductRepo(txManager)
	rawMaterialRepo := catalog_repo.NewRawMaterialRepo(txManager)
	priceRepo := catalog_repo.NewPriceRepo(txManager)

	warehouseService := warehouse.NewService(warehouseRepo, txManager, auditService)
	supplierService := supplier.NewService(supplierRepo, txManager, auditService)
	productService := product.NewService(productRepo, txManager, auditService)
	rawMaterialService := rawmaterial.NewService(rawMaterialRepo, warehouseRepo, txManager, auditService)
	priceService := price.NewService(priceRepo, productRepo, txManager, auditService)

	// --- Production ---
	formulaRepo := production_repo.NewFormulaRepo(txManager)
	offeredRepo := production_repo.NewOfferedRepo(txManager)
	backlogRepo := production_repo.NewBacklogRepo(txManager)

	formulaService := formula.NewService(formulaRepo, productRepo, rawMaterialRepo, txManager, auditService)
	checker := formula.NewChecker(formulaRepo, rawMaterialRepo, txManager)
	backlogService := backlog.NewService(backlogRepo, txManager, auditService)
	offeredService := offered.NewService(
		offeredRepo,
		checker,
		backlogService,
		productRepo,
		warehouseRepo,
		txManager,
		auditService,
	)

	// --- Documents ---
	orderService := order.NewService(
		document_repo.NewOrderRepo(txManager),
		offeredRepo,
		priceRepo,
		backlogService,
		txManager,
		auditService,
	)
	purchaseService := purchase.NewService(
		document_repo.NewPurchaseRepo(txManager),
		rawMaterialRepo,
		supplierRepo,
		txManager,
		auditService,
	)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Logger:       log,
		Pool:         pool.Pool,
		JWTValidator: jwtService,
		AuthService:  authService,

		Warehouses:   warehouseService,
		Suppliers:    supplierService,
		Products:     productService,
		RawMaterials: rawMaterialService,
		Prices:       priceService,

		Formulas: formulaService,
		Offered:  offeredService,
		Backlog:  backlogService,

		Orders:    orderService,
		Purchases: purchaseService,
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

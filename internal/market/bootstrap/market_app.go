package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/TranushReddy/crop-market/internal/market/application"
	"github.com/TranushReddy/crop-market/internal/market/domain"
	"github.com/TranushReddy/crop-market/internal/market/infrastructure/cache"
	httpwrap "github.com/TranushReddy/crop-market/internal/market/infrastructure/http"
	"github.com/TranushReddy/crop-market/internal/market/infrastructure/postgres"
	"github.com/TranushReddy/crop-market/internal/pkg/database"
	"github.com/TranushReddy/crop-market/internal/pkg/logging"
	"github.com/TranushReddy/crop-market/migrations"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
)

const (
	shutdownTimeout = 5 * time.Second
	migrationsDir   = "."
)

type MarketApp struct {
	cfg    MarketConfig
	logger logging.Logger

	server      *http.Server
	dbpool      *pgxpool.Pool
	redisClient *goredis.Client
}

func NewMarketApp(cfg MarketConfig, logger logging.Logger) *MarketApp {
	return &MarketApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *MarketApp) Run(ctx context.Context) error {
	logger := a.logger
	dbURL := a.cfg.DbSettings.GetUrl()

	if err := database.MigrateDatabase(dbURL, migrations.FS, migrationsDir); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.dbpool = dbpool

	stockCache := a.buildStockCache(ctx)

	txManager := database.NewDelegateTxManager(dbpool, logger)

	cropLocker := postgres.NewCropLocker()
	stockTransferrer := postgres.NewStockTransferrer()
	farmerRepository := postgres.NewFarmerRepository(dbpool)
	buyerRepository := postgres.NewBuyerRepository(dbpool)
	cropRepository := postgres.NewCropRepository(dbpool)
	orderRepository := postgres.NewOrderRepository(dbpool)

	purchaseCase := application.NewPurchaseCase(cropLocker, stockTransferrer, stockCache, txManager, logger)
	farmerCase := application.NewFarmerCase(farmerRepository)
	buyerCase := application.NewBuyerCase(buyerRepository)
	cropCase := application.NewCropCase(cropRepository, stockCache, logger)
	orderCase := application.NewOrderCase(orderRepository)

	router := gin.Default()
	router.Use(httpwrap.NewRequestIdMiddleware())

	farmerHandler := httpwrap.NewFarmerHandler(farmerCase)
	buyerHandler := httpwrap.NewBuyerHandler(buyerCase)
	cropHandler := httpwrap.NewCropHandler(cropCase)
	orderHandler := httpwrap.NewOrderHandler(purchaseCase, orderCase)

	api := router.Group("/api")
	{
		api.GET("/health", httpwrap.HealthCheck)

		api.POST("/farmers", farmerHandler.Register)
		api.GET("/farmers", farmerHandler.List)
		api.DELETE("/farmers/:"+httpwrap.IdKey, farmerHandler.Delete)

		api.POST("/buyers", buyerHandler.Register)
		api.GET("/buyers", buyerHandler.List)
		api.DELETE("/buyers/:"+httpwrap.IdKey, buyerHandler.Delete)

		api.POST("/crops", cropHandler.Create)
		api.GET("/crops/available", cropHandler.ListAvailable)
		api.GET("/crops/farmer/:"+httpwrap.IdKey, cropHandler.ListByFarmer)
		api.GET("/crops/:"+httpwrap.IdKey+"/stock", cropHandler.GetStock)
		api.PUT("/crops/:"+httpwrap.IdKey, cropHandler.Update)
		api.DELETE("/crops/:"+httpwrap.IdKey, cropHandler.Delete)

		api.POST("/orders/purchase", orderHandler.Purchase)
		api.GET("/orders", orderHandler.ListAll)
		api.GET("/orders/buyer/:"+httpwrap.IdKey, orderHandler.ListByBuyer)
		api.GET("/orders/farmer/:"+httpwrap.IdKey, orderHandler.ListForFarmer)
	}

	a.server = &http.Server{
		Addr:    a.cfg.HttpPort,
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server", "port", a.cfg.HttpPort)

		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("error while starting http server: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errChan:
		return err
	}
}

func (a *MarketApp) buildStockCache(ctx context.Context) domain.StockDisplayCache {
	if a.cfg.RedisAddr == "" {
		a.logger.Info("redis address not configured, stock cache disabled")
		return cache.NewDisabled()
	}

	client := goredis.NewClient(&goredis.Options{Addr: a.cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		a.logger.Warn("redis unreachable, stock cache disabled", "error", err.Error())
		client.Close()
		return cache.NewDisabled()
	}

	a.redisClient = client
	return cache.NewStockCache(client)
}

func (a *MarketApp) Shutdown() {
	if a.server == nil {
		return
	}

	a.logger.Info("shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown failed", "error", err.Error())
	}

	if a.redisClient != nil {
		a.redisClient.Close()
	}

	a.dbpool.Close()
	a.logger.Info("HTTP server stopped")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/princinho/storefront/catalog"
	"github.com/princinho/storefront/config"
	"github.com/princinho/storefront/controllers"
	"github.com/princinho/storefront/database"
	"github.com/princinho/storefront/middleware"
	"github.com/princinho/storefront/store"
	"github.com/princinho/storefront/utils"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"
)

func main() {
	loadedEnv := config.LoadDotEnv()
	cfg := config.FromEnv()

	logger, err := utils.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logger.Sync()
	if !loadedEnv {
		logger.Info("no .env file found, using system environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, cleanup, err := newCatalogSource(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("catalog source", zap.Error(err))
	}
	defer cleanup()

	cat, err := src.Load(ctx)
	if err != nil {
		logger.Fatal("load catalog", zap.String("source", src.Name()), zap.Error(err))
	}
	logger.Info("catalog loaded",
		zap.String("source", src.Name()),
		zap.Int("products", cat.Len()),
		zap.Int("featured", len(cat.Featured())))

	if cfg.ExportCatalogPath != "" {
		if err := catalog.ExportSnapshot(cat, cfg.ExportCatalogPath); err != nil {
			logger.Fatal("export catalog", zap.Error(err))
		}
		logger.Info("catalog exported", zap.String("path", cfg.ExportCatalogPath))
		return
	}

	if cfg.SessionSecret == "" {
		logger.Fatal("missing CART_SESSION_SECRET")
	}

	registry := store.NewCartRegistry(cfg.SessionTTL)
	go registry.Run(ctx, cfg.SweepInterval, func(n int) {
		if n > 0 {
			logger.Info("expired carts evicted", zap.Int("count", n))
		}
	})

	gin.SetMode(cfg.GinMode)
	app := &controllers.App{
		Catalog:      cat,
		Rates:        store.Rates{ShippingFlat: cfg.ShippingFlat, TaxRate: cfg.TaxRate},
		PriceMax:     cfg.PriceMax,
		DefaultLimit: cfg.DefaultLimit,
		MaxLimit:     cfg.MaxLimit,
		Logger:       logger,
	}
	logger.Info("allowed origins", zap.Strings("origins", cfg.AllowedOrigins))
	r := controllers.NewRouter(app, registry, controllers.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		Session: middleware.SessionConfig{
			Secret: cfg.SessionSecret,
			TTL:    cfg.SessionTTL,
			Secure: cfg.GinMode == gin.ReleaseMode,
		},
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

// newCatalogSource picks the catalog source named by CATALOG_SOURCE. The
// returned cleanup releases any client the source holds.
func newCatalogSource(ctx context.Context, cfg config.Config, logger *zap.Logger) (catalog.Source, func(), error) {
	noop := func() {}

	switch cfg.CatalogSource {
	case "", "static":
		return catalog.StaticSource{}, noop, nil

	case "mongo":
		client, err := database.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return nil, noop, err
		}
		db := client.Database(cfg.DatabaseName)
		if cfg.SeedCatalog {
			if err := seedCatalog(ctx, db, logger); err != nil {
				_ = client.Disconnect(context.Background())
				return nil, noop, err
			}
		}
		return catalog.MongoSource{DB: db}, func() { _ = client.Disconnect(context.Background()) }, nil

	case "gcs":
		if cfg.GCSBucket == "" {
			return nil, noop, fmt.Errorf("missing GCS_BUCKET")
		}
		client, err := utils.NewGCSClient(ctx, cfg.CredentialsFile)
		if err != nil {
			return nil, noop, fmt.Errorf("gcs client: %w", err)
		}
		return catalog.GCSSource{Client: client, Bucket: cfg.GCSBucket, Object: cfg.CatalogObject},
			func() { _ = client.Close() }, nil

	case "r2":
		client, err := utils.NewCloudClient(ctx, cfg.R2)
		if err != nil {
			return nil, noop, err
		}
		return catalog.R2Source{Client: client, Key: cfg.CatalogObject}, noop, nil
	}

	return nil, noop, fmt.Errorf("unknown CATALOG_SOURCE %q", cfg.CatalogSource)
}

// seedCatalog copies the built-in catalog into mongo, keeping documents
// that already exist.
func seedCatalog(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	builtin, err := catalog.StaticSource{}.Load(ctx)
	if err != nil {
		return err
	}
	res, err := database.SeedCatalog(ctx, db, builtin.Products(), builtin.Categories())
	if err != nil {
		return err
	}
	logger.Info("catalog seeded",
		zap.Int64("products_inserted", res.Products),
		zap.Int64("categories_inserted", res.Categories))
	return nil
}

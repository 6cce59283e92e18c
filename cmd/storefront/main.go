package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/storefront-cart/docs"
	"github.com/aaravmahajanofficial/storefront-cart/internal/api/handlers"
	"github.com/aaravmahajanofficial/storefront-cart/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront-cart/internal/cache"
	"github.com/aaravmahajanofficial/storefront-cart/internal/config"
	"github.com/aaravmahajanofficial/storefront-cart/internal/health"
	"github.com/aaravmahajanofficial/storefront-cart/internal/metrics"
	repository "github.com/aaravmahajanofficial/storefront-cart/internal/repositories"
	service "github.com/aaravmahajanofficial/storefront-cart/internal/services"
	"github.com/aaravmahajanofficial/storefront-cart/internal/tracing"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// idle in-memory carts are dropped after this long; Redis keeps the copy
const cartIdleTimeout = 30 * time.Minute

// @title			Storefront Cart API
// @version		1.0
// @description	Cart state and sale pricing for the storefront.
// @BasePath		/api/v1
func main() {

	cfg := config.MustLoad()

	// Logger setup
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	shutdownTracing, err := tracing.Setup(context.Background(), cfg)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	redisCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	defer func() {
		if err := redisCache.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	cartRepo := repository.NewCartRepo(redisCache, cfg.Cart.SessionTTL)
	catalogService := service.NewCatalogService(repos.Product, repos.Sale, cfg.Sales.PreviewLimit)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartService := service.NewCartService(cartRepo, catalogService, cfg.Cart.Currency)
	cartHandler := handlers.NewCartHandler(cartService)
	session := middleware.Session(cfg.Cart.CookieName, cfg.Cart.SessionTTL)

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", health.Version))

	docs.SwaggerInfo.Host = ""

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)
	routerMux.HandleFunc("GET /api/v1/sales", catalogHandler.SalePreview())
	routerMux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts())
	routerMux.Handle("GET /api/v1/cart", session(cartHandler.GetCart()))
	routerMux.Handle("DELETE /api/v1/cart", session(cartHandler.ClearCart()))
	routerMux.Handle("POST /api/v1/cart/items", session(cartHandler.AddItem()))
	routerMux.Handle("PATCH /api/v1/cart/items", session(cartHandler.UpdateQuantity()))
	routerMux.Handle("DELETE /api/v1/cart/items", session(cartHandler.RemoveItem()))
	routerMux.Handle("GET /api/v1/cart/checkout", session(cartHandler.CheckoutSummary()))
	routerMux.Handle("POST /api/v1/cart/checkout/complete", session(cartHandler.CompleteCheckout()))

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, cfg.Otel.ServiceName)

	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	evictCtx, stopEviction := context.WithCancel(context.Background())
	defer stopEviction()
	go evictIdleCarts(evictCtx, cartService)

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
			done <- syscall.SIGTERM
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Failed to flush traces", slog.String("error", err.Error()))
	}
}

func evictIdleCarts(ctx context.Context, carts service.CartService) {

	ticker := time.NewTicker(cartIdleTimeout / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := carts.EvictIdle(time.Now().Add(-cartIdleTimeout)); n > 0 {
				slog.Debug("Evicted idle carts", slog.Int("count", n))
			}
		}
	}
}

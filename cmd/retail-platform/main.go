package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/tokoretail/retail-platform/internal/api/handlers"
	"github.com/tokoretail/retail-platform/internal/api/middleware"
	"github.com/tokoretail/retail-platform/internal/cache"
	"github.com/tokoretail/retail-platform/internal/config"
	"github.com/tokoretail/retail-platform/internal/health"
	"github.com/tokoretail/retail-platform/internal/metrics"
	repository "github.com/tokoretail/retail-platform/internal/repositories"
	service "github.com/tokoretail/retail-platform/internal/services"
	"github.com/tokoretail/retail-platform/internal/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, cfg.Otel)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.Any("error", err))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.Any("error", err))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.Any("error", err))
		os.Exit(1)
	}
	defer redisClient.Close()

	productCache := cache.NewRedisCache(redisClient, cfg.Cache)
	rateLimiter := repository.NewRateLimitRepo(redisClient, cfg.RateConfig)

	validate := validator.New()

	productService := service.NewProductService(repos.Products, productCache)
	storeService := service.NewStoreService(repos.Products, repos.Orders, productCache)
	cartService := service.NewCartService(repos.Carts, repos.Products)
	checkoutService := service.NewCheckoutService(repos.Tx, repos.Carts, repos.Products, repos.Orders, rateLimiter, productCache)

	h := routeHandlers{
		products:     handlers.NewProductHandler(productService, validate),
		distributors: handlers.NewDistributorHandler(service.NewDistributorService(repos.Distributors), validate),
		customers:    handlers.NewCustomerHandler(service.NewCustomerService(repos.Customers), validate),
		couriers:     handlers.NewCourierHandler(service.NewCourierService(repos.Couriers), validate),
		users:        handlers.NewUserHandler(service.NewUserService(repos.Users), validate),
		sales:        handlers.NewSaleHandler(service.NewSaleService(repos.Sales), validate),
		carts:        handlers.NewCartHandler(cartService, validate),
		store:        handlers.NewStoreHandler(storeService, checkoutService, validate),
		dashboard:    handlers.NewDashboardHandler(service.NewDashboardService(repos.Stats)),
	}

	healthChecker, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	registerRoutes(routerMux, h)
	routerMux.Handle("GET /health", healthChecker.Handler())

	metricsMux := routerMux
	if cfg.MetricsAddr != "" {
		metricsMux = http.NewServeMux()
	}
	metricsMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining. metrics.Middleware reads the matched route pattern,
	// so it has to sit directly on the mux.
	var handler http.Handler = metrics.Middleware(routerMux)
	handler = middleware.NewCustomerSession([]byte(cfg.Security.JWTKey)).Handler(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "http.server")

	servers := []*http.Server{{Addr: cfg.Addr, Handler: handler}}
	if cfg.MetricsAddr != "" {
		servers = append(servers, &http.Server{Addr: cfg.MetricsAddr, Handler: metricsMux})
	}

	g, gCtx := errgroup.WithContext(ctx)

	for _, srv := range servers {
		g.Go(func() error {
			slog.Info("🚀 Server is starting...", slog.String("address", srv.Addr))

			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gCtx.Done()

		slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			errs = append(errs, srv.Shutdown(shutdownCtx))
		}
		errs = append(errs, shutdownTracing(shutdownCtx))

		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.Any("error", err))
		return
	}

	slog.Info("✅ Server shut down gracefully. All connections closed.")
}

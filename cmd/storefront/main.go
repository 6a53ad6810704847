package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/ZeroVik/PlayScaleFrontend/api/routes"
	"github.com/ZeroVik/PlayScaleFrontend/internal/admin"
	"github.com/ZeroVik/PlayScaleFrontend/internal/cart"
	"github.com/ZeroVik/PlayScaleFrontend/internal/catalog"
	"github.com/ZeroVik/PlayScaleFrontend/internal/checkout"
	"github.com/ZeroVik/PlayScaleFrontend/internal/orders"
	"github.com/ZeroVik/PlayScaleFrontend/internal/users"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/config"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/logger"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/metrics"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/redis"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/shop"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	shopClient, err := shop.NewClient(cfg.Shop,
		shop.WithMetrics(metrics.NewShopClientMetrics(registry)),
	)
	if err != nil {
		logg.Error(context.Background(), "failed to build shop api client", err)
		os.Exit(1)
	}

	mirror := cart.NewMirror(redisClient, cfg.Cart.MirrorTTL)
	guard := cart.NewGuard(redisClient, cfg.Cart.GuardTTL)

	cartService := cart.NewService(shopClient, mirror, guard, logg)
	catalogService := catalog.NewService(shopClient, logg)
	checkoutService := checkout.NewService(shopClient, mirror, logg)
	ordersService := orders.NewService(shopClient)
	usersService := users.NewService(shopClient)
	adminService := admin.NewService(shopClient)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting storefront gateway")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			shopClient,
			redisClient,
			shopClient,
			catalogService,
			cartService,
			checkoutService,
			ordersService,
			usersService,
			adminService,
			registry,
		),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "gateway stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var closeErr error
		closeErr = multierr.Append(closeErr, server.Shutdown(shutdownCtx))
		closeErr = multierr.Append(closeErr, redisClient.Close())
		if closeErr != nil {
			logg.Error(ctx, "shutdown finished with errors", closeErr)
			os.Exit(1)
		}
		logg.Info(ctx, "shutdown complete")
	}
}

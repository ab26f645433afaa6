package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cassiomorais/paygrid/internal/bootstrap"
	"github.com/cassiomorais/paygrid/internal/controller"
	"github.com/cassiomorais/paygrid/internal/gateway"
	"github.com/cassiomorais/paygrid/internal/infrastructure/observability"
	"github.com/cassiomorais/paygrid/internal/service"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, "paygrid-api", "paygrid")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap: %v\n", err)
		os.Exit(1)
	}

	// --- Gateways ---
	gatewayOpts := []gateway.Option{
		gateway.WithNoticeLogger(observability.Component(app.Logger, "gateway")),
		gateway.WithSinkRetry(app.Config.Gateway.LogRetryAttempts, app.Config.Gateway.LogRetryDelay),
	}
	registry := gateway.DefaultRegistry()

	services := make(map[string]*service.PaymentService)
	for _, name := range registry.Names() {
		factory, err := registry.New(name, gatewayOpts...)
		if err != nil {
			app.Logger.Fatal().Err(err).Str("gateway", name).Msg("Failed to construct gateway factory")
		}
		services[name] = service.NewPaymentService(factory,
			service.WithLogger(observability.Component(app.Logger, "payments")),
			service.WithMetrics(app.Metrics),
		)
	}

	if _, ok := services[app.Config.Gateway.Default]; !ok {
		app.Logger.Fatal().Str("gateway", app.Config.Gateway.Default).Msg("Default gateway is not registered")
	}

	// --- Build router ---
	router := controller.NewRouter(controller.RouterDeps{
		Services:   services,
		Metrics:    app.Metrics,
		CORSConfig: app.Config.Server.CORS,
	})

	// --- HTTP server ---
	addr := fmt.Sprintf(":%d", app.Config.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  app.Config.Server.ReadTimeout,
		WriteTimeout: app.Config.Server.WriteTimeout,
		IdleTimeout:  app.Config.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.Logger.Info().Str("addr", addr).Strs("gateways", registry.Names()).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		app.Logger.Info().Msg("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.Config.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		app.Logger.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
	app.Logger.Info().Msg("Server exited")
}

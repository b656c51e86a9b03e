package commands

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	cartapp "github.com/dwikikusuma/partshop/internal/cart/app"
	cartrest "github.com/dwikikusuma/partshop/internal/cart/rest"
	catalogapp "github.com/dwikikusuma/partshop/internal/catalog/app"
	catalogrest "github.com/dwikikusuma/partshop/internal/catalog/rest"
	"github.com/dwikikusuma/partshop/internal/middleware"
	"github.com/dwikikusuma/partshop/pkg/shutdown"
)

func serveCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API and the gRPC health endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.serve(cmd.Context())
		},
	}
}

type httpOptions struct {
	metrics bool
}

func newHTTPServer(log zerolog.Logger, catalog *catalogapp.Service, cart *cartapp.Service, opts httpOptions) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(middleware.Logger(log))

	e.GET("/healthz", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/readyz", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	if opts.metrics {
		e.Use(echoprometheus.NewMiddleware("partshop"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	g := e.Group("/api/v1")
	catalogrest.NewHandler(catalog).Register(g)
	cartrest.NewHandler(cart).Register(g)

	return e
}

func newGRPCServer() (*grpc.Server, *health.Server) {
	s := grpc.NewServer()

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(s, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	return s, healthServer
}

func (c *cli) serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	log := c.log

	ctx, cancel := shutdown.WithSignals(parent, log)
	defer cancel()

	e := newHTTPServer(log, c.catalog, c.cart, httpOptions{metrics: true})
	e.Server.ReadHeaderTimeout = 5 * time.Second
	e.Server.ReadTimeout = 15 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.IdleTimeout = 60 * time.Second

	httpAddr := fmt.Sprintf(":%d", c.cfg.HTTPPort)
	grpcAddr := fmt.Sprintf(":%d", c.cfg.GRPCPort)

	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		log.Error().Err(err).Str("addr", grpcAddr).Msg("listen failed")
		return err
	}

	grpcServer, healthServer := newGRPCServer()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", httpAddr).Msg("http server starting")
		if err := e.Start(httpAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server error")
			return err
		}
		return nil
	})

	g.Go(func() error {
		log.Info().Str("addr", grpcAddr).Msg("grpc starting")
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			log.Error().Err(err).Msg("grpc serve error")
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutdown requested")
		healthServer.Shutdown()

		stopCtx, stopCancel := context.WithTimeout(context.Background(), c.cfg.ShutdownTimeout)
		defer stopCancel()

		if err := e.Shutdown(stopCtx); err != nil {
			log.Error().Err(err).Msg("http shutdown error")
		}

		stopped := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()

		select {
		case <-stopCtx.Done():
			log.Warn().Msg("graceful stop timeout, forcing stop")
			grpcServer.Stop()
		case <-stopped:
		}
		return nil
	})

	err = g.Wait()
	log.Info().Msg("bye")
	return err
}

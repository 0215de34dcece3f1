package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-reports-api/internal/api/handler"
	"github.com/vfg2006/seller-reports-api/internal/api/handler/router"
	"github.com/vfg2006/seller-reports-api/internal/config"
	"github.com/vfg2006/seller-reports-api/internal/usecases/authenticating"
	"github.com/vfg2006/seller-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/seller-reports-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Dependencies groups what the HTTP layer needs. CronJobs and HealthChecks may be empty.
type Dependencies struct {
	Reporter      reporting.Reporter
	Authenticator authenticating.Authenticator
	CronJobs      handler.CronJobServices
	HealthChecks  map[string]handler.Pinger
}

func New(cfg *config.Config, deps Dependencies) (*Server, error) {
	h, err := NewHandler(cfg, deps)
	if err != nil {
		return nil, err
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           h,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler builds the routed handler with the global middleware chain.
func NewHandler(cfg *config.Config, deps Dependencies) (http.Handler, error) {
	if deps.Reporter == nil {
		return nil, fmt.Errorf("api: reporter is required")
	}

	// rate limiting covers the report routes and login
	var reportMiddlewares []handler.Middleware
	if cfg.RateLimit.Enabled {
		limiter, err := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
			TrustedProxies:    cfg.RateLimit.TrustedProxies,
		})
		if err != nil {
			return nil, fmt.Errorf("api: rate limiter: %w", err)
		}
		reportMiddlewares = append(reportMiddlewares, limiter.Middleware())
	}

	routes := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck(deps.HealthChecks)...),
		router.WithRoutes(handler.Reports(deps.Reporter, cfg.App.Location, reportMiddlewares...)...),
	}
	if len(deps.CronJobs) > 0 {
		routes = append(routes, router.WithRoutes(handler.CronJobs(deps.CronJobs)...))
	}

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
	}

	if cfg.Auth.Enabled {
		if deps.Authenticator == nil {
			return nil, fmt.Errorf("api: authenticator is required when auth is enabled")
		}
		routes = append(routes, router.WithRoutes(handler.Authentication(deps.Authenticator, reportMiddlewares...)...))
		middlewares = append(middlewares, middleware.AuthMiddleware(deps.Authenticator, "/healthcheck", "/v1/login"))
	}

	return alice.New(middlewares...).Then(router.New(routes...)), nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout).Info("shutting down server")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	logrus.Info("server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/PilarGuataquira/202214-BaseProject/api"
	"github.com/PilarGuataquira/202214-BaseProject/config"
	"github.com/PilarGuataquira/202214-BaseProject/internal/logger"
	"github.com/PilarGuataquira/202214-BaseProject/internal/metrics"
	"github.com/PilarGuataquira/202214-BaseProject/internal/service/airlines"
	"github.com/PilarGuataquira/202214-BaseProject/internal/service/airports"
	"github.com/PilarGuataquira/202214-BaseProject/internal/service/associations"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

const swaggerDocument = "airlines.swagger.json"

type Services struct {
	Airports     airports.AirportUseCase
	Airlines     airlines.AirlineUseCase
	Associations associations.AssociationUseCase
}

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

type RouterOptions struct {
	Logger   logger.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Health   map[string]HealthCheck
}

// NewRouter wires every HTTP route of the service.
func NewRouter(cfg *config.Config, svc Services, opts RouterOptions) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery(), api.RequestLogger(opts.Logger, opts.Metrics))

	v1 := router.Group("/api/v1")
	api.NewAirportHandler(svc.Airports).Register(v1.Group("/airports"))
	airlineGroup := v1.Group("/airlines")
	api.NewAirlineHandler(svc.Airlines).Register(airlineGroup)
	api.NewAssociationHandler(svc.Associations).Register(airlineGroup)

	router.GET("/healthz", healthz(opts.Health))
	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	if cfg.HTTP.SwaggerDir != "" {
		router.Static("/swagger", cfg.HTTP.SwaggerDir)
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/"+swaggerDocument),
		)))
	}
	return router
}

// Run serves router on cfg.HTTP.Address until ctx is canceled or the server fails.
func Run(ctx context.Context, cfg *config.Config, router http.Handler, log logger.Logger) error {
	srv := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "address", cfg.HTTP.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func healthz(checks map[string]HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		report := gin.H{}
		for name, check := range checks {
			if err := check(c.Request.Context()); err != nil {
				status = http.StatusServiceUnavailable
				report[name] = err.Error()
				continue
			}
			report[name] = "ok"
		}
		c.JSON(status, gin.H{"status": http.StatusText(status), "checks": report})
	}
}

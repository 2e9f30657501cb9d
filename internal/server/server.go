package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"sort"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	handlerv1beta1 "github.com/goto/approvals/api/handler/v1beta1"
	"github.com/goto/approvals/jobs"
	"github.com/goto/approvals/pkg/log"
	"github.com/goto/approvals/pkg/opentelemetry"
	"github.com/goto/approvals/plugins/notifiers"
)

const (
	serviceName            = "approvals"
	defaultShutdownTimeout = 10 * time.Second
)

// RunServer serves the http api and runs the scheduled jobs until SIGINT or SIGTERM
func RunServer(config *Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := log.NewCtxLoggerWithSaltLogger(log.NewSaltLogger(config.LogLevel, config.LogFormat), nil)

	if config.Telemetry.Enabled {
		shutdownOtel, err := opentelemetry.Init(ctx, config.Telemetry)
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdownOtel(); err != nil {
				logger.Error(ctx, "failed to shutdown telemetry", "error", err)
			}
		}()
	}

	notifier, err := notifiers.NewClient(&config.Notifier, logger)
	if err != nil {
		return fmt.Errorf("initializing notifier: %w", err)
	}

	services, err := InitServices(ServiceDeps{
		Config:    config,
		Logger:    logger,
		Validator: validator.New(),
		Notifier:  notifier,
	})
	if err != nil {
		return fmt.Errorf("initializing services: %w", err)
	}
	defer func() {
		if err := services.Close(); err != nil {
			logger.Error(ctx, "failed to close store", "error", err)
		}
	}()

	jobHandler := jobs.NewHandler(logger, services.ApprovalService, notifier)
	scheduler, err := jobs.NewScheduler(logger, jobHandler.Handlers(), ScheduledJobs(config.Jobs))
	if err != nil {
		return fmt.Errorf("initializing scheduler: %w", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Port),
		Handler:           otelhttp.NewHandler(NewRouter(config, logger, services), serviceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		scheduler.Run(ctx)
	}()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info(ctx, "server is running", "port", config.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			stop()
			wg.Wait()
			return fmt.Errorf("serving http: %w", err)
		}
	}

	logger.Info(ctx, "shutting down server")
	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "failed to shutdown server gracefully", "error", err)
	}
	wg.Wait()

	return nil
}

// NewRouter builds the gin engine serving the v1beta1 api
func NewRouter(config *Config, logger log.Logger, services *Services) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		headerAuth(config.Auth.Default.HeaderKey),
		enrichLogFields(),
		requestLogger(logger),
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if config.Telemetry.Enabled && config.Telemetry.MetricExporter == opentelemetry.ExporterPrometheus {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	handlerv1beta1.NewServer(
		services.TemplateService,
		services.ApprovalService,
		services.DelegationService,
		services.EventService,
		logger,
		authenticatedUserEmailContextKey{},
	).RegisterRoutes(router)

	return router
}

// defaultJobs run even when the config does not mention them
var defaultJobs = []jobs.Job{
	{Type: jobs.TypeEscalateOverdueApprovals, Enabled: true, Interval: time.Minute},
}

// ScheduledJobs returns the configured jobs plus any default job the config leaves out, sorted by type
func ScheduledJobs(configured map[jobs.Type]jobs.Job) []jobs.Job {
	result := make([]jobs.Job, 0, len(configured)+len(defaultJobs))
	for t, j := range configured {
		if j.Type == "" {
			j.Type = t
		}
		result = append(result, j)
	}
	for _, d := range defaultJobs {
		if _, ok := configured[d.Type]; !ok {
			result = append(result, d)
		}
	}
	sort.Slice(result, func(i, k int) bool { return result[i].Type < result[k].Type })
	return result
}

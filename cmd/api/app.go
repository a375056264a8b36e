package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ispsupport/hub/internal/api/handlers"
	"github.com/ispsupport/hub/internal/api/middleware"
	"github.com/ispsupport/hub/internal/config"
	"github.com/ispsupport/hub/internal/embeddings"
	"github.com/ispsupport/hub/internal/observability"
	"github.com/ispsupport/hub/internal/repository"
	"github.com/ispsupport/hub/internal/service"
	"github.com/ispsupport/hub/pkg/cache"
)

const (
	searchQueryCacheSize = 1000
	maxRequestBodyBytes  = 1 << 20 // 1 MiB
)

// App holds all server dependencies and coordinates startup and shutdown.
type App struct {
	cfg     *config.Config
	db      *pgxpool.Pool
	server  *http.Server
	audit   *service.AuditService
	metrics *observability.PrometheusRecorder
}

// NewApp builds and wires all components. It does not start the HTTP server;
// call Run to start and block until shutdown or failure.
func NewApp(cfg *config.Config, db *pgxpool.Pool) (*App, error) {
	// Install the request-id handler so every line logged while serving a
	// request can be correlated.
	slog.SetDefault(slog.New(observability.NewRequestContextHandler(slog.Default().Handler())))

	metrics := observability.NewPrometheusRecorder()
	logger := slog.Default()

	catalogRepo := repository.NewCatalogRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	resolutionRepo := repository.NewResolutionRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	auditService := service.NewAuditService(auditRepo, metrics, logger)

	queryCache, err := cache.NewLoaderCache[string, []float32](searchQueryCacheSize,
		func(k string) string { return k })
	if err != nil {
		return nil, fmt.Errorf("create query cache: %w", err)
	}

	// The model client is constructed lazily on first use; a bad API key
	// surfaces on the first search, not at startup.
	provider := service.NewEmbeddingProvider(service.EmbeddingProviderParams{
		NewClient: func() (embeddings.Client, error) {
			return embeddings.NewOpenAIClientWithModel(cfg.OpenAIAPIKey, cfg.EmbeddingModel)
		},
		Dimensions:         cfg.EmbeddingDimensions,
		RatePerSecond:      cfg.EmbeddingRateLimit,
		SerializeInference: cfg.SerializeInference,
		QueryCache:         queryCache,
		Metrics:            metrics,
		Logger:             logger,
	})

	searchService := service.NewSearchService(service.SearchServiceParams{
		Embedder:     provider,
		Catalog:      catalogRepo,
		Feedback:     feedbackRepo,
		Auditor:      auditService,
		DefaultLimit: cfg.SearchDefaultLimit,
		MaxLimit:     cfg.SearchMaxLimit,
		Logger:       logger,
	})

	feedbackService := service.NewFeedbackService(feedbackRepo, logger)

	workOrderService, err := service.NewWorkOrderService(catalogRepo, metrics, logger)
	if err != nil {
		return nil, fmt.Errorf("create work order service: %w", err)
	}

	resolutionService := service.NewResolutionService(resolutionRepo, workOrderService, logger)
	actionService := service.NewActionService()

	server := newHTTPServer(cfg, metrics, muxHandlers{
		health:     handlers.NewHealthHandler(),
		search:     handlers.NewSearchHandler(searchService),
		feedback:   handlers.NewFeedbackHandler(feedbackService),
		workOrder:  handlers.NewWorkOrderHandler(workOrderService),
		resolution: handlers.NewResolutionHandler(resolutionService),
		action:     handlers.NewActionHandler(actionService, auditService),
	})

	return &App{
		cfg:     cfg,
		db:      db,
		server:  server,
		audit:   auditService,
		metrics: metrics,
	}, nil
}

type muxHandlers struct {
	health     *handlers.HealthHandler
	search     *handlers.SearchHandler
	feedback   *handlers.FeedbackHandler
	workOrder  *handlers.WorkOrderHandler
	resolution *handlers.ResolutionHandler
	action     *handlers.ActionHandler
}

// newHTTPServer builds the HTTP server and mux.
// Handler chain: RequestID -> Metrics -> Logging -> MaxBody -> mux.
func newHTTPServer(cfg *config.Config, metrics *observability.PrometheusRecorder, h muxHandlers) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.health.Check)
	mux.Handle("GET /metrics", metrics.Handler())

	mux.HandleFunc("POST /search", h.search.Search)
	mux.HandleFunc("POST /feedback", h.feedback.Submit)
	mux.HandleFunc("GET /work-order", h.workOrder.Get)
	mux.HandleFunc("GET /resolution", h.resolution.Get)
	mux.HandleFunc("POST /actions", h.action.Log)
	mux.HandleFunc("POST /actions/{actionType}", h.action.Execute)

	var handler http.Handler = mux
	handler = middleware.MaxBody(maxRequestBodyBytes)(handler)
	handler = middleware.Logging(handler)
	handler = middleware.Metrics(metrics)(handler)
	handler = middleware.RequestID(handler)

	const (
		readTimeout  = 15 * time.Second
		writeTimeout = 15 * time.Second
		idleTimeout  = 60 * time.Second
	)

	return &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
}

// Run starts the HTTP server and blocks until ctx is cancelled (e.g. signal)
// or the server fails. Caller should then call Shutdown.
func (a *App) Run(ctx context.Context) error {
	runErr := make(chan error, 1)

	go func() {
		slog.Info("Starting server", "port", a.cfg.Port)

		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			runErr <- fmt.Errorf("server: %w", err)
		}
	}()

	select {
	case err := <-runErr:
		return err
	case <-ctx.Done():
		return nil
	}
}

// Shutdown stops the server and waits for in-flight audit writes. Call after
// Run returns.
func (a *App) Shutdown(ctx context.Context) error {
	if err := a.server.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server shutdown: %w", err)
	}

	a.audit.Wait()

	return nil
}

// Package service contains the application services between the HTTP handlers
// and the repositories.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/ispsupport/hub/internal/embeddings"
	apperrors "github.com/ispsupport/hub/internal/errors"
	"github.com/ispsupport/hub/internal/observability"
	"github.com/ispsupport/hub/pkg/cache"
	pkgembeddings "github.com/ispsupport/hub/pkg/embeddings"
)

const queryEmbeddingCacheName = "query_embedding"

// ErrEmptyInput is returned for inputs that are empty after trimming, before
// any model call is made.
var ErrEmptyInput = errors.New("input text is required and must be non-empty")

// EmbeddingProvider turns text into unit-length vectors of a fixed dimension.
// The underlying model client is expensive to construct, so it is built
// lazily on first use and shared by all callers; a failed construction leaves
// the slot empty so a later call retries instead of poisoning the process.
type EmbeddingProvider struct {
	newClient  func() (embeddings.Client, error)
	dimensions int
	limiter    *rate.Limiter

	// serialize forces model calls through inferMu for clients that are not
	// safe for concurrent use. The OpenAI HTTP client is, so this is normally
	// off.
	serialize bool
	inferMu   sync.Mutex

	mu     sync.Mutex
	client embeddings.Client

	queryCache *cache.LoaderCache[string, []float32]
	metrics    observability.Recorder
	logger     *slog.Logger
}

// EmbeddingProviderParams configures EmbeddingProvider. QueryCache may be nil
// (no caching); Metrics and Logger fall back to no-op and slog.Default.
type EmbeddingProviderParams struct {
	NewClient  func() (embeddings.Client, error)
	Dimensions int

	// RatePerSecond caps calls against the embedding API.
	RatePerSecond int

	SerializeInference bool
	QueryCache         *cache.LoaderCache[string, []float32]
	Metrics            observability.Recorder
	Logger             *slog.Logger
}

// NewEmbeddingProvider creates an EmbeddingProvider. No model client is
// constructed until the first Embed call.
func NewEmbeddingProvider(p EmbeddingProviderParams) *EmbeddingProvider {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	metrics := p.Metrics
	if metrics == nil {
		metrics = observability.NoopRecorder{}
	}

	return &EmbeddingProvider{
		newClient:  p.NewClient,
		dimensions: p.Dimensions,
		limiter:    rate.NewLimiter(rate.Limit(p.RatePerSecond), p.RatePerSecond),
		serialize:  p.SerializeInference,
		queryCache: p.QueryCache,
		metrics:    metrics,
		logger:     logger,
	}
}

// Embed returns the unit-length embedding of text. Returns ErrEmptyInput when
// text is empty after trimming, and an error wrapping ErrEmbeddingUnavailable
// when the model cannot be initialized or cannot process the input.
func (p *EmbeddingProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyInput
	}

	if p.queryCache == nil {
		return p.embed(ctx, text)
	}

	vec, hit, err := p.queryCache.GetWithStats(ctx, text, p.embed)
	p.metrics.IncCache(queryEmbeddingCacheName, hit)

	if err != nil {
		return nil, err
	}

	return vec, nil
}

func (p *EmbeddingProvider) embed(ctx context.Context, text string) ([]float32, error) {
	client, err := p.getClient()
	if err != nil {
		p.logger.Error("embedding: client init failed", "error", err)

		return nil, apperrors.NewEmbeddingUnavailableError(err)
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("embedding rate limit: %w", err)
	}

	if p.serialize {
		p.inferMu.Lock()
		defer p.inferMu.Unlock()
	}

	start := time.Now()
	vec, err := client.GetEmbedding(ctx, text)
	p.metrics.ObserveEmbedding(err == nil, time.Since(start))

	if err != nil {
		p.logger.Error("embedding: model call failed", "error", err)

		return nil, apperrors.NewEmbeddingUnavailableError(err)
	}

	if len(vec) != p.dimensions {
		return nil, fmt.Errorf("embedding has %d dimensions, expected %d", len(vec), p.dimensions)
	}

	pkgembeddings.NormalizeL2(vec)

	return vec, nil
}

// getClient returns the shared model client, constructing it on first use.
// The mutex is held across construction so concurrent first calls construct
// exactly once; on failure the slot stays empty and the next call retries.
func (p *EmbeddingProvider) getClient() (embeddings.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil {
		return p.client, nil
	}

	client, err := p.newClient()
	if err != nil {
		return nil, fmt.Errorf("init embedding client: %w", err)
	}

	p.client = client

	return client, nil
}

package service

import (
	"context"
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ispsupport/hub/internal/embeddings"
	apperrors "github.com/ispsupport/hub/internal/errors"
	"github.com/ispsupport/hub/pkg/cache"
)

type mockEmbeddingClient struct {
	getEmbeddingFn func(ctx context.Context, text string) ([]float32, error)
}

func (m *mockEmbeddingClient) GetEmbedding(ctx context.Context, text string) ([]float32, error) {
	return m.getEmbeddingFn(ctx, text)
}

func (m *mockEmbeddingClient) GetEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))

	for i, t := range texts {
		vec, err := m.getEmbeddingFn(ctx, t)
		if err != nil {
			return nil, err
		}

		out[i] = vec
	}

	return out, nil
}

func newTestProvider(t *testing.T, client embeddings.Client, dims int) *EmbeddingProvider {
	t.Helper()

	return NewEmbeddingProvider(EmbeddingProviderParams{
		NewClient:     func() (embeddings.Client, error) { return client, nil },
		Dimensions:    dims,
		RatePerSecond: 1000,
	})
}

func TestEmbeddingProvider_EmptyInput(t *testing.T) {
	p := newTestProvider(t, &mockEmbeddingClient{
		getEmbeddingFn: func(context.Context, string) ([]float32, error) {
			t.Fatal("client must not be called for empty input")

			return nil, nil
		},
	}, 3)

	_, err := p.Embed(context.Background(), "   \t\n ")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestEmbeddingProvider_NormalizesOutput(t *testing.T) {
	p := newTestProvider(t, &mockEmbeddingClient{
		getEmbeddingFn: func(context.Context, string) ([]float32, error) {
			return []float32{3, 0, 4}, nil
		},
	}, 3)

	vec, err := p.Embed(context.Background(), "router offline")
	require.NoError(t, err)
	require.Len(t, vec, 3)

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}

	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-6)
}

func TestEmbeddingProvider_DimensionMismatch(t *testing.T) {
	p := newTestProvider(t, &mockEmbeddingClient{
		getEmbeddingFn: func(context.Context, string) ([]float32, error) {
			return []float32{1, 2}, nil
		},
	}, 3)

	_, err := p.Embed(context.Background(), "router offline")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimensions")
}

func TestEmbeddingProvider_ModelFailureWrapsSentinel(t *testing.T) {
	modelErr := errors.New("model exploded")
	p := newTestProvider(t, &mockEmbeddingClient{
		getEmbeddingFn: func(context.Context, string) ([]float32, error) {
			return nil, modelErr
		},
	}, 3)

	_, err := p.Embed(context.Background(), "router offline")
	assert.ErrorIs(t, err, apperrors.ErrEmbeddingUnavailable)
	assert.ErrorIs(t, err, modelErr)
}

func TestEmbeddingProvider_LazyInitExactlyOnce(t *testing.T) {
	var inits atomic.Int32

	client := &mockEmbeddingClient{
		getEmbeddingFn: func(context.Context, string) ([]float32, error) {
			return []float32{1, 0, 0}, nil
		},
	}

	p := NewEmbeddingProvider(EmbeddingProviderParams{
		NewClient: func() (embeddings.Client, error) {
			inits.Add(1)

			return client, nil
		},
		Dimensions:    3,
		RatePerSecond: 1000,
	})

	const goroutines = 20

	var (
		wg    sync.WaitGroup
		gate  = make(chan struct{})
		errCh = make(chan error, goroutines)
	)

	for range goroutines {
		wg.Add(1)

		go func() {
			defer wg.Done()
			<-gate

			_, err := p.Embed(context.Background(), "concurrent first call")
			errCh <- err
		}()
	}

	close(gate)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		assert.NoError(t, err)
	}

	assert.Equal(t, int32(1), inits.Load(), "client must be constructed exactly once")
}

func TestEmbeddingProvider_InitFailureIsRetryable(t *testing.T) {
	var attempts atomic.Int32

	client := &mockEmbeddingClient{
		getEmbeddingFn: func(context.Context, string) ([]float32, error) {
			return []float32{1, 0, 0}, nil
		},
	}

	p := NewEmbeddingProvider(EmbeddingProviderParams{
		NewClient: func() (embeddings.Client, error) {
			if attempts.Add(1) == 1 {
				return nil, errors.New("transient init failure")
			}

			return client, nil
		},
		Dimensions:    3,
		RatePerSecond: 1000,
	})

	_, err := p.Embed(context.Background(), "first")
	require.ErrorIs(t, err, apperrors.ErrEmbeddingUnavailable)

	vec, err := p.Embed(context.Background(), "second")
	require.NoError(t, err)
	assert.Len(t, vec, 3)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestEmbeddingProvider_QueryCacheAvoidsSecondCall(t *testing.T) {
	var calls atomic.Int32

	queryCache, err := cache.NewLoaderCache[string, []float32](8, func(k string) string { return k })
	require.NoError(t, err)

	p := NewEmbeddingProvider(EmbeddingProviderParams{
		NewClient: func() (embeddings.Client, error) {
			return &mockEmbeddingClient{
				getEmbeddingFn: func(context.Context, string) ([]float32, error) {
					calls.Add(1)

					return []float32{0, 1, 0}, nil
				},
			}, nil
		},
		Dimensions:    3,
		RatePerSecond: 1000,
		QueryCache:    queryCache,
	})

	for range 3 {
		_, err := p.Embed(context.Background(), "no internet after storm")
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), calls.Load())
}

func TestEmbeddingProvider_SerializedInference(t *testing.T) {
	var (
		inFlight atomic.Int32
		maxSeen  atomic.Int32
	)

	p := NewEmbeddingProvider(EmbeddingProviderParams{
		NewClient: func() (embeddings.Client, error) {
			return &mockEmbeddingClient{
				getEmbeddingFn: func(context.Context, string) ([]float32, error) {
					n := inFlight.Add(1)
					if n > maxSeen.Load() {
						maxSeen.Store(n)
					}

					inFlight.Add(-1)

					return []float32{1, 0, 0}, nil
				},
			}, nil
		},
		Dimensions:         3,
		RatePerSecond:      1000,
		SerializeInference: true,
	})

	var wg sync.WaitGroup

	for i := range 10 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			// Distinct inputs so nothing coalesces.
			_, err := p.Embed(context.Background(), string(rune('a'+i)))
			assert.NoError(t, err)
		}()
	}

	wg.Wait()
	assert.LessOrEqual(t, maxSeen.Load(), int32(1))
}

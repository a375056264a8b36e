package embeddings

import (
	"context"
	"crypto/sha256"
	"fmt"

	pkgembeddings "github.com/ispsupport/hub/pkg/embeddings"
)

// MockClient implements the Client interface for testing purposes.
// It generates deterministic unit-length embeddings from the input text hash,
// so equal texts always map to equal vectors.
type MockClient struct {
	dimensions int
}

var _ Client = (*MockClient)(nil)

// NewMockClient creates a new mock embedding client.
// Default dimensions is 1536 to match text-embedding-3-small.
func NewMockClient() *MockClient {
	return &MockClient{dimensions: 1536}
}

// NewMockClientWithDimensions creates a mock client with custom dimensions.
func NewMockClientWithDimensions(dimensions int) *MockClient {
	return &MockClient{dimensions: dimensions}
}

// GetEmbedding generates a deterministic embedding based on the text hash.
func (c *MockClient) GetEmbedding(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}

	return c.deterministicEmbedding(text), nil
}

// GetEmbeddings generates embeddings for multiple texts.
func (c *MockClient) GetEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("texts cannot be empty")
	}

	vectors := make([][]float32, len(texts))

	for i, text := range texts {
		if text == "" {
			return nil, fmt.Errorf("text at index %d cannot be empty", i)
		}

		vectors[i] = c.deterministicEmbedding(text)
	}

	return vectors, nil
}

func (c *MockClient) deterministicEmbedding(text string) []float32 {
	hash := sha256.Sum256([]byte(text))
	vec := make([]float32, c.dimensions)

	for i := range vec {
		// Cycle through hash bytes, mapped to [-1, 1].
		vec[i] = (float32(hash[i%len(hash)]) / 127.5) - 1.0
	}

	pkgembeddings.NormalizeL2(vec)

	return vec
}

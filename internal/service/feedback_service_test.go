package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ispsupport/hub/internal/errors"
)

type mockFeedbackStore struct {
	insertFn func(ctx context.Context, query string, entityID int64, rating int) error
}

func (m *mockFeedbackStore) Insert(ctx context.Context, query string, entityID int64, rating int) error {
	return m.insertFn(ctx, query, entityID, rating)
}

func TestFeedbackService_Record(t *testing.T) {
	t.Run("valid feedback is stored", func(t *testing.T) {
		var gotQuery string
		var gotID int64
		var gotRating int

		svc := NewFeedbackService(&mockFeedbackStore{
			insertFn: func(_ context.Context, query string, entityID int64, rating int) error {
				gotQuery, gotID, gotRating = query, entityID, rating

				return nil
			},
		}, nil)

		err := svc.Record(context.Background(), "no dial tone", 12, -1)
		require.NoError(t, err)
		assert.Equal(t, "no dial tone", gotQuery)
		assert.Equal(t, int64(12), gotID)
		assert.Equal(t, -1, gotRating)
	})

	t.Run("empty query rejected", func(t *testing.T) {
		svc := NewFeedbackService(&mockFeedbackStore{
			insertFn: func(context.Context, string, int64, int) error {
				t.Fatal("store must not be called")

				return nil
			},
		}, nil)

		err := svc.Record(context.Background(), "   ", 12, 1)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("rating outside {1,-1} rejected", func(t *testing.T) {
		svc := NewFeedbackService(&mockFeedbackStore{
			insertFn: func(context.Context, string, int64, int) error {
				t.Fatal("store must not be called")

				return nil
			},
		}, nil)

		for _, rating := range []int{0, 2, -2, 5} {
			err := svc.Record(context.Background(), "no dial tone", 12, rating)
			assert.ErrorIs(t, err, apperrors.ErrValidation, "rating %d", rating)
		}
	})

	t.Run("non-positive entity id rejected", func(t *testing.T) {
		svc := NewFeedbackService(&mockFeedbackStore{
			insertFn: func(context.Context, string, int64, int) error {
				t.Fatal("store must not be called")

				return nil
			},
		}, nil)

		err := svc.Record(context.Background(), "no dial tone", 0, 1)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("storage failure is swallowed", func(t *testing.T) {
		svc := NewFeedbackService(&mockFeedbackStore{
			insertFn: func(context.Context, string, int64, int) error {
				return errors.New("connection refused")
			},
		}, nil)

		err := svc.Record(context.Background(), "no dial tone", 12, 1)
		assert.NoError(t, err, "feedback is best-effort; storage failures never surface")
	})
}

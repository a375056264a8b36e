package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAuditStore struct {
	mu       sync.Mutex
	searches []string
	actions  []string

	searchErr error
	actionErr error
}

func (m *mockAuditStore) InsertSearchLog(_ context.Context, query string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searches = append(m.searches, query)

	return m.searchErr
}

func (m *mockAuditStore) InsertActionLog(_ context.Context, actionType, _, _ string, _ *int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actions = append(m.actions, actionType)

	return m.actionErr
}

type countingRecorder struct {
	mu      sync.Mutex
	dropped map[string]int
}

func (r *countingRecorder) ObserveRequest(string, string, string, time.Duration) {}
func (r *countingRecorder) ObserveEmbedding(bool, time.Duration)                 {}
func (r *countingRecorder) IncCache(string, bool)                                {}

func (r *countingRecorder) IncAuditDropped(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.dropped == nil {
		r.dropped = map[string]int{}
	}

	r.dropped[kind]++
}

func TestAuditService_LogSearch(t *testing.T) {
	store := &mockAuditStore{}
	svc := NewAuditService(store, nil, nil)

	svc.LogSearch("fiber outage")
	svc.Wait()

	store.mu.Lock()
	defer store.mu.Unlock()
	require.Equal(t, []string{"fiber outage"}, store.searches)
}

func TestAuditService_LogAction(t *testing.T) {
	store := &mockAuditStore{}
	svc := NewAuditService(store, nil, nil)

	scenarioID := int64(7)
	svc.LogAction("open_work_order", "Truck Roll", "work_order", &scenarioID)
	svc.Wait()

	store.mu.Lock()
	defer store.mu.Unlock()
	require.Equal(t, []string{"open_work_order"}, store.actions)
}

func TestAuditService_FailureIsCountedNotSurfaced(t *testing.T) {
	store := &mockAuditStore{searchErr: errors.New("disk full")}
	recorder := &countingRecorder{}
	svc := NewAuditService(store, recorder, nil)

	svc.LogSearch("fiber outage")
	svc.Wait()

	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	assert.Equal(t, 1, recorder.dropped["search"])
}

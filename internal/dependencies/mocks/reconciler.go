package mocks

import (
	"context"

	"github.com/procomhq/attendance-portal/internal/model"
)

// MockReconciler is an in-memory reconciler for tests. It records every
// call and can be primed with read-back state or a failure. It satisfies
// attendance.Reconciler; the guard lives in the factory to keep this
// package free of service imports.
type MockReconciler struct {
	Entries   []model.LogEntry
	Purged    []model.Identity
	Readback  map[model.Identity]bool
	HeaderRow []string
	Err       error
}

// NewMockReconciler creates an empty MockReconciler
func NewMockReconciler() *MockReconciler {
	return &MockReconciler{}
}

// Record appends the entry, or fails with Err
func (m *MockReconciler) Record(ctx context.Context, entry model.LogEntry) error {
	if m.Err != nil {
		return m.Err
	}
	m.Entries = append(m.Entries, entry)
	return nil
}

// ReadBack returns the primed state, or fails with Err
func (m *MockReconciler) ReadBack(ctx context.Context) (map[model.Identity]bool, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Readback, nil
}

// Purge records the identity, or fails with Err
func (m *MockReconciler) Purge(ctx context.Context, id model.Identity) error {
	if m.Err != nil {
		return m.Err
	}
	m.Purged = append(m.Purged, id)
	return nil
}

// Headers returns the primed header row, or fails with Err
func (m *MockReconciler) Headers(ctx context.Context) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.HeaderRow, nil
}

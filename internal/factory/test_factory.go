package factory

import (
	"time"

	"github.com/procomhq/attendance-portal/internal/dependencies/mocks"
	"github.com/procomhq/attendance-portal/internal/services/attendance"
	"github.com/procomhq/attendance-portal/internal/storage/memory"
	"github.com/procomhq/attendance-portal/internal/testutil"
)

// Compile-time check that the mock satisfies the reconciler interface
var _ attendance.Reconciler = (*mocks.MockReconciler)(nil)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock      *mocks.MockClock
	MockReconciler *mocks.MockReconciler
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC))
	mockReconciler := mocks.NewMockReconciler()

	app := newWithDependencies(store, mockReconciler, mockClock, testutil.NopLogger())

	return &TestApp{
		App:            app,
		MockClock:      mockClock,
		MockReconciler: mockReconciler,
	}
}

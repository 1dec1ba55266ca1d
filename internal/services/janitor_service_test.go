package services

import (
	"Explorer/internal/config"
	"Explorer/internal/storage"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJanitor(fileRepo *MockFileRepository, store *MockContentStore, grace time.Duration) *Janitor {
	cfg := &config.Configuration{Server: config.ServerConfig{CleanConfig: config.CleanConfig{
		Schedule:    "@every 1h",
		GracePeriod: grace,
	}}}
	return NewJanitorService(fileRepo, store, NewDiscardLogService(), cfg)
}

func TestJanitor_Sweep_DeletesOldOrphans(t *testing.T) {
	fileRepo := new(MockFileRepository)
	store := new(MockContentStore)
	janitor := newTestJanitor(fileRepo, store, 10*time.Minute)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	janitor.now = func() time.Time { return now }
	ctx := context.Background()

	store.On("List", ctx).Return([]storage.StoredObject{
		{Path: "referenced", ModTime: now.Add(-time.Hour)},
		{Path: "old-orphan", ModTime: now.Add(-time.Hour)},
		{Path: "fresh-orphan", ModTime: now.Add(-time.Minute)},
		{Path: "stuck-orphan", ModTime: now.Add(-time.Hour)},
	}, nil)
	fileRepo.On("FindStoragePaths", ctx).Return([]string{"referenced"}, nil)
	store.On("Delete", ctx, "old-orphan").Return(nil)
	store.On("Delete", ctx, "stuck-orphan").Return(errors.New("busy"))

	deleted, err := janitor.Sweep(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
	store.AssertExpectations(t)
	store.AssertNotCalled(t, "Delete", ctx, "referenced")
	store.AssertNotCalled(t, "Delete", ctx, "fresh-orphan")
}

func TestJanitor_Sweep_ListFailure(t *testing.T) {
	fileRepo := new(MockFileRepository)
	store := new(MockContentStore)
	janitor := newTestJanitor(fileRepo, store, 0)
	ctx := context.Background()

	store.On("List", ctx).Return(nil, errors.New("bucket unavailable"))

	_, err := janitor.Sweep(ctx)

	assert.Error(t, err)
	fileRepo.AssertNotCalled(t, "FindStoragePaths", ctx)
}

func TestJanitor_ForceStartCleanCycle_RejectsConcurrentRun(t *testing.T) {
	janitor := newTestJanitor(new(MockFileRepository), new(MockContentStore), 0)

	require.True(t, janitor.tryStart())
	assert.True(t, janitor.IsCleaning())
	assert.ErrorIs(t, janitor.ForceStartCleanCycle(), ErrCleaningInProgress)

	janitor.finish()
	assert.False(t, janitor.IsCleaning())
}

func TestJanitor_StartCleanCycle_InvalidSchedule(t *testing.T) {
	janitor := newTestJanitor(new(MockFileRepository), new(MockContentStore), 0)
	janitor.configuration.Server.CleanConfig.Schedule = "not a schedule"

	assert.Error(t, janitor.StartCleanCycle())
}

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
	"github.com/acg-data/bizgenius-sub001/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepository()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	_, err := repo.Create(ctx, entities.GenerationSession{ID: "s-1", UserID: "u-1", Status: entities.SessionStatusPending, Answers: map[string]any{"k": "v"}})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.GenerationSession{ID: "s-1"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	got, err := repo.GetByID(ctx, "s-1")
	require.NoError(t, err)
	got.Answers["k"] = "mutated"
	again, _ := repo.GetByID(ctx, "s-1")
	assert.Equal(t, "v", again.Answers["k"])

	completed := entities.SessionStatusCompleted
	full := 100
	updated, err := repo.Update(ctx, "s-1", entities.SessionUpdate{Status: &completed, Progress: &full})
	require.NoError(t, err)
	assert.Equal(t, entities.SessionStatusCompleted, updated.Status)
	require.NotNil(t, updated.CompletedAt)
	assert.True(t, updated.CompletedAt.Equal(now))

	none, err := repo.Update(ctx, "nope", entities.SessionUpdate{Progress: &full})
	require.NoError(t, err)
	assert.Empty(t, none.ID)

	list, err := repo.ListByUserID(ctx, "u-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
	other, err := repo.ListByUserID(ctx, "u-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestMemorySessionRepository_ExpectedStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepository()
	_, err := repo.Create(ctx, entities.GenerationSession{ID: "s-1", UserID: "u-1", Status: entities.SessionStatusFailed, Progress: 42})
	require.NoError(t, err)

	failed := entities.SessionStatusFailed
	pending := entities.SessionStatusPending
	zero := 0
	reset := entities.SessionUpdate{ExpectedStatus: &failed, Status: &pending, Progress: &zero}

	updated, err := repo.Update(ctx, "s-1", reset)
	require.NoError(t, err)
	assert.Equal(t, entities.SessionStatusPending, updated.Status)

	_, err = repo.Update(ctx, "s-1", reset)
	assert.ErrorIs(t, err, interfaces.ErrSessionStatusConflict)

	got, err := repo.GetByID(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, entities.SessionStatusPending, got.Status)
	assert.Equal(t, 0, got.Progress)

	none, err := repo.Update(ctx, "nope", reset)
	require.NoError(t, err)
	assert.Empty(t, none.ID)
}

func TestMemoryCostRecordRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCostRecordRepository()
	base := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	for i, sid := range []string{"s-1", "s-1", "s-2"} {
		_, err := repo.Record(ctx, entities.CostRecord{ID: string(rune('a' + i)), SessionID: sid, CreatedAt: base.Add(time.Duration(i) * 24 * time.Hour)})
		require.NoError(t, err)
	}
	_, err := repo.Record(ctx, entities.CostRecord{ID: "a"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	bySession, err := repo.ListBySessionID(ctx, "s-1")
	require.NoError(t, err)
	assert.Len(t, bySession, 2)

	between, err := repo.ListBetween(ctx, base, base.Add(48*time.Hour))
	require.NoError(t, err)
	assert.Len(t, between, 2)
	assert.Equal(t, "a", between[0].ID)
	assert.Equal(t, "b", between[1].ID)
}

func TestMemorySubscriptionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySubscriptionRepository()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	_, err := repo.Create(ctx, entities.Subscription{ID: "sub-1", UserID: "u-1", PaymentID: "pay-1", Status: entities.SubscriptionStatusPending})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.Subscription{ID: "sub-1"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	byPayment, err := repo.GetByPaymentID(ctx, "pay-1")
	require.NoError(t, err)
	assert.Equal(t, "sub-1", byPayment.ID)

	missing, err := repo.GetByPaymentID(ctx, "pay-404")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	updated, err := repo.UpdateStatus(ctx, "sub-1", entities.SubscriptionStatusActive, []byte(`{"status":"approved"}`))
	require.NoError(t, err)
	assert.Equal(t, entities.SubscriptionStatusActive, updated.Status)
	assert.True(t, updated.UpdatedAt.Equal(now))
	assert.JSONEq(t, `{"status":"approved"}`, string(updated.MPPayloadRaw))

	none, err := repo.UpdateStatus(ctx, "nope", entities.SubscriptionStatusActive, nil)
	require.NoError(t, err)
	assert.Empty(t, none.ID)

	list, err := repo.ListByUserID(ctx, "u-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

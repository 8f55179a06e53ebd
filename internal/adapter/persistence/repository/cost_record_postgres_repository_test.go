package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var costColumns = []string{"id", "session_id", "provider", "model", "section_id", "input_tokens", "output_tokens", "cost", "retry_count", "duration_ms", "created_at"}

func TestCostRecordPostgresRepository_Record(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCostRecordPostgresRepository(db)
	rec := entities.CostRecord{
		ID: "c-1", SessionID: "s-1", Provider: "groq", Model: "llama-3.3-70b-versatile", SectionID: "market",
		InputTokens: 1200, OutputTokens: 800, Cost: 0.001340, RetryCount: 1, DurationMs: 2300,
		CreatedAt: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec("INSERT INTO cost_records").
		WithArgs("c-1", "s-1", "groq", "llama-3.3-70b-versatile", "market", 1200, 800, 0.001340, 1, int64(2300), rec.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	got, err := repo.Record(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCostRecordPostgresRepository_Record_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO cost_records").WillReturnError(errors.New("duplicate key"))

	_, err = NewCostRecordPostgresRepository(db).Record(context.Background(), entities.CostRecord{ID: "c-1"})
	assert.EqualError(t, err, "duplicate key")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCostRecordPostgresRepository_ListBySessionID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	at := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(costColumns).
		AddRow("c-1", "s-1", "groq", "m", "market", 100, 50, 0.01, 0, 1000, at).
		AddRow("c-2", "s-1", "openai", "m2", "customers", 10, 5, 0.02, 2, 3000, at.Add(time.Minute))
	mock.ExpectQuery("SELECT .+ FROM cost_records WHERE session_id = \\$1").
		WithArgs("s-1").
		WillReturnRows(rows)

	got, err := NewCostRecordPostgresRepository(db).ListBySessionID(context.Background(), "s-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "market", got[0].SectionID)
	assert.Equal(t, 150, got[0].TotalTokens())
	assert.Equal(t, 2, got[1].RetryCount)
	assert.Equal(t, int64(3000), got[1].DurationMs)
	assert.True(t, got[1].CreatedAt.Equal(at.Add(time.Minute)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCostRecordPostgresRepository_ListBetween(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT .+ FROM cost_records WHERE created_at >= \\$1 AND created_at < \\$2").
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows(costColumns))

	got, err := NewCostRecordPostgresRepository(db).ListBetween(context.Background(), from, to)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCostRecordPostgresRepository_ScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(costColumns).
		AddRow("c-1", "s-1", "groq", "m", "market", "not-a-number", 50, 0.01, 0, 1000, time.Now())
	mock.ExpectQuery("SELECT .+ FROM cost_records").WillReturnRows(rows)

	_, err = NewCostRecordPostgresRepository(db).ListBySessionID(context.Background(), "s-1")
	assert.Error(t, err)
}

package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
	"github.com/acg-data/bizgenius-sub001/internal/usecase/interfaces"
)

// CostRecordsDDL creates the Postgres ledger table. Operators apply it; the
// service never runs it.
const CostRecordsDDL = `CREATE TABLE IF NOT EXISTS cost_records (
	id            TEXT PRIMARY KEY,
	session_id    TEXT NOT NULL,
	provider      TEXT NOT NULL,
	model         TEXT NOT NULL,
	section_id    TEXT NOT NULL,
	input_tokens  INTEGER NOT NULL,
	output_tokens INTEGER NOT NULL,
	cost          DOUBLE PRECISION NOT NULL,
	retry_count   INTEGER NOT NULL DEFAULT 0,
	duration_ms   BIGINT NOT NULL DEFAULT 0,
	created_at    TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS cost_records_session_id_idx ON cost_records (session_id);
CREATE INDEX IF NOT EXISTS cost_records_created_at_idx ON cost_records (created_at);`

const costRecordColumns = "id, session_id, provider, model, section_id, input_tokens, output_tokens, cost, retry_count, duration_ms, created_at"

// CostRecordPostgresRepository is the ledger on Postgres through database/sql.
type CostRecordPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.ICostRecordRepository = (*CostRecordPostgresRepository)(nil)

func NewCostRecordPostgresRepository(db *sql.DB) *CostRecordPostgresRepository {
	return &CostRecordPostgresRepository{db: db}
}

func (r *CostRecordPostgresRepository) Record(ctx context.Context, rec entities.CostRecord) (entities.CostRecord, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cost_records (`+costRecordColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		rec.ID, rec.SessionID, rec.Provider, rec.Model, rec.SectionID,
		rec.InputTokens, rec.OutputTokens, rec.Cost, rec.RetryCount, rec.DurationMs, rec.CreatedAt.UTC(),
	)
	if err != nil {
		return entities.CostRecord{}, err
	}
	return rec, nil
}

func (r *CostRecordPostgresRepository) ListBySessionID(ctx context.Context, sessionID string) ([]entities.CostRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+costRecordColumns+` FROM cost_records WHERE session_id = $1 ORDER BY created_at`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	return scanCostRecords(rows)
}

func (r *CostRecordPostgresRepository) ListBetween(ctx context.Context, from, to time.Time) ([]entities.CostRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+costRecordColumns+` FROM cost_records WHERE created_at >= $1 AND created_at < $2 ORDER BY created_at`,
		from.UTC(), to.UTC(),
	)
	if err != nil {
		return nil, err
	}
	return scanCostRecords(rows)
}

func scanCostRecords(rows *sql.Rows) ([]entities.CostRecord, error) {
	defer rows.Close()

	var out []entities.CostRecord
	for rows.Next() {
		var rec entities.CostRecord
		if err := rows.Scan(
			&rec.ID, &rec.SessionID, &rec.Provider, &rec.Model, &rec.SectionID,
			&rec.InputTokens, &rec.OutputTokens, &rec.Cost, &rec.RetryCount, &rec.DurationMs, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		rec.CreatedAt = rec.CreatedAt.UTC()
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

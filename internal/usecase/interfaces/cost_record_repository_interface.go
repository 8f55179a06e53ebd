package interfaces

import (
	"context"
	"time"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
)

// ICostRecordRepository is the append-only cost ledger.
type ICostRecordRepository interface {
	Record(ctx context.Context, r entities.CostRecord) (entities.CostRecord, error)
	ListBySessionID(ctx context.Context, sessionID string) ([]entities.CostRecord, error)
	// ListBetween returns records with from <= created_at < to.
	ListBetween(ctx context.Context, from, to time.Time) ([]entities.CostRecord, error)
}

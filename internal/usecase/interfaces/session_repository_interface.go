package interfaces

import (
	"context"
	"errors"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
)

// ErrSessionStatusConflict is returned by Update when the patch carries an
// ExpectedStatus that no longer matches the stored session.
var ErrSessionStatusConflict = errors.New("session status changed concurrently")

// ISessionRepository abstracts persistence for GenerationSession.
//
// Lookups return a zero-value session (empty ID) when nothing matches.
// Update applies a partial patch and returns the stored session after it;
// setting status=completed also stamps completed_at. The status check of
// SessionUpdate.ExpectedStatus and the write are one atomic step.
type ISessionRepository interface {
	Create(ctx context.Context, s entities.GenerationSession) (entities.GenerationSession, error)
	GetByID(ctx context.Context, id string) (entities.GenerationSession, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.GenerationSession, error)
	Update(ctx context.Context, id string, patch entities.SessionUpdate) (entities.GenerationSession, error)
}

package interfaces

import (
	"context"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
)

// ISessionEventPublisher fans session lifecycle events out to listeners.
type ISessionEventPublisher interface {
	Publish(ctx context.Context, ev entities.SessionEvent) error
}

// IReportArchiver stores a completed report outside the session store and
// returns its location.
type IReportArchiver interface {
	Archive(ctx context.Context, s entities.GenerationSession) (string, error)
}

// ISessionEventSubscriber streams one session's events until cancel is called.
type ISessionEventSubscriber interface {
	Subscribe(sessionID string) (<-chan entities.SessionEvent, func())
}

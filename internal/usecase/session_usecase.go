package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
	"github.com/acg-data/bizgenius-sub001/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const maxIdeaLength = 10000

// ISessionUseCase is the session lifecycle exposed to clients.
//
// A session is only visible to its owner; an empty userID skips the check
// (admin and CLI callers).
type ISessionUseCase interface {
	CreateSession(ctx context.Context, userID, idea string, answers, branding map[string]any) (entities.GenerationSession, error)
	GetSession(ctx context.Context, userID, id string) (entities.GenerationSession, error)
	ListSessions(ctx context.Context, userID string) ([]entities.GenerationSession, error)
	RetrySession(ctx context.Context, userID, id string) (entities.GenerationSession, error)
}

type SessionUseCase struct {
	repo       interfaces.ISessionRepository
	dispatcher interfaces.IGenerationDispatcher
	now        func() time.Time
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(repo interfaces.ISessionRepository, dispatcher interfaces.IGenerationDispatcher) *SessionUseCase {
	return &SessionUseCase{repo: repo, dispatcher: dispatcher, now: time.Now}
}

func (u *SessionUseCase) CreateSession(ctx context.Context, userID, idea string, answers, branding map[string]any) (entities.GenerationSession, error) {
	userID = strings.TrimSpace(userID)
	idea = strings.TrimSpace(idea)
	log.Printf("[session][usecase] create start user_id=%s idea_len=%d answers=%d", userID, len(idea), len(answers))
	if userID == "" {
		return entities.GenerationSession{}, ErrInvalidUserID
	}
	if idea == "" || utf8.RuneCountInString(idea) > maxIdeaLength {
		log.Printf("[session][usecase] invalid idea user_id=%s idea_len=%d", userID, len(idea))
		return entities.GenerationSession{}, ErrInvalidIdea
	}

	now := u.now().UTC()
	s := entities.GenerationSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		Idea:      idea,
		Answers:   answers,
		Branding:  branding,
		Status:    entities.SessionStatusPending,
		Progress:  0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		log.Printf("[session][usecase] repository create failed user_id=%s err=%v", userID, err)
		return entities.GenerationSession{}, err
	}

	u.dispatcher.Dispatch(created.ID)
	log.Printf("[session][usecase] create success session_id=%s user_id=%s", created.ID, userID)
	return created, nil
}

func (u *SessionUseCase) GetSession(ctx context.Context, userID, id string) (entities.GenerationSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.GenerationSession{}, ErrInvalidSessionID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.GenerationSession{}, err
	}
	if s.ID == "" || (userID != "" && s.UserID != userID) {
		return entities.GenerationSession{}, ErrSessionNotFound
	}
	return s, nil
}

// ListSessions returns the user's sessions, newest first.
func (u *SessionUseCase) ListSessions(ctx context.Context, userID string) ([]entities.GenerationSession, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	items, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

// RetrySession resets a failed session to pending and re-runs all sections
// from the first one.
func (u *SessionUseCase) RetrySession(ctx context.Context, userID, id string) (entities.GenerationSession, error) {
	s, err := u.GetSession(ctx, userID, id)
	if err != nil {
		return entities.GenerationSession{}, err
	}
	if s.Status != entities.SessionStatusFailed {
		log.Printf("[session][usecase] retry rejected session_id=%s status=%s", s.ID, s.Status)
		return entities.GenerationSession{}, ErrSessionNotRetryable
	}

	failed := entities.SessionStatusFailed
	pending := entities.SessionStatusPending
	cleared := ""
	zero := 0
	updated, err := u.repo.Update(ctx, s.ID, entities.SessionUpdate{
		ExpectedStatus: &failed,
		Status:         &pending,
		CurrentStep:    &cleared,
		Progress:       &zero,
		ErrorMessage:   &cleared,
	})
	if errors.Is(err, interfaces.ErrSessionStatusConflict) {
		log.Printf("[session][usecase] retry lost race session_id=%s", s.ID)
		return entities.GenerationSession{}, ErrSessionNotRetryable
	}
	if err != nil {
		log.Printf("[session][usecase] retry reset failed session_id=%s err=%v", s.ID, err)
		return entities.GenerationSession{}, err
	}
	if updated.ID == "" {
		return entities.GenerationSession{}, ErrSessionNotFound
	}

	u.dispatcher.Dispatch(updated.ID)
	log.Printf("[session][usecase] retry dispatched session_id=%s", updated.ID)
	return updated, nil
}

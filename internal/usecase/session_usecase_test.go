package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/acg-data/bizgenius-sub001/internal/adapter/persistence/repository"
	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
	"github.com/acg-data/bizgenius-sub001/internal/usecase/interfaces"
	mock_interfaces "github.com/acg-data/bizgenius-sub001/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSessionUseCase_CreateSession(t *testing.T) {
	t.Run("invalid user", func(t *testing.T) {
		uc := NewSessionUseCase(nil, nil)
		_, err := uc.CreateSession(context.Background(), "  ", "taco truck", nil, nil)
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("invalid idea", func(t *testing.T) {
		uc := NewSessionUseCase(nil, nil)
		for _, idea := range []string{"", "   ", strings.Repeat("a", maxIdeaLength+1)} {
			_, err := uc.CreateSession(context.Background(), "u-1", idea, nil, nil)
			if !errors.Is(err, ErrInvalidIdea) {
				t.Fatalf("expected ErrInvalidIdea, got %v", err)
			}
		}
	})

	t.Run("repo error does not dispatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		dispatcher := mock_interfaces.NewMockIGenerationDispatcher(ctrl)
		uc := NewSessionUseCase(repo, dispatcher)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.GenerationSession{}, errors.New("db"))
		dispatcher.EXPECT().Dispatch(gomock.Any()).Times(0)

		_, err := uc.CreateSession(context.Background(), "u-1", "taco truck", nil, nil)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("create success dispatches generation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		dispatcher := mock_interfaces.NewMockIGenerationDispatcher(ctrl)
		uc := NewSessionUseCase(repo, dispatcher)
		uc.now = func() time.Time { return fixedNow }

		answers := map[string]any{"target_market": "students"}
		var stored entities.GenerationSession
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.GenerationSession) (entities.GenerationSession, error) {
			stored = s
			return s, nil
		})
		dispatcher.EXPECT().Dispatch(gomock.Any()).Do(func(id string) {
			if id != stored.ID {
				t.Fatalf("expected dispatch of %s, got %s", stored.ID, id)
			}
		})

		got, err := uc.CreateSession(context.Background(), " u-1 ", "  A taco truck  ", answers, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" || got.UserID != "u-1" || got.Idea != "A taco truck" {
			t.Fatalf("unexpected session: %+v", got)
		}
		if got.Status != entities.SessionStatusPending || got.Progress != 0 {
			t.Fatalf("expected pending at 0, got %s/%d", got.Status, got.Progress)
		}
		if !got.CreatedAt.Equal(fixedNow) || got.Answers["target_market"] != "students" {
			t.Fatalf("unexpected session fields: %+v", got)
		}
	})
}

func TestSessionUseCase_GetSession(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewSessionUseCase(nil, nil)
		_, err := uc.GetSession(context.Background(), "u-1", " ")
		if !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewSessionUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.GenerationSession{}, nil)

		_, err := uc.GetSession(context.Background(), "u-1", "s-1")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("other user's session is hidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewSessionUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.GenerationSession{ID: "s-1", UserID: "u-2"}, nil)

		_, err := uc.GetSession(context.Background(), "u-1", "s-1")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("empty user skips ownership", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewSessionUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.GenerationSession{ID: "s-1", UserID: "u-2"}, nil)

		got, err := uc.GetSession(context.Background(), "", "s-1")
		if err != nil || got.ID != "s-1" {
			t.Fatalf("expected session, got %+v err=%v", got, err)
		}
	})
}

func TestSessionUseCase_ListSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISessionRepository(ctrl)
	uc := NewSessionUseCase(repo, nil)

	repo.EXPECT().ListByUserID(gomock.Any(), "u-1").Return([]entities.GenerationSession{
		{ID: "old", CreatedAt: fixedNow.Add(-2 * time.Hour)},
		{ID: "new", CreatedAt: fixedNow},
		{ID: "mid", CreatedAt: fixedNow.Add(-time.Hour)},
	}, nil)

	got, err := uc.ListSessions(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[0].ID != "new" || got[1].ID != "mid" || got[2].ID != "old" {
		t.Fatalf("expected newest first, got %+v", got)
	}

	if _, err := uc.ListSessions(context.Background(), ""); !errors.Is(err, ErrInvalidUserID) {
		t.Fatalf("expected ErrInvalidUserID, got %v", err)
	}
}

func TestSessionUseCase_RetrySession(t *testing.T) {
	t.Run("only failed sessions", func(t *testing.T) {
		for _, status := range []entities.SessionStatus{entities.SessionStatusPending, entities.SessionStatusGenerating, entities.SessionStatusCompleted} {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockISessionRepository(ctrl)
			dispatcher := mock_interfaces.NewMockIGenerationDispatcher(ctrl)
			uc := NewSessionUseCase(repo, dispatcher)

			repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.GenerationSession{ID: "s-1", UserID: "u-1", Status: status}, nil)

			_, err := uc.RetrySession(context.Background(), "u-1", "s-1")
			if !errors.Is(err, ErrSessionNotRetryable) {
				t.Fatalf("%s: expected ErrSessionNotRetryable, got %v", status, err)
			}
			ctrl.Finish()
		}
	})

	t.Run("resets and dispatches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		dispatcher := mock_interfaces.NewMockIGenerationDispatcher(ctrl)
		uc := NewSessionUseCase(repo, dispatcher)

		failed := entities.GenerationSession{
			ID:           "s-1",
			UserID:       "u-1",
			Status:       entities.SessionStatusFailed,
			CurrentStep:  entities.SectionFinancial,
			Progress:     67,
			ErrorMessage: "Failed to generate Financial Projections with all providers",
		}
		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(failed, nil)
		repo.EXPECT().Update(gomock.Any(), "s-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, p entities.SessionUpdate) (entities.GenerationSession, error) {
			if p.Status == nil || *p.Status != entities.SessionStatusPending {
				t.Fatalf("expected pending status in patch")
			}
			if p.ExpectedStatus == nil || *p.ExpectedStatus != entities.SessionStatusFailed {
				t.Fatalf("expected the reset to require status failed")
			}
			if p.Progress == nil || *p.Progress != 0 || p.CurrentStep == nil || *p.CurrentStep != "" || p.ErrorMessage == nil || *p.ErrorMessage != "" {
				t.Fatalf("expected progress, step and error to be reset: %+v", p)
			}
			return p.Apply(failed, fixedNow), nil
		})
		dispatcher.EXPECT().Dispatch("s-1")

		got, err := uc.RetrySession(context.Background(), "u-1", "s-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.SessionStatusPending || got.ErrorMessage != "" || got.Progress != 0 {
			t.Fatalf("unexpected session: %+v", got)
		}
	})
}

// gatedSessionRepo holds every GetByID until all callers have read, so
// concurrent retries all observe the failed status.
type gatedSessionRepo struct {
	*repository.MemorySessionRepository
	arrived sync.WaitGroup
}

func (r *gatedSessionRepo) GetByID(ctx context.Context, id string) (entities.GenerationSession, error) {
	s, err := r.MemorySessionRepository.GetByID(ctx, id)
	r.arrived.Done()
	r.arrived.Wait()
	return s, err
}

type countingDispatcher struct {
	runs atomic.Int32
}

func (d *countingDispatcher) Dispatch(string) { d.runs.Add(1) }

func TestSessionUseCase_RetrySession_Concurrent(t *testing.T) {
	t.Run("status changed after read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		dispatcher := mock_interfaces.NewMockIGenerationDispatcher(ctrl)
		uc := NewSessionUseCase(repo, dispatcher)

		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.GenerationSession{ID: "s-1", UserID: "u-1", Status: entities.SessionStatusFailed}, nil)
		repo.EXPECT().Update(gomock.Any(), "s-1", gomock.Any()).Return(entities.GenerationSession{}, interfaces.ErrSessionStatusConflict)
		dispatcher.EXPECT().Dispatch(gomock.Any()).Times(0)

		_, err := uc.RetrySession(context.Background(), "u-1", "s-1")
		if !errors.Is(err, ErrSessionNotRetryable) {
			t.Fatalf("expected ErrSessionNotRetryable, got %v", err)
		}
	})

	t.Run("double submit dispatches once", func(t *testing.T) {
		const callers = 2
		repo := &gatedSessionRepo{MemorySessionRepository: repository.NewMemorySessionRepository()}
		repo.arrived.Add(callers)
		if _, err := repo.Create(context.Background(), entities.GenerationSession{
			ID:           "s-1",
			UserID:       "u-1",
			Status:       entities.SessionStatusFailed,
			Progress:     42,
			ErrorMessage: "Failed to generate Business Plan with all providers",
		}); err != nil {
			t.Fatalf("create: %v", err)
		}
		dispatcher := &countingDispatcher{}
		uc := NewSessionUseCase(repo, dispatcher)

		var (
			wg        sync.WaitGroup
			succeeded atomic.Int32
			rejected  atomic.Int32
		)
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := uc.RetrySession(context.Background(), "u-1", "s-1")
				switch {
				case err == nil:
					succeeded.Add(1)
				case errors.Is(err, ErrSessionNotRetryable):
					rejected.Add(1)
				}
			}()
		}
		wg.Wait()

		if succeeded.Load() != 1 || rejected.Load() != 1 {
			t.Fatalf("expected one retry to win, got succeeded=%d rejected=%d", succeeded.Load(), rejected.Load())
		}
		if dispatcher.runs.Load() != 1 {
			t.Fatalf("expected one dispatched run, got %d", dispatcher.runs.Load())
		}
	})
}

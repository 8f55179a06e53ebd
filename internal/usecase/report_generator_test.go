package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
	"github.com/acg-data/bizgenius-sub001/internal/usecase/interfaces"
	mock_interfaces "github.com/acg-data/bizgenius-sub001/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const testSessionID = "s-1"

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type generatorFixture struct {
	sessions  *mock_interfaces.MockISessionRepository
	costs     *mock_interfaces.MockICostRecordRepository
	registry  *mock_interfaces.MockIProviderRegistry
	pricing   *mock_interfaces.MockICostCalculator
	limiter   *mock_interfaces.MockIRateLimiter
	prompts   *mock_interfaces.MockIPromptBuilder
	events    *mock_interfaces.MockISessionEventPublisher
	providers map[string]*mock_interfaces.MockILLMProvider

	state     entities.GenerationSession
	updates   []entities.SessionUpdate
	records   []entities.CostRecord
	published []entities.SessionEvent
	sleeps    []time.Duration
	priorSeen map[string]int

	promptErr error
	recordErr error
	lostClaim bool
}

func newGeneratorFixture(t *testing.T, order ...string) *generatorFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &generatorFixture{
		sessions:  mock_interfaces.NewMockISessionRepository(ctrl),
		costs:     mock_interfaces.NewMockICostRecordRepository(ctrl),
		registry:  mock_interfaces.NewMockIProviderRegistry(ctrl),
		pricing:   mock_interfaces.NewMockICostCalculator(ctrl),
		limiter:   mock_interfaces.NewMockIRateLimiter(ctrl),
		prompts:   mock_interfaces.NewMockIPromptBuilder(ctrl),
		events:    mock_interfaces.NewMockISessionEventPublisher(ctrl),
		providers: map[string]*mock_interfaces.MockILLMProvider{},
		priorSeen: map[string]int{},
		state: entities.GenerationSession{
			ID:        testSessionID,
			UserID:    "u-1",
			Idea:      "A taco truck in Austin",
			Answers:   map[string]any{"budget": "50000"},
			Status:    entities.SessionStatusPending,
			CreatedAt: fixedNow,
			UpdatedAt: fixedNow,
		},
	}

	f.registry.EXPECT().PriorityOrder().Return(order).AnyTimes()
	for _, id := range order {
		p := mock_interfaces.NewMockILLMProvider(ctrl)
		f.providers[id] = p
		f.registry.EXPECT().GetProvider(id).Return(p, nil).AnyTimes()
		f.registry.EXPECT().Config(id).Return(entities.ProviderConfig{
			ID:       id,
			JSONMode: true,
			Models:   entities.ProviderModels{Primary: id + "-primary"},
		}, nil).AnyTimes()
	}

	f.limiter.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.limiter.EXPECT().Record(gomock.Any()).AnyTimes()
	f.pricing.EXPECT().CalculateCost(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(entities.CostBreakdown{InputCost: 0.0001, OutputCost: 0.0002, TotalCost: 0.0003}).AnyTimes()

	f.prompts.EXPECT().Build(gomock.Any(), gomock.Any()).DoAndReturn(func(id string, gc *entities.GenerationContext) (entities.Prompt, error) {
		if f.promptErr != nil {
			return entities.Prompt{}, f.promptErr
		}
		f.priorSeen[id] = len(gc.Sections)
		return entities.Prompt{System: "system " + id, User: "user " + id}, nil
	}).AnyTimes()

	f.sessions.EXPECT().GetByID(gomock.Any(), testSessionID).DoAndReturn(func(context.Context, string) (entities.GenerationSession, error) {
		return f.state, nil
	}).AnyTimes()
	f.sessions.EXPECT().Update(gomock.Any(), testSessionID, gomock.Any()).DoAndReturn(func(_ context.Context, _ string, p entities.SessionUpdate) (entities.GenerationSession, error) {
		if p.ExpectedStatus != nil && (f.lostClaim || f.state.Status != *p.ExpectedStatus) {
			return entities.GenerationSession{}, interfaces.ErrSessionStatusConflict
		}
		f.updates = append(f.updates, p)
		f.state = p.Apply(f.state, fixedNow)
		return f.state, nil
	}).AnyTimes()

	f.costs.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.CostRecord) (entities.CostRecord, error) {
		if f.recordErr != nil {
			return entities.CostRecord{}, f.recordErr
		}
		f.records = append(f.records, r)
		return r, nil
	}).AnyTimes()
	f.events.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev entities.SessionEvent) error {
		f.published = append(f.published, ev)
		return nil
	}).AnyTimes()

	return f
}

func (f *generatorFixture) generator() *ReportGenerator {
	return NewReportGenerator(f.sessions, f.costs, f.registry, f.pricing, f.limiter, f.prompts,
		WithEventPublisher(f.events),
		WithClock(func() time.Time { return fixedNow }),
		WithSleeper(func(_ context.Context, d time.Duration) error {
			f.sleeps = append(f.sleeps, d)
			return nil
		}),
	)
}

func okReply(content string) entities.LLMResponse {
	return entities.LLMResponse{Success: true, Content: content, InputTokens: 120, OutputTokens: 80}
}

func TestReportGenerator_Generate(t *testing.T) {
	t.Run("completes every section in order", func(t *testing.T) {
		f := newGeneratorFixture(t, "groq")
		var requests []entities.LLMRequest
		f.providers["groq"].EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req entities.LLMRequest) (entities.LLMResponse, error) {
			requests = append(requests, req)
			return okReply(`{"summary":"ok"}`), nil
		}).Times(12)

		if err := f.generator().Generate(context.Background(), testSessionID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if f.state.Status != entities.SessionStatusCompleted {
			t.Fatalf("expected completed, got %s", f.state.Status)
		}
		if f.state.Progress != 100 {
			t.Fatalf("expected progress 100, got %d", f.state.Progress)
		}
		if f.state.CompletedAt == nil {
			t.Fatalf("expected completed_at to be set")
		}
		if len(f.state.Result) != 12 {
			t.Fatalf("expected 12 sections in result, got %d", len(f.state.Result))
		}

		sections := entities.Sections()
		if len(f.updates) != len(sections)+1 {
			t.Fatalf("expected %d updates, got %d", len(sections)+1, len(f.updates))
		}
		if f.updates[0].Status == nil || *f.updates[0].Status != entities.SessionStatusGenerating {
			t.Fatalf("expected first update to move the session into generating")
		}
		last := -1
		for i, sec := range sections {
			u := f.updates[i]
			if u.CurrentStep == nil || *u.CurrentStep != sec.ID {
				t.Fatalf("update %d: expected current step %s", i, sec.ID)
			}
			if u.Progress == nil || *u.Progress < last {
				t.Fatalf("update %d: progress went backwards", i)
			}
			last = *u.Progress
			if f.priorSeen[sec.ID] != i {
				t.Fatalf("section %s: expected %d prior sections in context, got %d", sec.ID, i, f.priorSeen[sec.ID])
			}
		}

		market := requests[0]
		if market.Model != "groq-primary" || market.MaxTokens != 3000 || !market.JSONMode || market.Temperature != 0.7 {
			t.Fatalf("unexpected market request: %+v", market)
		}
		if len(market.Messages) != 2 || market.Messages[0].Role != entities.ChatRoleSystem || market.Messages[1].Content != "user market" {
			t.Fatalf("unexpected market messages: %+v", market.Messages)
		}

		if len(f.records) != 12 {
			t.Fatalf("expected 12 cost records, got %d", len(f.records))
		}
		for _, r := range f.records {
			if r.Provider != "groq" || r.Model != "groq-primary" || r.SessionID != testSessionID || r.RetryCount != 0 || r.ID == "" {
				t.Fatalf("unexpected cost record: %+v", r)
			}
			if r.InputTokens != 120 || r.OutputTokens != 80 || r.Cost != 0.0003 {
				t.Fatalf("unexpected cost record usage: %+v", r)
			}
		}

		if len(f.published) != 26 {
			t.Fatalf("expected 26 events, got %d", len(f.published))
		}
		if f.published[0].Type != entities.SessionEventStarted || f.published[len(f.published)-1].Type != entities.SessionEventCompleted {
			t.Fatalf("unexpected event bounds: first=%s last=%s", f.published[0].Type, f.published[len(f.published)-1].Type)
		}
		if len(f.sleeps) != 0 {
			t.Fatalf("expected no backoff, got %v", f.sleeps)
		}
	})

	t.Run("fails over to the next provider", func(t *testing.T) {
		cases := []struct {
			name  string
			reply entities.LLMResponse
			err   error
		}{
			{name: "http failure", reply: entities.LLMResponse{Success: false, Error: "upstream unavailable", StatusCode: http.StatusBadGateway}},
			{name: "transport error", err: errors.New("dial tcp: connection refused")},
			{name: "unparseable reply", reply: okReply("I cannot help with that.")},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newGeneratorFixture(t, "openrouter", "groq")
				f.providers["openrouter"].EXPECT().Generate(gomock.Any(), gomock.Any()).Return(tc.reply, tc.err).Times(12)
				f.providers["groq"].EXPECT().Generate(gomock.Any(), gomock.Any()).Return(okReply("```json\n{\"a\":1}\n```"), nil).Times(12)

				if err := f.generator().Generate(context.Background(), testSessionID); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				for _, r := range f.records {
					if r.Provider != "groq" {
						t.Fatalf("expected groq to serve every section, got %s", r.Provider)
					}
				}
				if len(f.sleeps) != 0 {
					t.Fatalf("failover should not back off, got %v", f.sleeps)
				}
			})
		}
	})

	t.Run("first successful provider short-circuits the sweep", func(t *testing.T) {
		f := newGeneratorFixture(t, "openrouter", "groq")
		f.providers["openrouter"].EXPECT().Generate(gomock.Any(), gomock.Any()).Return(okReply(`{"a":1}`), nil).Times(12)
		f.providers["groq"].EXPECT().Generate(gomock.Any(), gomock.Any()).Times(0)

		if err := f.generator().Generate(context.Background(), testSessionID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("retries then marks the session failed", func(t *testing.T) {
		f := newGeneratorFixture(t, "groq")
		f.providers["groq"].EXPECT().Generate(gomock.Any(), gomock.Any()).
			Return(entities.LLMResponse{Success: false, Error: "internal error", StatusCode: http.StatusInternalServerError}, nil).Times(3)

		err := f.generator().Generate(context.Background(), testSessionID)
		var all *AllProvidersFailedError
		if !errors.As(err, &all) {
			t.Fatalf("expected AllProvidersFailedError, got %v", err)
		}
		if err.Error() != "Failed to generate Market Research with all providers" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
		if f.state.Status != entities.SessionStatusFailed || f.state.ErrorMessage != err.Error() {
			t.Fatalf("unexpected final state: status=%s error=%q", f.state.Status, f.state.ErrorMessage)
		}
		want := []time.Duration{1500 * time.Millisecond, 2250 * time.Millisecond}
		if len(f.sleeps) != len(want) || f.sleeps[0] != want[0] || f.sleeps[1] != want[1] {
			t.Fatalf("expected backoff %v, got %v", want, f.sleeps)
		}
		if len(f.records) != 0 {
			t.Fatalf("expected no cost records, got %d", len(f.records))
		}
		if ev := f.published[len(f.published)-1]; ev.Type != entities.SessionEventFailed || ev.Error != err.Error() {
			t.Fatalf("expected failed event, got %+v", ev)
		}
	})

	t.Run("rate limited sweeps back off longer", func(t *testing.T) {
		f := newGeneratorFixture(t, "groq")
		f.providers["groq"].EXPECT().Generate(gomock.Any(), gomock.Any()).
			Return(entities.LLMResponse{Success: false, Error: "Rate limit reached", StatusCode: http.StatusTooManyRequests}, nil).Times(3)

		if err := f.generator().Generate(context.Background(), testSessionID); err == nil {
			t.Fatalf("expected error")
		}
		want := []time.Duration{2 * time.Second, 4 * time.Second}
		if len(f.sleeps) != len(want) || f.sleeps[0] != want[0] || f.sleeps[1] != want[1] {
			t.Fatalf("expected backoff %v, got %v", want, f.sleeps)
		}
	})

	t.Run("recovers on a later attempt", func(t *testing.T) {
		f := newGeneratorFixture(t, "groq")
		calls := 0
		f.providers["groq"].EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, entities.LLMRequest) (entities.LLMResponse, error) {
			calls++
			if calls == 1 {
				return entities.LLMResponse{Success: false, Error: "overloaded", StatusCode: http.StatusServiceUnavailable}, nil
			}
			return okReply(`{"a":1}`), nil
		}).Times(13)

		if err := f.generator().Generate(context.Background(), testSessionID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.records[0].SectionID != entities.SectionMarket || f.records[0].RetryCount != 1 {
			t.Fatalf("expected market to record one retry, got %+v", f.records[0])
		}
		if f.records[1].RetryCount != 0 {
			t.Fatalf("expected later sections without retries, got %d", f.records[1].RetryCount)
		}
		if len(f.sleeps) != 1 {
			t.Fatalf("expected one backoff, got %v", f.sleeps)
		}
	})

	t.Run("cost ledger failure does not fail the run", func(t *testing.T) {
		f := newGeneratorFixture(t, "groq")
		f.recordErr = errors.New("ledger down")
		f.providers["groq"].EXPECT().Generate(gomock.Any(), gomock.Any()).Return(okReply(`{"a":1}`), nil).Times(12)

		if err := f.generator().Generate(context.Background(), testSessionID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.state.Status != entities.SessionStatusCompleted {
			t.Fatalf("expected completed, got %s", f.state.Status)
		}
	})

	t.Run("prompt errors are not retried", func(t *testing.T) {
		f := newGeneratorFixture(t, "groq")
		f.promptErr = errors.New("template missing")
		f.providers["groq"].EXPECT().Generate(gomock.Any(), gomock.Any()).Times(0)

		err := f.generator().Generate(context.Background(), testSessionID)
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("expected ConfigurationError, got %v", err)
		}
		if len(f.sleeps) != 0 {
			t.Fatalf("expected no retries, got %v", f.sleeps)
		}
		if f.state.Status != entities.SessionStatusFailed {
			t.Fatalf("expected failed, got %s", f.state.Status)
		}
	})

	t.Run("cancellation stops the run and records failure", func(t *testing.T) {
		f := newGeneratorFixture(t, "groq", "openai")
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		f.providers["groq"].EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ entities.LLMRequest) (entities.LLMResponse, error) {
			cancel()
			return entities.LLMResponse{}, ctx.Err()
		}).Times(1)
		f.providers["openai"].EXPECT().Generate(gomock.Any(), gomock.Any()).Times(0)

		err := f.generator().Generate(ctx, testSessionID)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if f.state.Status != entities.SessionStatusFailed {
			t.Fatalf("expected failed, got %s", f.state.Status)
		}
	})

	t.Run("skips sessions that are not pending", func(t *testing.T) {
		for _, status := range []entities.SessionStatus{entities.SessionStatusGenerating, entities.SessionStatusCompleted, entities.SessionStatusFailed} {
			f := newGeneratorFixture(t, "groq")
			f.state.Status = status
			f.providers["groq"].EXPECT().Generate(gomock.Any(), gomock.Any()).Times(0)

			err := f.generator().Generate(context.Background(), testSessionID)
			if !errors.Is(err, ErrSessionNotPending) {
				t.Fatalf("%s: expected ErrSessionNotPending, got %v", status, err)
			}
			if len(f.updates) != 0 || f.state.Status != status {
				t.Fatalf("%s: expected session untouched, got %d updates status=%s", status, len(f.updates), f.state.Status)
			}
		}
	})

	t.Run("loses the claim to another run", func(t *testing.T) {
		f := newGeneratorFixture(t, "groq")
		f.lostClaim = true
		f.providers["groq"].EXPECT().Generate(gomock.Any(), gomock.Any()).Times(0)

		err := f.generator().Generate(context.Background(), testSessionID)
		if !errors.Is(err, ErrSessionNotPending) {
			t.Fatalf("expected ErrSessionNotPending, got %v", err)
		}
		if f.state.Status != entities.SessionStatusPending || len(f.published) != 0 {
			t.Fatalf("expected no writes or events, got status=%s events=%d", f.state.Status, len(f.published))
		}
	})

	t.Run("unparseable reply mentioning 429 backs off generically", func(t *testing.T) {
		f := newGeneratorFixture(t, "groq")
		f.providers["groq"].EXPECT().Generate(gomock.Any(), gomock.Any()).
			Return(okReply("Our truck sells 429 tacos a day, no JSON here"), nil).Times(DefaultMaxAttempts)

		if err := f.generator().Generate(context.Background(), testSessionID); err == nil {
			t.Fatalf("expected failure")
		}
		want := []time.Duration{1500 * time.Millisecond, 2250 * time.Millisecond}
		if len(f.sleeps) != len(want) || f.sleeps[0] != want[0] || f.sleeps[1] != want[1] {
			t.Fatalf("expected generic backoff %v, got %v", want, f.sleeps)
		}
	})

	t.Run("session not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		sessions.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.GenerationSession{}, nil)
		sessions.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		g := NewReportGenerator(sessions, nil, nil, nil, nil, nil)
		if err := g.Generate(context.Background(), "missing"); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("blank session id", func(t *testing.T) {
		g := NewReportGenerator(nil, nil, nil, nil, nil, nil)
		if err := g.Generate(context.Background(), "  "); !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})
}

func TestRetryDelay(t *testing.T) {
	rateLimited := &AllProvidersFailedError{Failures: []ProviderFailure{
		{Provider: "openrouter", Message: "bad gateway", StatusCode: http.StatusBadGateway},
		{Provider: "groq", StatusCode: http.StatusTooManyRequests},
	}}
	generic := &AllProvidersFailedError{Failures: []ProviderFailure{{Provider: "groq", Message: "boom", StatusCode: 500}}}
	parseOnly := &AllProvidersFailedError{Failures: []ProviderFailure{{
		Provider:    "groq",
		Message:     (&ParseError{Provider: "groq", Preview: "Our truck sells 429 tacos a day"}).Error(),
		Unparseable: true,
	}}}

	cases := []struct {
		name    string
		err     error
		attempt int
		want    time.Duration
		reason  string
	}{
		{"rate limit first", rateLimited, 1, 2 * time.Second, "rate_limit"},
		{"rate limit second", rateLimited, 2, 4 * time.Second, "rate_limit"},
		{"rate limit capped", rateLimited, 5, 30 * time.Second, "rate_limit"},
		{"rate limit message", errors.New("429 Too Many Requests"), 1, 2 * time.Second, "rate_limit"},
		{"generic first", generic, 1, 1500 * time.Millisecond, "generic"},
		{"generic second", generic, 2, 2250 * time.Millisecond, "generic"},
		{"generic capped", generic, 5, 5 * time.Second, "generic"},
		{"parse failure quoting 429", parseOnly, 1, 1500 * time.Millisecond, "generic"},
		{"bare parse error", &ParseError{Provider: "groq", Preview: "rate limit of 429 per day"}, 1, 1500 * time.Millisecond, "generic"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, reason := retryDelay(tc.err, tc.attempt)
			if got != tc.want || reason != tc.reason {
				t.Fatalf("expected %s/%s, got %s/%s", tc.want, tc.reason, got, reason)
			}
		})
	}
}

func TestProgressBefore(t *testing.T) {
	cases := map[int]int{0: 0, 1: 8, 2: 17, 6: 50, 11: 92, 12: 100}
	for i, want := range cases {
		if got := progressBefore(i, 12); got != want {
			t.Fatalf("progressBefore(%d, 12): expected %d, got %d", i, want, got)
		}
	}
	if got := progressBefore(3, 0); got != 0 {
		t.Fatalf("expected 0 for empty pipeline, got %d", got)
	}
}

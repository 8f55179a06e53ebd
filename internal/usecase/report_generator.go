package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
	"github.com/acg-data/bizgenius-sub001/internal/infrastructure/metrics"
	"github.com/acg-data/bizgenius-sub001/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	DefaultMaxAttempts = 3
	sectionTemperature = 0.7

	rateLimitBaseDelay = time.Second
	rateLimitMaxDelay  = 30 * time.Second
	genericBaseDelay   = time.Second
	genericMaxDelay    = 5 * time.Second
)

// Sleeper blocks for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// IReportGenerator runs the full section pipeline of one session.
type IReportGenerator interface {
	Generate(ctx context.Context, sessionID string) error
}

// SectionResult is the outcome of one successfully generated section.
type SectionResult struct {
	Content      entities.SectionContent
	Provider     string
	Model        string
	Cost         entities.CostBreakdown
	InputTokens  int
	OutputTokens int
	Duration     time.Duration
	RetryCount   int
}

// ReportGenerator drives sequential, context-chaining generation of every
// report section with per-section retry and cross-provider failover.
type ReportGenerator struct {
	sessions interfaces.ISessionRepository
	costs    interfaces.ICostRecordRepository
	registry interfaces.IProviderRegistry
	pricing  interfaces.ICostCalculator
	limiter  interfaces.IRateLimiter
	prompts  interfaces.IPromptBuilder
	events   interfaces.ISessionEventPublisher
	archiver interfaces.IReportArchiver

	sleep       Sleeper
	now         func() time.Time
	maxAttempts int
}

var _ IReportGenerator = (*ReportGenerator)(nil)

type GeneratorOption func(*ReportGenerator)

func WithSleeper(s Sleeper) GeneratorOption {
	return func(g *ReportGenerator) { g.sleep = s }
}

func WithClock(now func() time.Time) GeneratorOption {
	return func(g *ReportGenerator) { g.now = now }
}

func WithMaxAttempts(n int) GeneratorOption {
	return func(g *ReportGenerator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

func WithEventPublisher(p interfaces.ISessionEventPublisher) GeneratorOption {
	return func(g *ReportGenerator) { g.events = p }
}

func WithReportArchiver(a interfaces.IReportArchiver) GeneratorOption {
	return func(g *ReportGenerator) { g.archiver = a }
}

func NewReportGenerator(
	sessions interfaces.ISessionRepository,
	costs interfaces.ICostRecordRepository,
	registry interfaces.IProviderRegistry,
	pricing interfaces.ICostCalculator,
	limiter interfaces.IRateLimiter,
	prompts interfaces.IPromptBuilder,
	opts ...GeneratorOption,
) *ReportGenerator {
	g := &ReportGenerator{
		sessions:    sessions,
		costs:       costs,
		registry:    registry,
		pricing:     pricing,
		limiter:     limiter,
		prompts:     prompts,
		sleep:       sleepContext,
		now:         time.Now,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *ReportGenerator) Generate(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	log.Printf("[generation][usecase] run start session_id=%s", sessionID)
	if sessionID == "" {
		return ErrInvalidSessionID
	}

	session, err := g.sessions.GetByID(ctx, sessionID)
	if err != nil {
		log.Printf("[generation][usecase] failed loading session session_id=%s err=%v", sessionID, err)
		return err
	}
	if session.ID == "" {
		log.Printf("[generation][usecase] session not found session_id=%s", sessionID)
		return ErrSessionNotFound
	}
	if session.Status != entities.SessionStatusPending {
		log.Printf("[generation][usecase] run skipped session_id=%s status=%s", sessionID, session.Status)
		return ErrSessionNotPending
	}

	metrics.GenerationsActive.Inc()
	defer metrics.GenerationsActive.Dec()
	runStart := g.now()

	sections := entities.Sections()
	gc := entities.NewGenerationContext(session)
	result := make(map[string]entities.SectionContent, len(sections))

	for i, sec := range sections {
		progress := progressBefore(i, len(sections))
		if err := g.markSectionStart(ctx, session, i, sec, progress); err != nil {
			if errors.Is(err, interfaces.ErrSessionStatusConflict) {
				log.Printf("[generation][usecase] run already claimed session_id=%s", session.ID)
				return ErrSessionNotPending
			}
			return g.fail(ctx, session, err)
		}

		out, err := g.generateSectionWithRetry(ctx, sec, gc)
		if err != nil {
			log.Printf("[generation][usecase] section failed session_id=%s section=%s err=%v", session.ID, sec.ID, err)
			return g.fail(ctx, session, err)
		}

		gc.Sections[sec.ID] = out.Content
		result[sec.ID] = out.Content
		g.recordCost(ctx, session.ID, sec, out)
		g.publish(ctx, entities.SessionEvent{
			SessionID: session.ID,
			UserID:    session.UserID,
			Type:      entities.SessionEventSectionCompleted,
			Section:   sec.ID,
			Progress:  progressBefore(i+1, len(sections)),
			Provider:  out.Provider,
		})
		log.Printf("[generation][usecase] section done session_id=%s section=%s provider=%s retries=%d duration_ms=%d", session.ID, sec.ID, out.Provider, out.RetryCount, out.Duration.Milliseconds())
	}

	completed := entities.SessionStatusCompleted
	full := 100
	final, err := g.sessions.Update(ctx, session.ID, entities.SessionUpdate{
		Status:   &completed,
		Progress: &full,
		Result:   result,
	})
	if err != nil {
		log.Printf("[generation][usecase] failed storing result session_id=%s err=%v", session.ID, err)
		return g.fail(ctx, session, err)
	}

	metrics.GenerationsTotal.WithLabelValues(string(entities.SessionStatusCompleted)).Inc()
	metrics.GenerationDuration.Observe(g.now().Sub(runStart).Seconds())
	g.archive(ctx, final)
	g.publish(ctx, entities.SessionEvent{
		SessionID: session.ID,
		UserID:    session.UserID,
		Type:      entities.SessionEventCompleted,
		Progress:  100,
	})
	log.Printf("[generation][usecase] run completed session_id=%s sections=%d", session.ID, len(result))
	return nil
}

// markSectionStart persists the step before generation begins. The first
// write also claims the session, moving it from pending into generating, and
// clears a previous error.
func (g *ReportGenerator) markSectionStart(ctx context.Context, s entities.GenerationSession, i int, sec entities.SectionSpec, progress int) error {
	step := sec.ID
	patch := entities.SessionUpdate{CurrentStep: &step, Progress: &progress}
	if i == 0 {
		pending := entities.SessionStatusPending
		generating := entities.SessionStatusGenerating
		cleared := ""
		patch.ExpectedStatus = &pending
		patch.Status = &generating
		patch.ErrorMessage = &cleared
	}
	if _, err := g.sessions.Update(ctx, s.ID, patch); err != nil {
		log.Printf("[generation][usecase] progress update failed session_id=%s section=%s err=%v", s.ID, sec.ID, err)
		return err
	}

	if i == 0 {
		g.publish(ctx, entities.SessionEvent{SessionID: s.ID, UserID: s.UserID, Type: entities.SessionEventStarted, Section: sec.ID, Progress: progress})
	}
	g.publish(ctx, entities.SessionEvent{SessionID: s.ID, UserID: s.UserID, Type: entities.SessionEventSectionStarted, Section: sec.ID, Progress: progress})
	return nil
}

// fail writes the terminal failed state. The write is detached from ctx so a
// cancelled run is still recorded.
func (g *ReportGenerator) fail(ctx context.Context, s entities.GenerationSession, cause error) error {
	msg := strings.TrimSpace(cause.Error())
	if msg == "" {
		msg = defaultFailureMessage
	}
	failed := entities.SessionStatusFailed
	wctx := context.WithoutCancel(ctx)
	if _, err := g.sessions.Update(wctx, s.ID, entities.SessionUpdate{Status: &failed, ErrorMessage: &msg}); err != nil {
		log.Printf("[generation][usecase] failed marking session failed session_id=%s err=%v", s.ID, err)
	}
	metrics.GenerationsTotal.WithLabelValues(string(entities.SessionStatusFailed)).Inc()
	g.publish(wctx, entities.SessionEvent{SessionID: s.ID, UserID: s.UserID, Type: entities.SessionEventFailed, Error: msg})
	log.Printf("[generation][usecase] run failed session_id=%s err=%q", s.ID, msg)
	return cause
}

func (g *ReportGenerator) generateSectionWithRetry(ctx context.Context, sec entities.SectionSpec, gc *entities.GenerationContext) (SectionResult, error) {
	start := g.now()
	var lastErr error

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		out, err := g.generateSection(ctx, sec, gc)
		if err == nil {
			out.RetryCount = attempt - 1
			out.Duration = g.now().Sub(start)
			metrics.SectionDuration.WithLabelValues(sec.ID).Observe(out.Duration.Seconds())
			return out, nil
		}

		var cfgErr *ConfigurationError
		if errors.As(err, &cfgErr) || ctx.Err() != nil {
			return SectionResult{}, err
		}
		lastErr = err
		if attempt == g.maxAttempts {
			break
		}

		delay, reason := retryDelay(err, attempt)
		metrics.SectionRetries.WithLabelValues(sec.ID, reason).Inc()
		log.Printf("[generation][usecase] section attempt failed section=%s attempt=%d/%d backoff=%s reason=%s err=%v", sec.ID, attempt, g.maxAttempts, delay, reason, err)
		if err := g.sleep(ctx, delay); err != nil {
			return SectionResult{}, err
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("failed to generate %s after %d attempts", sec.Name, g.maxAttempts)
	}
	return SectionResult{}, lastErr
}

// generateSection sweeps providers in priority order; the first reply that
// yields a JSON object wins.
func (g *ReportGenerator) generateSection(ctx context.Context, sec entities.SectionSpec, gc *entities.GenerationContext) (SectionResult, error) {
	prompt, err := g.prompts.Build(sec.ID, gc)
	if err != nil {
		return SectionResult{}, &ConfigurationError{Err: err}
	}

	var failures []ProviderFailure
	for _, providerID := range g.registry.PriorityOrder() {
		provider, err := g.registry.GetProvider(providerID)
		if err != nil {
			return SectionResult{}, &ConfigurationError{Err: err}
		}
		cfg, err := g.registry.Config(providerID)
		if err != nil {
			return SectionResult{}, &ConfigurationError{Err: err}
		}

		if err := g.limiter.Acquire(ctx, providerID); err != nil {
			return SectionResult{}, err
		}
		callStart := g.now()
		resp, callErr := provider.Generate(ctx, entities.LLMRequest{
			Model: cfg.Models.Primary,
			Messages: []entities.ChatMessage{
				{Role: entities.ChatRoleSystem, Content: prompt.System},
				{Role: entities.ChatRoleUser, Content: prompt.User},
			},
			Temperature: sectionTemperature,
			MaxTokens:   sec.MaxTokens,
			JSONMode:    true,
		})
		g.limiter.Record(providerID)
		metrics.ProviderLatency.WithLabelValues(providerID).Observe(g.now().Sub(callStart).Seconds())

		if callErr != nil {
			if ctx.Err() != nil {
				return SectionResult{}, ctx.Err()
			}
			metrics.ProviderCalls.WithLabelValues(providerID, metrics.OutcomeError).Inc()
			log.Printf("[generation][usecase] provider error section=%s provider=%s err=%v", sec.ID, providerID, callErr)
			failures = append(failures, ProviderFailure{Provider: providerID, Message: callErr.Error()})
			continue
		}
		if !resp.Success {
			metrics.ProviderCalls.WithLabelValues(providerID, metrics.OutcomeFailure).Inc()
			log.Printf("[generation][usecase] provider failed section=%s provider=%s status=%d err=%s", sec.ID, providerID, resp.StatusCode, resp.Error)
			failures = append(failures, ProviderFailure{Provider: providerID, Message: resp.Error, StatusCode: resp.StatusCode})
			continue
		}

		content, err := extractJSON(providerID, resp.Content)
		if err != nil {
			metrics.ProviderCalls.WithLabelValues(providerID, metrics.OutcomeParseError).Inc()
			log.Printf("[generation][usecase] unparseable reply section=%s provider=%s err=%v", sec.ID, providerID, err)
			failures = append(failures, ProviderFailure{Provider: providerID, Message: err.Error(), Unparseable: true})
			continue
		}

		metrics.ProviderCalls.WithLabelValues(providerID, metrics.OutcomeSuccess).Inc()
		return SectionResult{
			Content:      content,
			Provider:     providerID,
			Model:        cfg.Models.Primary,
			Cost:         g.pricing.CalculateCost(providerID, cfg.Models.Primary, resp.InputTokens, resp.OutputTokens),
			InputTokens:  resp.InputTokens,
			OutputTokens: resp.OutputTokens,
		}, nil
	}

	return SectionResult{}, &AllProvidersFailedError{SectionID: sec.ID, SectionName: sec.Name, Failures: failures}
}

// recordCost appends the ledger entry. A ledger outage never fails the run.
func (g *ReportGenerator) recordCost(ctx context.Context, sessionID string, sec entities.SectionSpec, out SectionResult) {
	metrics.TokensTotal.WithLabelValues(out.Provider, "input").Add(float64(out.InputTokens))
	metrics.TokensTotal.WithLabelValues(out.Provider, "output").Add(float64(out.OutputTokens))
	metrics.CostUSD.WithLabelValues(out.Provider).Add(out.Cost.TotalCost)

	if g.costs == nil {
		return
	}
	rec := entities.CostRecord{
		ID:           uuid.NewString(),
		SessionID:    sessionID,
		Provider:     out.Provider,
		Model:        out.Model,
		SectionID:    sec.ID,
		InputTokens:  out.InputTokens,
		OutputTokens: out.OutputTokens,
		Cost:         out.Cost.TotalCost,
		RetryCount:   out.RetryCount,
		DurationMs:   out.Duration.Milliseconds(),
		CreatedAt:    g.now().UTC(),
	}
	if _, err := g.costs.Record(ctx, rec); err != nil {
		log.Printf("[generation][usecase] cost record failed session_id=%s section=%s err=%v", sessionID, sec.ID, err)
	}
}

func (g *ReportGenerator) archive(ctx context.Context, s entities.GenerationSession) {
	if g.archiver == nil {
		return
	}
	location, err := g.archiver.Archive(ctx, s)
	if err != nil {
		log.Printf("[generation][usecase] archive failed session_id=%s err=%v", s.ID, err)
		return
	}
	log.Printf("[generation][usecase] report archived session_id=%s location=%s", s.ID, location)
}

func (g *ReportGenerator) publish(ctx context.Context, ev entities.SessionEvent) {
	if g.events == nil {
		return
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = g.now().UTC()
	}
	if err := g.events.Publish(ctx, ev); err != nil {
		log.Printf("[generation][usecase] event publish failed session_id=%s type=%s err=%v", ev.SessionID, ev.Type, err)
	}
}

// progressBefore is the percentage of sections completed before index i.
func progressBefore(i, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(i) / float64(total) * 100))
}

// retryDelay picks the backoff after a failed attempt (1-based).
func retryDelay(err error, attempt int) (time.Duration, string) {
	if isRateLimitError(err) {
		d := time.Duration(float64(rateLimitBaseDelay) * math.Pow(2, float64(attempt)))
		return min(d, rateLimitMaxDelay), "rate_limit"
	}
	d := time.Duration(float64(genericBaseDelay) * math.Pow(1.5, float64(attempt)))
	return min(d, genericMaxDelay), "generic"
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

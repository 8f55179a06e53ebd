package repository

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
	"github.com/acg-data/bizgenius-sub001/internal/usecase/interfaces"
)

// MemorySessionRepository keeps sessions in process memory. Used by the CLI
// and by local runs without DynamoDB.
type MemorySessionRepository struct {
	mu    sync.RWMutex
	items map[string]entities.GenerationSession
	now   func() time.Time
}

var _ interfaces.ISessionRepository = (*MemorySessionRepository)(nil)

func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{items: map[string]entities.GenerationSession{}, now: time.Now}
}

func (r *MemorySessionRepository) Create(_ context.Context, s entities.GenerationSession) (entities.GenerationSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[s.ID]; ok {
		return entities.GenerationSession{}, ErrAlreadyExists
	}
	stored, err := cloneSession(s)
	if err != nil {
		return entities.GenerationSession{}, err
	}
	r.items[s.ID] = stored
	return s, nil
}

func (r *MemorySessionRepository) GetByID(_ context.Context, id string) (entities.GenerationSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.items[id]
	if !ok {
		return entities.GenerationSession{}, nil
	}
	return cloneSession(s)
}

func (r *MemorySessionRepository) ListByUserID(_ context.Context, userID string) ([]entities.GenerationSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.GenerationSession{}
	for _, s := range r.items {
		if s.UserID != userID {
			continue
		}
		c, err := cloneSession(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *MemorySessionRepository) Update(_ context.Context, id string, patch entities.SessionUpdate) (entities.GenerationSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	if !ok {
		return entities.GenerationSession{}, nil
	}
	if patch.ExpectedStatus != nil && s.Status != *patch.ExpectedStatus {
		return entities.GenerationSession{}, interfaces.ErrSessionStatusConflict
	}
	if !patch.IsEmpty() {
		next, err := cloneSession(patch.Apply(s, r.now().UTC()))
		if err != nil {
			return entities.GenerationSession{}, err
		}
		r.items[id] = next
		s = next
	}
	return cloneSession(s)
}

// cloneSession deep-copies the JSON-shaped maps so callers cannot mutate
// stored state.
func cloneSession(s entities.GenerationSession) (entities.GenerationSession, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return entities.GenerationSession{}, err
	}
	var out entities.GenerationSession
	if err := json.Unmarshal(b, &out); err != nil {
		return entities.GenerationSession{}, err
	}
	return out, nil
}

// MemoryCostRecordRepository is an in-process ledger.
type MemoryCostRecordRepository struct {
	mu      sync.RWMutex
	records []entities.CostRecord
}

var _ interfaces.ICostRecordRepository = (*MemoryCostRecordRepository)(nil)

func NewMemoryCostRecordRepository() *MemoryCostRecordRepository {
	return &MemoryCostRecordRepository{}
}

func (r *MemoryCostRecordRepository) Record(_ context.Context, rec entities.CostRecord) (entities.CostRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.records {
		if existing.ID == rec.ID {
			return entities.CostRecord{}, ErrAlreadyExists
		}
	}
	r.records = append(r.records, rec)
	return rec, nil
}

func (r *MemoryCostRecordRepository) ListBySessionID(_ context.Context, sessionID string) ([]entities.CostRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entities.CostRecord
	for _, rec := range r.records {
		if rec.SessionID == sessionID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *MemoryCostRecordRepository) ListBetween(_ context.Context, from, to time.Time) ([]entities.CostRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entities.CostRecord
	for _, rec := range r.records {
		if !rec.CreatedAt.Before(from) && rec.CreatedAt.Before(to) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// MemorySubscriptionRepository backs subscriptions when STORE_BACKEND=memory.
type MemorySubscriptionRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Subscription
	now   func() time.Time
}

var _ interfaces.ISubscriptionRepository = (*MemorySubscriptionRepository)(nil)

func NewMemorySubscriptionRepository() *MemorySubscriptionRepository {
	return &MemorySubscriptionRepository{items: map[string]entities.Subscription{}, now: time.Now}
}

func (r *MemorySubscriptionRepository) Create(_ context.Context, s entities.Subscription) (entities.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[s.ID]; ok {
		return entities.Subscription{}, ErrAlreadyExists
	}
	r.items[s.ID] = s
	return s, nil
}

func (r *MemorySubscriptionRepository) GetByPaymentID(_ context.Context, paymentID string) (entities.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.items {
		if s.PaymentID == paymentID {
			return s, nil
		}
	}
	return entities.Subscription{}, nil
}

func (r *MemorySubscriptionRepository) ListByUserID(_ context.Context, userID string) ([]entities.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.Subscription{}
	for _, s := range r.items {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *MemorySubscriptionRepository) UpdateStatus(_ context.Context, id string, status entities.SubscriptionStatus, mpPayload []byte) (entities.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	if !ok {
		return entities.Subscription{}, nil
	}
	s.Status = status
	s.UpdatedAt = r.now().UTC()
	if len(mpPayload) > 0 {
		s.MPPayloadRaw = append([]byte(nil), mpPayload...)
	}
	r.items[id] = s
	return s, nil
}

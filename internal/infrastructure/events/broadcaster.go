package events

import (
	"context"
	"sync"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
	"github.com/acg-data/bizgenius-sub001/internal/usecase/interfaces"
)

const subscriberBuffer = 32

// Broadcaster delivers events to in-process subscribers of one session, for
// the progress stream. Slow subscribers lose events rather than block a run;
// a subscriber that misses completed or failed is closed so its reader stops
// waiting.
type Broadcaster struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[string]map[uint64]*subscription
}

type subscription struct {
	ch     chan entities.SessionEvent
	cancel func()
}

var (
	_ interfaces.ISessionEventPublisher  = (*Broadcaster)(nil)
	_ interfaces.ISessionEventSubscriber = (*Broadcaster)(nil)
)

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: map[string]map[uint64]*subscription{}}
}

// Subscribe returns a channel of the session's events and a cancel func that
// closes it.
func (b *Broadcaster) Subscribe(sessionID string) (<-chan entities.SessionEvent, func()) {
	sub := &subscription{ch: make(chan entities.SessionEvent, subscriberBuffer)}

	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++

	var once sync.Once
	sub.cancel = func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs[sessionID], id)
			if len(b.subs[sessionID]) == 0 {
				delete(b.subs, sessionID)
			}
			close(sub.ch)
		})
	}

	if b.subs[sessionID] == nil {
		b.subs[sessionID] = map[uint64]*subscription{}
	}
	b.subs[sessionID][id] = sub
	return sub.ch, sub.cancel
}

func (b *Broadcaster) Publish(_ context.Context, ev entities.SessionEvent) error {
	terminal := ev.Type == entities.SessionEventCompleted || ev.Type == entities.SessionEventFailed

	var cutOff []func()
	b.mu.RLock()
	for _, sub := range b.subs[ev.SessionID] {
		select {
		case sub.ch <- ev:
		default:
			if terminal {
				cutOff = append(cutOff, sub.cancel)
			}
		}
	}
	b.mu.RUnlock()

	for _, cancel := range cutOff {
		cancel()
	}
	return nil
}

// Subscribers is the number of open subscriptions for a session.
func (b *Broadcaster) Subscribers(sessionID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[sessionID])
}

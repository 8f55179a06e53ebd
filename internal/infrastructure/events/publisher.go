package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
	"github.com/acg-data/bizgenius-sub001/internal/infrastructure/metrics"
	"github.com/acg-data/bizgenius-sub001/internal/usecase/interfaces"
)

type sink struct {
	name string
	pub  interfaces.ISessionEventPublisher
}

// MultiPublisher fans an event out to every registered sink. A failing sink
// does not stop delivery to the others.
type MultiPublisher struct {
	sinks []sink
}

var _ interfaces.ISessionEventPublisher = (*MultiPublisher)(nil)

func NewMultiPublisher() *MultiPublisher {
	return &MultiPublisher{}
}

// Add registers a sink; name labels its error metric.
func (m *MultiPublisher) Add(name string, p interfaces.ISessionEventPublisher) *MultiPublisher {
	if p != nil {
		m.sinks = append(m.sinks, sink{name: name, pub: p})
	}
	return m
}

func (m *MultiPublisher) Len() int {
	return len(m.sinks)
}

func (m *MultiPublisher) Publish(ctx context.Context, ev entities.SessionEvent) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.pub.Publish(ctx, ev); err != nil {
			metrics.EventPublishErrors.WithLabelValues(s.name).Inc()
			errs = append(errs, fmt.Errorf("%s: %w", s.name, err))
		}
	}
	return errors.Join(errs...)
}

package usecase

import (
	"context"
	"log"
	"sync"

	"github.com/acg-data/bizgenius-sub001/internal/usecase/interfaces"
)

const defaultMaxConcurrentGenerations = 4

// AsyncDispatcher runs generations on goroutines, at most maxConcurrent at a
// time. Runs use the dispatcher's base context, not the HTTP request's.
type AsyncDispatcher struct {
	ctx       context.Context
	generator IReportGenerator
	sem       chan struct{}
	wg        sync.WaitGroup
}

var _ interfaces.IGenerationDispatcher = (*AsyncDispatcher)(nil)

func NewAsyncDispatcher(ctx context.Context, generator IReportGenerator, maxConcurrent int) *AsyncDispatcher {
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrentGenerations
	}
	return &AsyncDispatcher{
		ctx:       ctx,
		generator: generator,
		sem:       make(chan struct{}, maxConcurrent),
	}
}

func (d *AsyncDispatcher) Dispatch(sessionID string) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		select {
		case d.sem <- struct{}{}:
			defer func() { <-d.sem }()
		case <-d.ctx.Done():
			log.Printf("[generation][dispatcher] shutting down; run not started session_id=%s", sessionID)
			return
		}
		if d.ctx.Err() != nil {
			log.Printf("[generation][dispatcher] shutting down; run not started session_id=%s", sessionID)
			return
		}

		if err := d.generator.Generate(d.ctx, sessionID); err != nil {
			log.Printf("[generation][dispatcher] run ended with error session_id=%s err=%v", sessionID, err)
		}
	}()
}

// Wait blocks until every dispatched run has returned.
func (d *AsyncDispatcher) Wait() {
	d.wg.Wait()
}

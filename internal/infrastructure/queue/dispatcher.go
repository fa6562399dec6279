package queue

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/campushq/student-admin-api/internal/core/domain"
	"github.com/campushq/student-admin-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes audit events to a fixed set of workers using consistent
// hashing on the user id, so events for the same account are persisted in the
// order their transitions were applied.
type Dispatcher struct {
	workers []chan domain.AuditEvent
	repo    ports.AuditRepository
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuditEvent, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. ctx scopes the store writes only;
// workers keep draining their channels until Stop closes them, so events
// enqueued while the HTTP server winds down are still persisted.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Stop closes the worker channels and blocks until every buffered event has
// been written. Callers must not Record after Stop.
func (d *Dispatcher) Stop() {
	for _, ch := range d.workers {
		close(ch)
	}
	d.wg.Wait()
}

// Record enqueues an audit event without blocking the caller beyond the
// channel buffer. Implements service.AuditSink.
func (d *Dispatcher) Record(event domain.AuditEvent) {
	d.workers[d.shardIndex(event.UserID)] <- event
}

// shardIndex maps a user id deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEvent) {
	defer d.wg.Done()
	for event := range ch {
		if err := d.repo.Insert(ctx, &event); err != nil {
			d.log.Error().Err(err).
				Str("user_id", event.UserID).
				Str("action", event.Action).
				Int("worker_id", id).
				Msg("audit event write failed")
		}
	}
}

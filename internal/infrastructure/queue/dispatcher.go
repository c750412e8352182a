package queue

import (
	"context"
	"errors"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/coverwise/risk-profile-api/internal/core/domain"
	"github.com/coverwise/risk-profile-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Dispatcher routes simulation runs to a fixed set of workers using
// consistent hashing on the owner id, so runs for the same owner execute in
// order and never concurrently.
type Dispatcher struct {
	workers []chan ports.RunRequest
	service ports.SimulationService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.SimulationService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.RunRequest, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.RunRequest, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a run request to the worker responsible for its owner.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(req ports.RunRequest) {
	d.workers[d.shardIndex(req.OwnerID)] <- req
}

// shardIndex maps an owner id deterministically to a worker index.
func (d *Dispatcher) shardIndex(ownerID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(ownerID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.RunRequest) {
	for {
		select {
		case <-ctx.Done():
			return
		case req, ok := <-ch:
			if !ok {
				return
			}
			if _, err := d.service.Run(ctx, req); err != nil {
				if errors.Is(err, domain.ErrSimulationRunning) {
					continue // duplicate enqueue, already logged by the service
				}
				d.log.Error().Err(err).
					Str("owner_id", req.OwnerID).
					Int("worker_id", id).
					Msg("simulation run failed")
			}
		}
	}
}

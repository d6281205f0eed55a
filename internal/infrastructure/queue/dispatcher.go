package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/sportshop/shop-system/internal/core/domain"
	"github.com/sportshop/shop-system/internal/core/ports"
)

const (
	defaultWorkers = 2
	channelBuffer  = 64
)

// Dispatcher routes login events to a fixed set of workers using consistent
// hashing on the username, keeping per-user event ordering while the sink
// serializes the actual document writes.
type Dispatcher struct {
	workers []chan domain.LoginEvent
	sink    ports.LoginSink
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink ports.LoginSink, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.LoginEvent, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.LoginEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues an event to the worker responsible for its user. The call
// is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Record(event domain.LoginEvent) {
	d.workers[d.shardIndex(event.User)] <- event
}

// shardIndex maps a username deterministically to a worker index.
func (d *Dispatcher) shardIndex(user string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(user))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.LoginEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.sink.Append(event); err != nil {
				d.log.Error().Err(err).
					Str("user", event.User).
					Int("worker_id", id).
					Msg("login event write failed")
			}
		}
	}
}

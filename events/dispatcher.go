package events

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const publishTimeout = 5 * time.Second

// Dispatcher fans events out to sinks from a single background goroutine.
type Dispatcher struct {
	eventCh chan Event
	sinks   []Sink
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
	once    sync.Once
}

func NewDispatcher(bufferSize int, sinks ...Sink) *Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		eventCh: make(chan Event, bufferSize),
		sinks:   sinks,
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for {
			select {
			case <-d.ctx.Done():
				slog.Info("draining events before shutdown", "remaining_events", len(d.eventCh))
				for len(d.eventCh) > 0 {
					d.deliver(<-d.eventCh)
				}
				return
			case e := <-d.eventCh:
				d.deliver(e)
			}
		}
	}()
}

// Emit queues e, dropping it when the buffer is full.
func (d *Dispatcher) Emit(e Event) {
	select {
	case d.eventCh <- e:
	default:
		slog.Warn("event channel full, dropping event", "event_type", e.Type)
	}
}

// Shutdown stops the worker after the queued events have been delivered.
func (d *Dispatcher) Shutdown() {
	d.once.Do(func() {
		d.cancel()
		d.wg.Wait()
	})
}

func (d *Dispatcher) deliver(e Event) {
	for _, sink := range d.sinks {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		if err := sink.Publish(ctx, e); err != nil {
			slog.Error("failed to publish event", "error", err, "event_type", e.Type)
		}
		cancel()
	}
}

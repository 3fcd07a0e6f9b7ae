package audit

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

type Event struct {
	SalonID  string
	UserID   *string
	Action   string
	Entity   string
	EntityID *string
	Metadata any
}

// Sink persists audit events.
type Sink interface {
	Log(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	sink  Sink
	log   zerolog.Logger
	queue chan Event
	done  chan struct{}
	once  sync.Once
}

func NewDispatcher(sink Sink, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log.With().Str("component", "audit").Logger(),
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.sink.Log(context.Background(), ev); err != nil {
			d.log.Error().Err(err).
				Str("action", ev.Action).
				Str("salon_id", ev.SalonID).
				Msg("audit write failed")
		}
	}
}

// Dispatch never blocks the request; a full queue drops the event.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close drains the queue and waits for the worker.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.queue)
	})
	<-d.done
}

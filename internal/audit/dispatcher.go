package audit

import (
	"log/slog"
	"sync"
)

const (
	ActionClientCreated = "client_created"
	ActionClientUpdated = "client_updated"
	ActionClientDeleted = "client_deleted"
	ActionPhoneAdded    = "phone_added"
	ActionPhoneDeleted  = "phone_deleted"

	EntityClient = "client"
	EntityPhone  = "phone"
)

type Event struct {
	Action   string
	Entity   string
	EntityID uint
	ClientID uint
	Metadata any
}

type Sink interface {
	Log(ev Event) error
}

type Dispatcher struct {
	sink  Sink
	queue chan Event

	// mu guards closed; senders hold it shared so Close never closes the
	// queue under an in-flight send.
	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.sink.Log(ev); err != nil {
			slog.Warn("audit error", "error", err)
		}
	}
}

// Dispatch never blocks the caller: a full queue drops the event, and so
// does a closed Dispatcher. A nil Dispatcher discards everything.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		slog.Warn("audit dispatcher closed, dropping event", "action", ev.Action)
		return
	}
	select {
	case d.queue <- ev:
	default:
		slog.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}

// Close drains pending events and stops the worker. It is safe to call
// more than once and concurrently with Dispatch.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}

	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}

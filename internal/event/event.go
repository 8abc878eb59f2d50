// Package event is the in-process bus connecting the game runtime to
// the score, leaderboard and transport layers. Handlers run
// asynchronously; the game loop never blocks on a subscriber.
package event

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

const (
	maxInflight    = 1024
	handlerTimeout = 15 * time.Second
)

// Event is anything with a name. Names live in the domain package so
// publishers and subscribers agree without importing each other.
type Event interface {
	Name() string
}

// Handler processes one event. Errors are logged, not propagated: a
// failing leaderboard update must never stall gameplay.
type Handler func(ctx context.Context, e Event) error

// Bus fans events out to subscribed handlers on their own goroutines.
type Bus struct {
	slots    chan struct{}
	wg       sync.WaitGroup
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// NewBus creates a bus. Call Stop on shutdown to drain in-flight handlers.
func NewBus() *Bus {
	return &Bus{
		slots:    make(chan struct{}, maxInflight),
		handlers: make(map[string][]Handler),
	}
}

// Subscribe registers h for events with the given name.
func (b *Bus) Subscribe(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], h)
}

// Publish dispatches e to every handler subscribed to its name.
func (b *Bus) Publish(ctx context.Context, e Event) {
	b.mu.RLock()
	hs := b.handlers[e.Name()]
	b.mu.RUnlock()

	for _, h := range hs {
		b.dispatch(ctx, h, e)
	}
}

func (b *Bus) dispatch(ctx context.Context, h Handler, e Event) {
	b.wg.Add(1)
	b.slots <- struct{}{}

	go func() {
		// Detach from the publisher's cancellation: a finished HTTP
		// request must not abort score submission mid-flight.
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), handlerTimeout)
		defer func() {
			if r := recover(); r != nil {
				slog.ErrorContext(ctx, "event: handler panic",
					"event", e.Name(),
					"error", fmt.Errorf("%v, stack: %s", r, debug.Stack()),
				)
			}
			cancel()
			<-b.slots
			b.wg.Done()
		}()

		if err := h(ctx, e); err != nil {
			slog.ErrorContext(ctx, "event: handle event failed",
				"event", e.Name(),
				"error", err,
			)
		}
	}()
}

// Stop blocks until every dispatched handler has returned.
func (b *Bus) Stop() {
	b.wg.Wait()
}

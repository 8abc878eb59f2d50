package event_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/victornm/pord/internal/event"
)

type named string

func (n named) Name() string { return string(n) }

func TestBus_PublishSubscribe(t *testing.T) {
	tests := map[string]struct {
		published []event.Event
		subs      map[string][]string // subscriber -> event names
		assert    func(t *testing.T, got map[string][]event.Event)
	}{
		"subscriber only sees its own events": {
			published: []event.Event{named("a"), named("b")},
			subs:      map[string][]string{"s1": {"a"}},
			assert: func(t *testing.T, got map[string][]event.Event) {
				assert.ElementsMatch(t, []event.Event{named("a")}, got["s1"])
			},
		},

		"every subscriber of an event receives it": {
			published: []event.Event{named("a")},
			subs:      map[string][]string{"s1": {"a"}, "s2": {"a"}},
			assert: func(t *testing.T, got map[string][]event.Event) {
				assert.ElementsMatch(t, []event.Event{named("a")}, got["s1"])
				assert.ElementsMatch(t, []event.Event{named("a")}, got["s2"])
			},
		},

		"repeated events are delivered each time": {
			published: []event.Event{named("a"), named("a"), named("a")},
			subs:      map[string][]string{"s1": {"a"}},
			assert: func(t *testing.T, got map[string][]event.Event) {
				assert.Len(t, got["s1"], 3)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			b := event.NewBus()

			var mu sync.Mutex
			got := make(map[string][]event.Event)
			for sub, names := range tt.subs {
				for _, n := range names {
					b.Subscribe(n, func(_ context.Context, e event.Event) error {
						mu.Lock()
						got[sub] = append(got[sub], e)
						mu.Unlock()
						return nil
					})
				}
			}

			for _, e := range tt.published {
				b.Publish(context.Background(), e)
			}
			b.Stop()

			tt.assert(t, got)
		})
	}
}

func TestBus_HandlerErrorDoesNotBlockOthers(t *testing.T) {
	b := event.NewBus()

	var mu sync.Mutex
	var calls []string
	b.Subscribe("a", func(context.Context, event.Event) error {
		mu.Lock()
		calls = append(calls, "failing")
		mu.Unlock()
		return errors.New("boom")
	})
	b.Subscribe("a", func(context.Context, event.Event) error {
		mu.Lock()
		calls = append(calls, "healthy")
		mu.Unlock()
		return nil
	})

	b.Publish(context.Background(), named("a"))
	b.Stop()

	assert.ElementsMatch(t, []string{"failing", "healthy"}, calls)
}

func TestBus_HandlerPanicIsRecovered(t *testing.T) {
	b := event.NewBus()

	b.Subscribe("a", func(context.Context, event.Event) error {
		panic("handler bug")
	})

	b.Publish(context.Background(), named("a"))
	b.Stop() // must not deadlock or crash the test binary
}

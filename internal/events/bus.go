package events

import (
	"github.com/kelindar/event"
)

// Bus wraps kelindar/event dispatcher for event broadcasting
type Bus struct {
	dispatcher *event.Dispatcher
}

// New creates a new event bus
func New() *Bus {
	return &Bus{
		dispatcher: event.NewDispatcher(),
	}
}

// Publish publishes an event to all subscribers.
// A nil bus drops the event, so publishers can treat the bus as optional.
func (b *Bus) Publish(ev Event) {
	if b == nil {
		return
	}

	switch e := ev.(type) {
	case LightStateChangedEvent:
		event.Publish(b.dispatcher, e)
	case LEDCommandAppliedEvent:
		event.Publish(b.dispatcher, e)
	case LEDWriteFailedEvent:
		event.Publish(b.dispatcher, e)
	case StateFileReloadedEvent:
		event.Publish(b.dispatcher, e)
	}
}

// Subscribe subscribes to events with a handler function.
// The handler type selects which events it receives.
// Returns an unsubscribe function.
// Usage: unsub := bus.Subscribe(func(e LEDWriteFailedEvent) { ... })
func (b *Bus) Subscribe(handler any) func() {
	switch h := handler.(type) {
	case func(LightStateChangedEvent):
		return event.Subscribe(b.dispatcher, h)
	case func(LEDCommandAppliedEvent):
		return event.Subscribe(b.dispatcher, h)
	case func(LEDWriteFailedEvent):
		return event.Subscribe(b.dispatcher, h)
	case func(StateFileReloadedEvent):
		return event.Subscribe(b.dispatcher, h)
	default:
		// Unknown handler types never receive anything
		return func() {}
	}
}

package events

import (
	"time"

	"github.com/kelindar/event"

	"github.com/scheerer/lightsd/internal/led"
	"github.com/scheerer/lightsd/lights"
)

// Event type constants for kelindar/event.
const (
	TypeLightRendered uint32 = iota + 1
)

// LightRendered is published after a light state reached the hardware.
type LightRendered struct {
	Requested lights.ChannelType
	Winner    lights.ChannelType
	Handler   led.HandlerKind
	State     lights.LightState
	Timestamp time.Time
}

// Type returns the event type identifier for LightRendered.
func (e LightRendered) Type() uint32 { return TypeLightRendered }

// FromRendered converts a dispatcher render into an event.
func FromRendered(r led.Rendered) LightRendered {
	return LightRendered{
		Requested: r.Requested,
		Winner:    r.Winner,
		Handler:   r.Handler,
		State:     r.State,
		Timestamp: time.Now(),
	}
}

// Bus wraps a kelindar/event dispatcher. Subscribers run on their own
// goroutines so publishing never waits on them.
type Bus struct {
	dispatcher *event.Dispatcher
}

func New() *Bus {
	return &Bus{
		dispatcher: event.NewDispatcher(),
	}
}

func (b *Bus) Publish(e LightRendered) {
	event.Publish(b.dispatcher, e)
}

// Subscribe registers handler and returns an unsubscribe function.
func (b *Bus) Subscribe(handler func(LightRendered)) func() {
	return event.Subscribe(b.dispatcher, handler)
}

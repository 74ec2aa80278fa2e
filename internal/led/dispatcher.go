package led

import (
	"sync"

	"go.uber.org/zap"

	"github.com/scheerer/lightsd/internal/logging"
	"github.com/scheerer/lightsd/internal/util"
	"github.com/scheerer/lightsd/lights"
)

var logger = logging.New("led")

// Rendered describes the outcome of one SetLight call that reached hardware.
type Rendered struct {
	Requested lights.ChannelType
	Winner    lights.ChannelType
	Handler   HandlerKind
	State     lights.LightState
}

type Option func(*Dispatcher)

// WithObserver registers fn to be called after every render, while the
// dispatcher lock is still held.
func WithObserver(fn func(Rendered)) Option {
	return func(d *Dispatcher) {
		d.observers = append(d.observers, fn)
	}
}

// Dispatcher owns the registry and the hardware. One lock covers state
// update, arbitration, and every attribute write of a call.
type Dispatcher struct {
	mu        sync.Mutex
	registry  *Registry
	renderer  *Renderer
	types     []lights.ChannelType
	observers []func(Rendered)
}

var _ lights.LightService = (*Dispatcher)(nil)

func NewDispatcher(registry *Registry, sink Sink, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		renderer: NewRenderer(sink),
		types:    registry.Types(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dispatcher) SetLight(t lights.ChannelType, state lights.LightState) lights.Status {
	d.mu.Lock()
	defer d.mu.Unlock()

	handler, ok := d.registry.update(t, state)
	if !ok {
		logger.With(zap.Stringer("type", t)).Debug("Light type not supported")
		return lights.NotSupported
	}

	rendered := Rendered{
		Requested: t,
		Winner:    t,
		Handler:   handler,
		State:     state,
	}
	if winner, lit := d.registry.arbitrate(handler); lit {
		rendered.Winner = winner.Type
		rendered.State = winner.State
	}

	logger.With(
		zap.Stringer("type", t),
		zap.Stringer("winner", rendered.Winner),
		zap.Stringer("handler", handler),
		zap.String("color", util.FormatColor(rendered.State.Color)),
		zap.Stringer("flashMode", rendered.State.FlashMode)).
		Debug("Rendering light state")

	d.renderer.Render(handler, rendered.State)

	for _, fn := range d.observers {
		fn(rendered)
	}
	return lights.Success
}

// SupportedTypes returns the configured types in priority order. The set is
// fixed at construction so no lock is taken.
func (d *Dispatcher) SupportedTypes() []lights.ChannelType {
	types := make([]lights.ChannelType, len(d.types))
	copy(types, d.types)
	return types
}

// State returns the last state requested for t.
func (d *Dispatcher) State(t lights.ChannelType) (lights.LightState, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.registry.state(t)
}

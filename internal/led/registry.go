package led

import (
	"fmt"

	"github.com/scheerer/lightsd/lights"
)

// HandlerKind names the physical resource a channel renders to. Channels
// with the same kind contend for the same hardware.
type HandlerKind int

const (
	HandlerBacklight HandlerKind = iota
	HandlerButtons
	HandlerNotification
)

func (k HandlerKind) String() string {
	switch k {
	case HandlerBacklight:
		return "backlight"
	case HandlerButtons:
		return "buttons"
	case HandlerNotification:
		return "notification"
	default:
		return fmt.Sprintf("handler(%d)", int(k))
	}
}

type ChannelBinding struct {
	Type    lights.ChannelType
	Handler HandlerKind
	State   lights.LightState
}

// DefaultPriorityOrder is the board's channel table, most important first.
func DefaultPriorityOrder() []ChannelBinding {
	return []ChannelBinding{
		{Type: lights.Attention, Handler: HandlerNotification},
		{Type: lights.Notifications, Handler: HandlerNotification},
		{Type: lights.Battery, Handler: HandlerNotification},
		{Type: lights.Backlight, Handler: HandlerBacklight},
		{Type: lights.Buttons, Handler: HandlerButtons},
	}
}

// Registry holds the bindings in priority order. It is not safe for
// concurrent use; the Dispatcher serializes access.
type Registry struct {
	bindings []ChannelBinding
}

func NewRegistry(order []ChannelBinding) (*Registry, error) {
	seen := make(map[lights.ChannelType]bool, len(order))
	bindings := make([]ChannelBinding, 0, len(order))
	for _, b := range order {
		if seen[b.Type] {
			return nil, fmt.Errorf("duplicate binding for channel %v", b.Type)
		}
		seen[b.Type] = true
		bindings = append(bindings, b)
	}
	return &Registry{bindings: bindings}, nil
}

// Types returns the configured channel types in priority order.
func (r *Registry) Types() []lights.ChannelType {
	types := make([]lights.ChannelType, 0, len(r.bindings))
	for _, b := range r.bindings {
		types = append(types, b.Type)
	}
	return types
}

// update caches state for t and returns the handler bound to it.
func (r *Registry) update(t lights.ChannelType, state lights.LightState) (HandlerKind, bool) {
	for i := range r.bindings {
		if r.bindings[i].Type == t {
			r.bindings[i].State = state
			return r.bindings[i].Handler, true
		}
	}
	return 0, false
}

// arbitrate returns the highest priority lit binding rendered by kind.
func (r *Registry) arbitrate(kind HandlerKind) (ChannelBinding, bool) {
	for _, b := range r.bindings {
		if b.Handler == kind && IsLit(b.State) {
			return b, true
		}
	}
	return ChannelBinding{}, false
}

func (r *Registry) state(t lights.ChannelType) (lights.LightState, bool) {
	for _, b := range r.bindings {
		if b.Type == t {
			return b.State, true
		}
	}
	return lights.LightState{}, false
}

package lifx

import (
	"errors"
	"testing"
	"time"

	"github.com/pdf/golifx/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scheerer/lightsd/internal/events"
	"github.com/scheerer/lightsd/internal/led"
	"github.com/scheerer/lightsd/lights"
)

type fakeGroup struct {
	colors    []common.Color
	durations []time.Duration
	err       error
}

func (f *fakeGroup) SetColor(color common.Color, duration time.Duration) error {
	f.colors = append(f.colors, color)
	f.durations = append(f.durations, duration)
	return f.err
}

func newTestMirror(group colorSetter) *Mirror {
	return &Mirror{
		config: Config{MinBrightness: 0.1, MaxBrightness: 0.8, Transition: 50 * time.Millisecond},
		group:  group,
	}
}

func TestMirror_HandleRendered(t *testing.T) {
	group := &fakeGroup{}
	m := newTestMirror(group)

	m.HandleRendered(events.LightRendered{
		Handler: led.HandlerNotification,
		State:   lights.LightState{Color: 0xFFFF0000},
	})

	require.Len(t, group.colors, 1)
	assert.Equal(t, uint16(0), group.colors[0].Hue)
	assert.Equal(t, uint16(0xFFFF), group.colors[0].Saturation)
	assert.Equal(t, uint16(0.8*0xFFFF), group.colors[0].Brightness)
	assert.Equal(t, 50*time.Millisecond, group.durations[0])
}

func TestMirror_IgnoresOtherHandlers(t *testing.T) {
	group := &fakeGroup{}
	m := newTestMirror(group)

	m.HandleRendered(events.LightRendered{Handler: led.HandlerBacklight, State: lights.LightState{Color: 0xFFFFFFFF}})
	m.HandleRendered(events.LightRendered{Handler: led.HandlerButtons, State: lights.LightState{Color: 0xFFFFFFFF}})
	assert.Empty(t, group.colors)
}

func TestMirror_OffTurnsGroupOff(t *testing.T) {
	group := &fakeGroup{}
	m := newTestMirror(group)

	m.HandleRendered(events.LightRendered{Handler: led.HandlerNotification, State: lights.LightState{Color: 0xFF000000}})
	require.Len(t, group.colors, 1)
	assert.Equal(t, uint16(0), group.colors[0].Brightness)
}

func TestMirror_NoGroupOrError(t *testing.T) {
	m := newTestMirror(nil)
	m.HandleRendered(events.LightRendered{Handler: led.HandlerNotification, State: lights.LightState{Color: 0xFFFFFFFF}})

	group := &fakeGroup{err: errors.New("timeout")}
	m = newTestMirror(group)
	m.HandleRendered(events.LightRendered{Handler: led.HandlerNotification, State: lights.LightState{Color: 0xFFFFFFFF}})
	assert.Len(t, group.colors, 1)
}

func TestNewLifxColor_AppliesAlpha(t *testing.T) {
	opaque := newLifxColor(0xFFFFFFFF)
	half := newLifxColor(0x80FFFFFF)
	assert.Equal(t, uint16(0xFFFF), opaque.Brightness)
	assert.Less(t, half.Brightness, opaque.Brightness)
	assert.Equal(t, uint16(3500), half.Kelvin)
}

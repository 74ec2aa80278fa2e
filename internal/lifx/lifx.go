package lifx

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/pdf/golifx"
	"github.com/pdf/golifx/common"
	"github.com/pdf/golifx/protocol"
	"go.uber.org/zap"

	"github.com/scheerer/lightsd/internal/events"
	"github.com/scheerer/lightsd/internal/led"
	"github.com/scheerer/lightsd/internal/logging"
	"github.com/scheerer/lightsd/internal/util"
)

var logger = logging.New("lifx")

type colorSetter interface {
	SetColor(color common.Color, duration time.Duration) error
}

// Mirror copies whatever the notification indicator shows onto a LIFX group.
type Mirror struct {
	config Config
	client *golifx.Client

	groupMu sync.RWMutex
	group   colorSetter
}

type Config struct {
	GroupName     string
	MaxBrightness float64
	MinBrightness float64
	Transition    time.Duration
}

func NewMirror(ctx context.Context, config Config) (*Mirror, error) {
	client, err := golifx.NewClient(&protocol.V2{})
	if err != nil {
		return nil, err
	}

	m := &Mirror{
		config: config,
		client: client,
	}
	go m.Start(ctx)
	return m, nil
}

func (m *Mirror) Start(ctx context.Context) {
	discoveryInterval := 15 * time.Second
	ticker := time.NewTicker(discoveryInterval)
	defer ticker.Stop()

	if err := m.client.SetDiscoveryInterval(discoveryInterval); err != nil {
		logger.With(zap.Error(err)).Warn("Failed to set LIFX discovery interval")
	}

	timeout := 5 * time.Second
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	m.discover(ctxWithTimeout)
	cancel()

	for {
		select {
		case <-ticker.C:
			ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
			m.discover(ctxWithTimeout)
			cancel()
		case <-ctx.Done():
			if err := m.client.Close(); err != nil {
				logger.With(zap.Error(err)).Debug("Failed to close LIFX client")
			}
			return
		}
	}
}

func (m *Mirror) discover(ctx context.Context) {
	logger.With(zap.String("group", m.config.GroupName)).Debug("LIFX discovery starting...")

	type result struct {
		group common.Group
		err   error
	}
	completed := make(chan result, 1)

	go func() {
		g, err := m.client.GetGroupByLabel(m.config.GroupName)
		completed <- result{group: g, err: err}
	}()

	select {
	case <-ctx.Done():
		logger.With(zap.Error(ctx.Err())).Warn("LIFX discovery timed out.")
	case r := <-completed:
		if r.err != nil || r.group == nil {
			logger.With(zap.Error(r.err)).Warn("Couldn't discover group.")
			return
		}
		logger.With(zap.String("group", r.group.GetLabel())).Debug("LIFX group found")
		m.groupMu.Lock()
		m.group = r.group
		m.groupMu.Unlock()
	}
}

// HandleRendered mirrors notification renders; other handlers are ignored.
func (m *Mirror) HandleRendered(e events.LightRendered) {
	if e.Handler != led.HandlerNotification {
		return
	}

	m.groupMu.RLock()
	group := m.group
	m.groupMu.RUnlock()
	if group == nil {
		logger.Debug("No LIFX group yet, dropping notification color")
		return
	}

	lifxColor := adjustColor(newLifxColor(e.State.Color), m.config)

	logger.With(zap.String("color", util.FormatColor(e.State.Color)),
		zap.Any("lifxColor", lifxColor)).
		Debug("Setting LIFX group color")

	if err := group.SetColor(lifxColor, m.config.Transition); err != nil {
		logger.With(zap.Error(err)).Warn("Failed to set color for LIFX group")
	}
}

// newLifxColor converts ARGB to HSB, applying alpha the same way the
// indicator does.
func newLifxColor(argb uint32) common.Color {
	alpha := (argb >> 24) & 0xFF
	red := (argb >> 16) & 0xFF
	green := (argb >> 8) & 0xFF
	blue := argb & 0xFF
	if alpha != 0xFF {
		red = red * alpha / 0xFF
		green = green * alpha / 0xFF
		blue = blue * alpha / 0xFF
	}

	hue, saturation, brightness := util.RgbToHsb(uint8(red), uint8(green), uint8(blue))

	return common.Color{
		Hue:        hue,
		Saturation: saturation,
		Brightness: brightness,
		Kelvin:     3500,
	}
}

func adjustColor(color common.Color, config Config) common.Color {
	blackThreshold := 0.015 * 0xFFFF
	if color.Brightness <= uint16(blackThreshold) && color.Saturation <= uint16(blackThreshold) {
		// blackish color - turn off the light
		return common.Color{
			Hue:        0,
			Saturation: 0,
			Brightness: 0,
			Kelvin:     3500,
		}
	}

	color.Brightness = uint16(math.Min(config.MaxBrightness*0xFFFF, math.Max(config.MinBrightness*0xFFFF, float64(color.Brightness))))

	return color
}

package led

import (
	"go.uber.org/zap"

	"github.com/scheerer/lightsd/lights"
)

// Renderer turns a LightState into attribute writes for one handler kind.
type Renderer struct {
	sink Sink
}

func NewRenderer(sink Sink) *Renderer {
	return &Renderer{sink: sink}
}

func (r *Renderer) Render(kind HandlerKind, state lights.LightState) {
	switch kind {
	case HandlerBacklight:
		r.backlight(state)
	case HandlerButtons:
		r.buttons(state)
	case HandlerNotification:
		r.notification(state)
	default:
		logger.With(zap.Stringer("handler", kind)).Warn("No renderer for handler")
	}
}

func (r *Renderer) maxBrightness(channel string) int {
	value := r.sink.ReadInt(channel, AttrMaxBrightness)
	logger.With(zap.String("channel", channel), zap.Int("maxBrightness", value)).Debug("Got max brightness")
	return value
}

func (r *Renderer) backlight(state lights.LightState) {
	brightness := ScaledBrightness(state, r.maxBrightness(ChannelLCD))
	writeInt(r.sink, ChannelLCD, AttrBrightness, int(brightness))
}

func (r *Renderer) buttons(state lights.LightState) {
	brightness := ScaledBrightness(state, r.maxBrightness(ChannelButton))
	writeInt(r.sink, ChannelButton, AttrBrightness, int(brightness))
	writeInt(r.sink, ChannelButton1, AttrBrightness, int(brightness))
}

func (r *Renderer) notification(state lights.LightState) {
	white := ScaledBrightness(state, r.maxBrightness(ChannelWhite))
	red := ScaledBrightness(state, r.maxBrightness(ChannelRed))

	writeInt(r.sink, ChannelWhite, AttrBlink, 0)
	writeInt(r.sink, ChannelRed, AttrBlink, 0)

	if state.FlashMode != lights.FlashTimed {
		writeInt(r.sink, ChannelWhite, AttrBrightness, int(white))
		writeInt(r.sink, ChannelRed, AttrBrightness, int(red))
		return
	}

	timing := ComputeBlinkTiming(state.FlashOnMs, state.FlashOffMs)
	r.programRamp(ChannelWhite, white, timing)
	r.programRamp(ChannelRed, red, timing)

	writeInt(r.sink, ChannelWhite, AttrBlink, 1)
	writeInt(r.sink, ChannelRed, AttrBlink, 1)
}

func (r *Renderer) programRamp(channel string, brightness uint32, timing BlinkTiming) {
	writeInt(r.sink, channel, AttrStartIdx, 0)
	r.sink.Write(channel, AttrDutyPcts, FormatRamp(ScaledRamp(brightness)))
	writeInt(r.sink, channel, AttrPauseLo, timing.PauseLow)
	writeInt(r.sink, channel, AttrPauseHi, timing.PauseHigh)
	writeInt(r.sink, channel, AttrRampStepMs, timing.StepDuration)
}

package api

import (
	"fmt"

	"github.com/scheerer/lightsd/internal/util"
	"github.com/scheerer/lightsd/lights"
)

// LightStateBody is the wire form of a lights.LightState.
type LightStateBody struct {
	Color          string `json:"color" example:"0xFFFF0000" doc:"ARGB color: 0xAARRGGBB, #AARRGGBB, #RRGGBB or decimal"`
	FlashMode      string `json:"flash_mode,omitempty" example:"timed" doc:"none, timed or hardware"`
	FlashOnMs      int32  `json:"flash_on_ms,omitempty" example:"100" doc:"On duration of one blink in milliseconds"`
	FlashOffMs     int32  `json:"flash_off_ms,omitempty" example:"1000" doc:"Off duration of one blink in milliseconds"`
	BrightnessMode string `json:"brightness_mode,omitempty" example:"user" doc:"user, sensor or low_persistence (ignored by the hardware)"`
}

// ToLightState validates the body and converts it.
func (b LightStateBody) ToLightState() (lights.LightState, error) {
	var state lights.LightState

	color, err := util.ParseColor(b.Color)
	if err != nil {
		return state, err
	}
	flashMode, err := lights.ParseFlashMode(b.FlashMode)
	if err != nil {
		return state, err
	}
	brightnessMode, err := lights.ParseBrightnessMode(b.BrightnessMode)
	if err != nil {
		return state, err
	}
	if b.FlashOnMs < 0 || b.FlashOffMs < 0 {
		return state, fmt.Errorf("flash durations must not be negative")
	}

	return lights.LightState{
		Color:          color,
		FlashMode:      flashMode,
		FlashOnMs:      b.FlashOnMs,
		FlashOffMs:     b.FlashOffMs,
		BrightnessMode: brightnessMode,
	}, nil
}

// NewLightStateBody converts a state to its wire form.
func NewLightStateBody(state lights.LightState) LightStateBody {
	return LightStateBody{
		Color:          util.FormatColor(state.Color),
		FlashMode:      state.FlashMode.String(),
		FlashOnMs:      state.FlashOnMs,
		FlashOffMs:     state.FlashOffMs,
		BrightnessMode: state.BrightnessMode.String(),
	}
}

type SetLightRequest struct {
	Type string `path:"type" example:"notifications" doc:"Channel type"`
	Body LightStateBody
}

type SetLightResponse struct {
	Body struct {
		Type   string `json:"type" example:"notifications" doc:"Channel type"`
		Status string `json:"status" example:"success" doc:"Result of the update"`
	}
}

type GetLightRequest struct {
	Type string `path:"type" example:"battery" doc:"Channel type"`
}

type GetLightResponse struct {
	Body struct {
		Type  string         `json:"type" example:"battery" doc:"Channel type"`
		State LightStateBody `json:"state" doc:"Last requested state"`
	}
}

type SupportedTypesResponse struct {
	Body struct {
		Types []string `json:"types" doc:"Configured channel types, highest priority first"`
	}
}

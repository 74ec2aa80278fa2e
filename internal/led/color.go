package led

import "github.com/scheerer/lightsd/lights"

// ExtractLuma reduces an ARGB color to a single 0-255 brightness.
func ExtractLuma(state lights.LightState) uint32 {
	alpha := (state.Color >> 24) & 0xFF
	red := (state.Color >> 16) & 0xFF
	green := (state.Color >> 8) & 0xFF
	blue := state.Color & 0xFF

	// alpha acts as a dimmer unless fully opaque
	if alpha != 0xFF {
		red = red * alpha / 0xFF
		green = green * alpha / 0xFF
		blue = blue * alpha / 0xFF
	}

	return (77*red + 150*green + 29*blue) >> 8
}

// ScaleToMax maps a 0-255 brightness onto 0-maxBrightness.
func ScaleToMax(brightness uint32, maxBrightness int) uint32 {
	if maxBrightness <= 0 {
		return 0
	}
	return brightness * uint32(maxBrightness) / 0xFF
}

func ScaledBrightness(state lights.LightState, maxBrightness int) uint32 {
	return ScaleToMax(ExtractLuma(state), maxBrightness)
}

// IsLit reports whether any RGB bit is set. Alpha alone is not "on".
func IsLit(state lights.LightState) bool {
	return state.Color&0x00FFFFFF != 0
}

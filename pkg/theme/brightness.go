// Package theme provides the appearance-aware colors used by skeleton
// loaders: the light/dark [Brightness], colors that resolve differently per
// brightness, and the shimmer palette.
package theme

import "github.com/go-drift/skeleton/pkg/graphics"

// Brightness describes the display appearance.
type Brightness int

const (
	// BrightnessLight is the light appearance.
	BrightnessLight Brightness = iota
	// BrightnessDark is the dark appearance.
	BrightnessDark
)

// String returns "light" or "dark".
func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// ParseBrightness converts "light" or "dark" to a Brightness.
func ParseBrightness(s string) (Brightness, bool) {
	switch s {
	case "light", "":
		return BrightnessLight, true
	case "dark":
		return BrightnessDark, true
	default:
		return BrightnessLight, false
	}
}

// DynamicColor is a color with separate light and dark values.
type DynamicColor struct {
	Light graphics.Color
	Dark  graphics.Color
}

// Fixed returns a DynamicColor that resolves to c under every brightness.
func Fixed(c graphics.Color) DynamicColor {
	return DynamicColor{Light: c, Dark: c}
}

// Adaptive returns a DynamicColor with distinct light and dark values.
func Adaptive(light, dark graphics.Color) DynamicColor {
	return DynamicColor{Light: light, Dark: dark}
}

// Resolve returns the concrete color for the given brightness.
func (c DynamicColor) Resolve(b Brightness) graphics.Color {
	if b == BrightnessDark {
		return c.Dark
	}
	return c.Light
}

package uix

import (
	"fmt"
	"math"
)

// Color is a linear RGBA color with channels in [0, 1].
type Color struct {
	R float32
	G float32
	B float32
	A float32
}

var (
	Black = Color{A: 1}
	White = Color{R: 1, G: 1, B: 1, A: 1}
)

func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGBA implements image/color.Color. Channels are alpha-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = channel16(c.A)
	r = channel16(c.R) * a / 0xffff
	g = channel16(c.G) * a / 0xffff
	b = channel16(c.B) * a / 0xffff
	return r, g, b, a
}

// Hex renders c as #RRGGBBAA.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", channel8(c.R), channel8(c.G), channel8(c.B), channel8(c.A))
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func clamp(value float32) float64 {
	return math.Min(1, math.Max(0, float64(value)))
}

func channel8(value float32) uint8 {
	return uint8(math.Round(clamp(value) * 0xff))
}

func channel16(value float32) uint32 {
	return uint32(math.Round(clamp(value) * 0xffff))
}

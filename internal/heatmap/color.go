package heatmap

import (
	"fmt"
	"math"

	"github.com/jengzang/borough-records-go/internal/models"
)

// Color is an HSB color with its RGB rendering.
type Color struct {
	Hue        float64 // degrees
	Saturation float64 // 0..1
	Brightness float64 // 0..1
	R, G, B    uint8
	NoData     bool
}

// Hex returns the color as #rrggbb
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette fixes the hue scale and the no-data color.
type Palette struct {
	// UpperHue is the hue of the coolest end; 0 is always the hottest end.
	UpperHue   float64
	Saturation float64
	Brightness float64
	NoData     Color
}

// DefaultPalette runs from green (low) to red (high) with a grey no-data color.
var DefaultPalette = Palette{
	UpperHue:   135,
	Saturation: 1,
	Brightness: 0.8,
	NoData:     Color{R: 171, G: 171, B: 171, NoData: true},
}

// ColorFor maps a value normalized against base using DefaultPalette.
func ColorFor(value models.NullInt, base int) Color {
	return DefaultPalette.ColorFor(value, base)
}

// ColorFor maps a value to a hue on a reversed scale: value == base gives
// hue 0, value 0 gives UpperHue. A missing value or a non-positive base
// gives the no-data color. Higher values never map to a greener hue.
func (p Palette) ColorFor(value models.NullInt, base int) Color {
	if !value.Valid || base <= 0 {
		return p.NoData
	}

	ratio := float64(value.Int) / float64(base)
	ratio = math.Max(0, math.Min(1, ratio))

	hue := p.UpperHue - p.UpperHue*ratio
	r, g, b := hsbToRGB(hue, p.Saturation, p.Brightness)
	return Color{
		Hue:        hue,
		Saturation: p.Saturation,
		Brightness: p.Brightness,
		R:          r,
		G:          g,
		B:          b,
	}
}

// hsbToRGB converts hue (degrees), saturation and brightness (0..1) to RGB.
func hsbToRGB(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return channel(r + m), channel(g + m), channel(b + m)
}

func channel(f float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, f)) * 255))
}

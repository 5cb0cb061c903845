package glyphanim

import (
	"image/color"
	"strconv"
	"strings"
)

// RGBA is an unpremultiplied color with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGB returns an opaque color.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Transparent = RGBA{}
)

// Color converts c to an 8-bit color.NRGBA.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// FromColor converts a standard library color to RGBA, undoing alpha
// premultiplication.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// Lerp interpolates component-wise from c (t=0) to other (t=1) without
// premultiplying.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// IsTransparent reports whether the color has no coverage.
func (c RGBA) IsTransparent() bool {
	return c.A <= 0
}

// Hex returns the color as "#rrggbbaa".
func (c RGBA) Hex() string {
	n := c.Color().(color.NRGBA)
	return "#" + hex2(n.R) + hex2(n.G) + hex2(n.B) + hex2(n.A)
}

// ParseHex parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA", with or without
// a leading '#'.
func ParseHex(s string) (RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 3, 4:
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		h = b.String()
	case 6, 8:
	default:
		return RGBA{}, &ColorError{Value: s}
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGBA{}, &ColorError{Value: s}
	}
	return RGBA{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

func to8(x float64) uint8 {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 255
	}
	return uint8(x*255 + 0.5)
}

func hex2(v uint8) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[v>>4], digits[v&0x0f]})
}

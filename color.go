package draft

import (
	"fmt"
	"image/color"
	"math"
)

// Color represents an entity color, either as an index into the classic
// 255-entry drawing palette or as an explicit true color with 8-bit RGB
// channels. The zero value is the ByBlock sentinel; entities default to
// ColorByLayer so the effective color resolves through the layer.
//
// Color is a small value type: assignment produces an independent copy, so
// cloned entities can never share color state.
type Color struct {
	index     int16
	r, g, b   uint8
	trueColor bool
}

// Color sentinels. They carry no color channels of their own; the effective
// color is resolved by the consumer against the layer or block context.
var (
	ColorByLayer = Color{index: 256}
	ColorByBlock = Color{index: 0}
)

// The classic palette colors, indexes 1 through 9.
var (
	Red       = paletteColor(1)
	Yellow    = paletteColor(2)
	Green     = paletteColor(3)
	Cyan      = paletteColor(4)
	Blue      = paletteColor(5)
	Magenta   = paletteColor(6)
	White     = paletteColor(7)
	Gray      = paletteColor(8)
	LightGray = paletteColor(9)
)

func paletteColor(index int16) Color {
	rgb := aciPalette[index]
	return Color{index: index, r: rgb[0], g: rgb[1], b: rgb[2]}
}

// ColorFromIndex creates a palette color. Valid indexes are 1 through 255;
// use ColorByBlock and ColorByLayer for the reserved values 0 and 256.
func ColorFromIndex(index int) (Color, error) {
	if index < 1 || index > 255 {
		return Color{}, fmt.Errorf("%w: color index %d, must be 1 through 255 (use ColorByBlock or ColorByLayer for the sentinels)", ErrOutOfRange, index)
	}
	return paletteColor(int16(index)), nil
}

// ColorFromRGB creates a true color from 8-bit channels.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{r: r, g: g, b: b, trueColor: true}
}

// FromColor converts a standard color.Color to a true color,
// discarding alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return ColorFromRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Index returns the palette index: 0 for ByBlock, 256 for ByLayer,
// 1 through 255 for palette colors, 0 for true colors.
func (c Color) Index() int {
	if c.trueColor {
		return 0
	}
	return int(c.index)
}

// TrueColor reports whether the color stores explicit RGB channels rather
// than a palette index.
func (c Color) TrueColor() bool {
	return c.trueColor
}

// IsByLayer reports whether the color is the ByLayer sentinel.
func (c Color) IsByLayer() bool {
	return !c.trueColor && c.index == 256
}

// IsByBlock reports whether the color is the ByBlock sentinel.
func (c Color) IsByBlock() bool {
	return !c.trueColor && c.index == 0
}

// RGB returns the 8-bit channels. Sentinel colors have no channels of their
// own and return zeros.
func (c Color) RGB() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// ToColor converts the color to the standard color.Color interface,
// fully opaque.
func (c Color) ToColor() color.Color {
	return color.NRGBA{R: c.r, G: c.g, B: c.b, A: 255}
}

// String returns a readable description, either the sentinel name, the
// palette index, or the hex channels of a true color.
func (c Color) String() string {
	switch {
	case c.trueColor:
		return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
	case c.index == 256:
		return "ByLayer"
	case c.index == 0:
		return "ByBlock"
	default:
		return fmt.Sprintf("index %d", c.index)
	}
}

// ToHSL converts the color channels to hue, saturation and lightness, each
// in [0, 1]. Gradient tint derivation works in this space.
func (c Color) ToHSL() (h, s, l float64) {
	r := float64(c.r) / 255
	g := float64(c.g) / 255
	b := float64(c.b) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l = (max + min) / 2

	if max == min {
		return 0, 0, l
	}

	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h /= 6

	return h, s, l
}

// ColorFromHSL creates a true color from hue, saturation and lightness,
// each in [0, 1]. Hue wraps; saturation and lightness are clamped.
func ColorFromHSL(h, s, l float64) Color {
	h = h - math.Floor(h)
	s = clamp01(s)
	l = clamp01(l)

	if s == 0 {
		v := channel(l)
		return ColorFromRGB(v, v, v)
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r := hueToChannel(p, q, h+1.0/3)
	g := hueToChannel(p, q, h)
	b := hueToChannel(p, q, h-1.0/3)

	return ColorFromRGB(channel(r), channel(g), channel(b))
}

// hueToChannel resolves one channel of the HSL to RGB conversion.
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// channel converts a [0, 1] intensity to an 8-bit channel, rounding.
func channel(x float64) uint8 {
	return uint8(math.Round(clamp01(x) * 255))
}

// clamp01 restricts a value to the [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

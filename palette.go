package draft

import "math"

// aciPalette maps color indexes 1 through 255 to their RGB channels.
// Index 0 is unused (ByBlock sentinel).
//
// The layout is the classic drawing palette: indexes 1 through 9 are the
// named base colors, 10 through 249 run through 24 hue bands of 15 degrees
// holding five brightness levels with a full and a half saturation variant
// each, and 250 through 255 form the gray ramp.
var aciPalette = buildPalette()

func buildPalette() [256][3]uint8 {
	var p [256][3]uint8

	base := [10][3]uint8{
		{},              // 0: ByBlock sentinel, unused
		{255, 0, 0},     // 1: red
		{255, 255, 0},   // 2: yellow
		{0, 255, 0},     // 3: green
		{0, 255, 255},   // 4: cyan
		{0, 0, 255},     // 5: blue
		{255, 0, 255},   // 6: magenta
		{255, 255, 255}, // 7: white
		{128, 128, 128}, // 8: gray
		{192, 192, 192}, // 9: light gray
	}
	copy(p[:10], base[:])

	// Brightness levels shared by every hue band.
	values := [5]float64{1.0, 0.8, 0.6, 0.5, 0.3}

	for band := 0; band < 24; band++ {
		hue := float64(band) * 15
		for level := 0; level < 5; level++ {
			idx := 10 + band*10 + level*2
			p[idx] = hsvChannels(hue, 1.0, values[level])
			p[idx+1] = hsvChannels(hue, 0.5, values[level])
		}
	}

	grays := [6]uint8{51, 91, 132, 173, 214, 255}
	for i, v := range grays {
		p[250+i] = [3]uint8{v, v, v}
	}

	return p
}

// hsvChannels converts hue (degrees), saturation and value to RGB channels.
func hsvChannels(h, s, v float64) [3]uint8 {
	h = math.Mod(h, 360) / 60

	c := v * s
	x := c * (1 - math.Abs(math.Mod(h, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 1:
		r, g, b = c, x, 0
	case h < 2:
		r, g, b = x, c, 0
	case h < 3:
		r, g, b = 0, c, x
	case h < 4:
		r, g, b = 0, x, c
	case h < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return [3]uint8{channel(r + m), channel(g + m), channel(b + m)}
}

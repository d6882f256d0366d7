package icons

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor parses a color specification as used in icon ids.
//
// Accepted forms are #RGB, #RRGGBB, #AARRGGBB, #RRRGGGBBB, #RRRRGGGGBBBB,
// SVG color keyword names and "transparent".
func ParseColor(spec string) (color.NRGBA, bool) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return color.NRGBA{}, false
	}

	if strings.HasPrefix(spec, "#") {
		return parseHexColor(spec[1:])
	}

	name := strings.ToLower(spec)
	if name == "transparent" {
		return color.NRGBA{}, true
	}
	if c, ok := colornames.Map[name]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, true
	}
	return color.NRGBA{}, false
}

func parseHexColor(hex string) (color.NRGBA, bool) {
	switch len(hex) {
	case 3:
		r, okR := hexComponent(hex[0:1], 4)
		g, okG := hexComponent(hex[1:2], 4)
		b, okB := hexComponent(hex[2:3], 4)
		return color.NRGBA{R: r, G: g, B: b, A: 0xff}, okR && okG && okB
	case 6:
		r, okR := hexComponent(hex[0:2], 8)
		g, okG := hexComponent(hex[2:4], 8)
		b, okB := hexComponent(hex[4:6], 8)
		return color.NRGBA{R: r, G: g, B: b, A: 0xff}, okR && okG && okB
	case 8:
		a, okA := hexComponent(hex[0:2], 8)
		r, okR := hexComponent(hex[2:4], 8)
		g, okG := hexComponent(hex[4:6], 8)
		b, okB := hexComponent(hex[6:8], 8)
		return color.NRGBA{R: r, G: g, B: b, A: a}, okA && okR && okG && okB
	case 9:
		r, okR := hexComponent(hex[0:3], 12)
		g, okG := hexComponent(hex[3:6], 12)
		b, okB := hexComponent(hex[6:9], 12)
		return color.NRGBA{R: r, G: g, B: b, A: 0xff}, okR && okG && okB
	case 12:
		r, okR := hexComponent(hex[0:4], 16)
		g, okG := hexComponent(hex[4:8], 16)
		b, okB := hexComponent(hex[8:12], 16)
		return color.NRGBA{R: r, G: g, B: b, A: 0xff}, okR && okG && okB
	}
	return color.NRGBA{}, false
}

// hexComponent parses a component of the given bit depth and reduces it to 8 bits.
func hexComponent(s string, bits int) (uint8, bool) {
	v, err := strconv.ParseUint(s, 16, bits)
	if err != nil {
		return 0, false
	}
	switch bits {
	case 4:
		return uint8(v * 0x11), true
	case 12:
		return uint8(v >> 4), true
	case 16:
		return uint8(v >> 8), true
	}
	return uint8(v), true
}

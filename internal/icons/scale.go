package icons

import (
	"math"
	"strconv"
	"strings"
)

// ScaleSet lists the scale factors an icon set provides directories for, in lookup order.
type ScaleSet []float64

// DefaultScales are the scale factors of the bundled hbnsc icon set.
var DefaultScales = ScaleSet{1.0, 1.25, 1.5, 1.75, 2.0}

// maxScaleDiff is the distance a candidate has to beat to be selected at all.
const maxScaleDiff = 999.0

// NearestScale returns the member of scales closest to ratio.
// A set with a single member always yields that member, an empty set yields
// ratio itself. On equal distance the earlier member wins.
func NearestScale(scales ScaleSet, ratio float64) float64 {
	switch len(scales) {
	case 0:
		return ratio
	case 1:
		return scales[0]
	}

	nearest := 1.0
	lastDiff := maxScaleDiff
	for _, scale := range scales {
		diff := math.Abs(scale - ratio)
		if diff < lastDiff {
			nearest = scale
			lastDiff = diff
		}
		if lastDiff == 0 {
			break
		}
	}
	return nearest
}

// FormatScale renders a scale the way directory names use it: 1, 1.25, 2.
// Six significant digits, so float32 densities like 1.1 stay short.
func FormatScale(scale float64) string {
	return strconv.FormatFloat(scale, 'g', 6, 64)
}

// ResolveDirectory builds "<base>/z<scale>[-large]/".
func ResolveDirectory(base string, scale float64, large bool) string {
	var b strings.Builder
	b.WriteString(base)
	if !strings.HasSuffix(base, "/") {
		b.WriteByte('/')
	}
	b.WriteByte('z')
	b.WriteString(FormatScale(scale))
	if large {
		b.WriteString("-large")
	}
	b.WriteByte('/')
	return b.String()
}

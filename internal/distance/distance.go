// Package distance computes scalar distances between colors under three
// interchangeable metrics: Euclidean RGB, cylindrical HSV, and the
// CIEDE2000 perceptual color difference.
package distance

import (
	"errors"
	"math"

	"github.com/tsuyoshiwada/color-classifier/internal/color"
)

// Algorithm selects the distance metric.
type Algorithm int

const (
	// CIEDE2000 is the CIE 2000 perceptual color-difference formula.
	CIEDE2000 Algorithm = iota
	// HSV is a cheap cylindrical metric over hue, saturation and value.
	HSV
	// RGB is the Euclidean distance over 8-bit RGB channels.
	RGB
)

// ErrUnknownAlgorithm is returned by Compute for an Algorithm value
// outside the declared constants.
var ErrUnknownAlgorithm = errors.New("unknown distance algorithm")

func (a Algorithm) String() string {
	switch a {
	case CIEDE2000:
		return "ciede2000"
	case HSV:
		return "hsv"
	case RGB:
		return "rgb"
	}
	return "unknown"
}

// Compute dispatches to the metric selected by algo. Every metric is
// symmetric in its operands and yields 0 for identical inputs.
func Compute(a, b color.Color, algo Algorithm) (float64, error) {
	switch algo {
	case CIEDE2000:
		return DeltaE2000(a, b), nil
	case HSV:
		return HSVDistance(a, b), nil
	case RGB:
		return RGBDistance(a, b), nil
	default:
		return 0, ErrUnknownAlgorithm
	}
}

// RGBDistance is the Euclidean distance between the RGB channels of a
// and b. It is a true metric.
func RGBDistance(a, b color.Color) float64 {
	dr := float64(a.RGB.R) - float64(b.RGB.R)
	dg := float64(a.RGB.G) - float64(b.RGB.G)
	db := float64(a.RGB.B) - float64(b.RGB.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// HSVDistance combines the circular hue difference with saturation and
// value deltas under a Euclidean root. The hue term folds across the
// 0/360 boundary, so the result does not depend on operand order. Hue
// is measured in degrees while saturation and value are in [0, 1]; the
// metric is a geometric convenience, not a perceptual one.
func HSVDistance(a, b color.Color) float64 {
	dh := hueDiff(a.HSV.H, b.HSV.H)
	ds := a.HSV.S - b.HSV.S
	dv := a.HSV.V - b.HSV.V
	return math.Sqrt(dh*dh + ds*ds + dv*dv)
}

// hueDiff returns the shortest angular distance between two hues,
// in degrees, in [0, 180].
func hueDiff(h1, h2 float64) float64 {
	d := math.Abs(h1 - h2)
	if d > 180 {
		d = 360 - d
	}
	return d
}

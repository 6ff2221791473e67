// Package colorclassifier computes perceptual and geometric distances
// between hex colors and classifies colors against palettes.
//
// Distance between two colors:
//
//	a, _ := colorclassifier.Parse("#fa0")
//	b, _ := colorclassifier.Parse("#ff8800")
//	d, _ := colorclassifier.Distance(a, b, colorclassifier.AlgorithmCIEDE2000)
//
// Nearest palette entry:
//
//	c, _ := colorclassifier.NewClassifier([]string{"#fff", "#000"}, colorclassifier.AlgorithmRGB)
//	m, _ := c.Classify("#0a0a0a")
package colorclassifier

import (
	"github.com/tsuyoshiwada/color-classifier/internal/classify"
	"github.com/tsuyoshiwada/color-classifier/internal/color"
	"github.com/tsuyoshiwada/color-classifier/internal/distance"
)

// Color is an immutable color sample: the raw input, its normalized hex
// form, and the RGB, HSV and CIELAB representations derived from it.
type Color = color.Color

// Component value types of a Color.
type (
	RGB = color.RGB
	HSV = color.HSV
	LAB = color.LAB
)

// ParseError reports an input string that is not a valid hex color.
type ParseError = color.ParseError

// Algorithm selects one of the three distance metrics.
type Algorithm = distance.Algorithm

const (
	// AlgorithmCIEDE2000 is the CIEDE2000 perceptual color difference.
	AlgorithmCIEDE2000 = distance.CIEDE2000
	// AlgorithmHSV is a cylindrical hue/saturation/value metric.
	AlgorithmHSV = distance.HSV
	// AlgorithmRGB is the Euclidean distance over RGB channels.
	AlgorithmRGB = distance.RGB
)

// ErrUnknownAlgorithm is returned by Distance for an Algorithm value
// outside the declared constants.
var ErrUnknownAlgorithm = distance.ErrUnknownAlgorithm

// Parse builds a Color from a "#RRGGBB" or "#RGB" string. Malformed
// input fails with a *ParseError.
func Parse(input string) (Color, error) {
	return color.New(input)
}

// Distance computes the distance between a and b under algo.
func Distance(a, b Color, algo Algorithm) (float64, error) {
	return distance.Compute(a, b, algo)
}

// RGBDistance is the Euclidean distance over RGB channels.
func RGBDistance(a, b Color) float64 { return distance.RGBDistance(a, b) }

// HSVDistance is the cylindrical hue/saturation/value distance.
func HSVDistance(a, b Color) float64 { return distance.HSVDistance(a, b) }

// DeltaE2000 is the CIEDE2000 color difference between a and b.
func DeltaE2000(a, b Color) float64 { return distance.DeltaE2000(a, b) }

// Match is the result of a classification: the nearest palette entry
// and its distance from the input.
type Match = classify.Match

// Classifier resolves colors to the nearest member of a fixed palette.
type Classifier = classify.Classifier

// NewClassifier parses palette and builds a Classifier using algo.
func NewClassifier(palette []string, algo Algorithm) (*Classifier, error) {
	return classify.New(palette, algo)
}

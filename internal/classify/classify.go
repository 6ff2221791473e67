// Package classify maps colors onto the nearest entry of a fixed palette.
package classify

import (
	"fmt"
	"math"

	"github.com/tsuyoshiwada/color-classifier/internal/color"
	"github.com/tsuyoshiwada/color-classifier/internal/distance"
)

// Match is the result of classifying a color against a palette.
type Match struct {
	Color    color.Color // the nearest palette entry
	Distance float64     // its distance from the input
}

// Classifier resolves colors to the nearest member of a palette under a
// fixed algorithm. It is immutable after construction and safe for
// concurrent use.
type Classifier struct {
	palette []color.Color
	algo    distance.Algorithm
}

// New parses palette and builds a Classifier using algo. The whole
// palette is validated up front; a malformed entry fails construction,
// identifying the entry.
func New(palette []string, algo distance.Algorithm) (*Classifier, error) {
	if len(palette) == 0 {
		return nil, fmt.Errorf("palette is empty")
	}
	colors := make([]color.Color, 0, len(palette))
	for _, hex := range palette {
		c, err := color.New(hex)
		if err != nil {
			return nil, fmt.Errorf("palette entry %q: %w", hex, err)
		}
		colors = append(colors, c)
	}
	return &Classifier{palette: colors, algo: algo}, nil
}

// Classify parses input and returns its nearest palette entry.
func (cl *Classifier) Classify(input string) (Match, error) {
	c, err := color.New(input)
	if err != nil {
		return Match{}, err
	}
	return cl.ClassifyColor(c)
}

// ClassifyColor returns the palette entry nearest to c. Ties resolve to
// the earliest palette entry.
func (cl *Classifier) ClassifyColor(c color.Color) (Match, error) {
	best := Match{Distance: math.MaxFloat64}
	for _, p := range cl.palette {
		d, err := distance.Compute(c, p, cl.algo)
		if err != nil {
			return Match{}, err
		}
		if d < best.Distance {
			best = Match{Color: p, Distance: d}
		}
	}
	return best, nil
}

// Palette returns a copy of the parsed palette in input order.
func (cl *Classifier) Palette() []color.Color {
	out := make([]color.Color, len(cl.palette))
	copy(out, cl.palette)
	return out
}

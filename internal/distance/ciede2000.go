package distance

import (
	"math"

	"github.com/tsuyoshiwada/color-classifier/internal/color"
)

// Parametric weighting factors, fixed at unity (the graphic-arts
// reference conditions of Sharma, Wu & Dalal 2005).
const (
	kL = 1.0
	kC = 1.0
	kH = 1.0
)

const pow25To7 = 6103515625.0 // 25^7

// DeltaE2000 computes the CIEDE2000 color difference between a and b
// from their CIELAB coordinates.
func DeltaE2000(a, b color.Color) float64 {
	return DeltaE2000Lab(a.LAB, b.LAB)
}

// DeltaE2000Lab implements the CIEDE2000 formula of Sharma, Wu & Dalal
// (2005). Hue angles are carried in degrees and folded across the 0/360
// wraparound exactly as the published equations require; trigonometric
// arguments are converted to radians at the point of use.
func DeltaE2000Lab(lab1, lab2 color.LAB) float64 {
	c1 := math.Hypot(lab1.A, lab1.B)
	c2 := math.Hypot(lab2.A, lab2.B)

	cMean := (c1 + c2) / 2
	g := 0.5 * (1 - math.Sqrt(math.Pow(cMean, 7)/(math.Pow(cMean, 7)+pow25To7)))

	a1p := (1 + g) * lab1.A
	a2p := (1 + g) * lab2.A

	c1p := math.Hypot(a1p, lab1.B)
	c2p := math.Hypot(a2p, lab2.B)

	h1p := hueAngle(a1p, lab1.B)
	h2p := hueAngle(a2p, lab2.B)

	dL := lab2.L - lab1.L
	dC := c2p - c1p

	// Eq. 10/11: fold the raw hue difference into (-180, 180] before
	// turning it into the chroma-weighted hue delta. When either
	// adjusted chroma is zero the hue term vanishes.
	var dH float64
	if c1p*c2p != 0 {
		dh := h2p - h1p
		if dh > 180 {
			dh -= 360
		} else if dh < -180 {
			dh += 360
		}
		dH = 2 * math.Sqrt(c1p*c2p) * math.Sin(radians(dh/2))
	}

	lMean := (lab1.L + lab2.L) / 2
	cpMean := (c1p + c2p) / 2

	// Eq. 14: mean hue, with the wraparound branch keeping the mean on
	// the short arc between the two hues. Every branch condition is
	// symmetric in the operands.
	var hMean float64
	hSum := h1p + h2p
	switch {
	case c1p*c2p == 0:
		hMean = hSum
	case math.Abs(h1p-h2p) <= 180:
		hMean = hSum / 2
	case hSum < 360:
		hMean = (hSum + 360) / 2
	default:
		hMean = (hSum - 360) / 2
	}

	t := 1 -
		0.17*math.Cos(radians(hMean-30)) +
		0.24*math.Cos(radians(2*hMean)) +
		0.32*math.Cos(radians(3*hMean+6)) -
		0.20*math.Cos(radians(4*hMean-63))

	dTheta := 30 * math.Exp(-math.Pow((hMean-275)/25, 2))
	rc := math.Sqrt(math.Pow(cpMean, 7) / (math.Pow(cpMean, 7) + pow25To7))

	lDev := lMean - 50
	sl := 1 + 0.015*lDev*lDev/math.Sqrt(20+lDev*lDev)
	sc := 1 + 0.045*cpMean
	sh := 1 + 0.015*cpMean*t
	rt := -2 * rc * math.Sin(radians(2*dTheta))

	lTerm := dL / (kL * sl)
	cTerm := dC / (kC * sc)
	hTerm := dH / (kH * sh)

	// Rounding can push the radicand a hair below zero for
	// near-identical colors.
	sum := lTerm*lTerm + cTerm*cTerm + hTerm*hTerm + rt*cTerm*hTerm
	if sum < 0 {
		sum = 0
	}
	return math.Sqrt(sum)
}

// hueAngle returns atan2(b, a) as a degree angle in [0, 360), with the
// neutral-axis case pinned to 0.
func hueAngle(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	h := degrees(math.Atan2(b, a))
	if h < 0 {
		h += 360
	}
	return h
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

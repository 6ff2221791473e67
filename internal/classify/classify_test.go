package classify

import (
	"strings"
	"testing"

	"github.com/tsuyoshiwada/color-classifier/internal/color"
	"github.com/tsuyoshiwada/color-classifier/internal/distance"
)

func TestNew(t *testing.T) {
	t.Run("valid palette", func(t *testing.T) {
		cl, err := New([]string{"#ff0000", "#0f0", "#0000ff"}, distance.CIEDE2000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := len(cl.Palette()); got != 3 {
			t.Errorf("palette size = %d, want 3", got)
		}
	})

	t.Run("empty palette fails", func(t *testing.T) {
		if _, err := New(nil, distance.RGB); err == nil {
			t.Fatal("expected error for empty palette")
		}
	})

	t.Run("bad entry fails identifying it", func(t *testing.T) {
		_, err := New([]string{"#ff0000", "nope", "#0000ff"}, distance.RGB)
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), `"nope"`) {
			t.Errorf("error %q does not name the bad entry", err)
		}
	})
}

func TestClassify(t *testing.T) {
	palette := []string{"#ff0000", "#00ff00", "#0000ff", "#ffffff", "#000000"}

	for _, algo := range []distance.Algorithm{distance.CIEDE2000, distance.HSV, distance.RGB} {
		t.Run(algo.String(), func(t *testing.T) {
			cl, err := New(palette, algo)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			t.Run("exact member maps to itself", func(t *testing.T) {
				m, err := cl.Classify("#00ff00")
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if m.Color.Hex != "#00ff00" {
					t.Errorf("matched %s, want #00ff00", m.Color.Hex)
				}
				if m.Distance != 0 {
					t.Errorf("distance = %f, want 0", m.Distance)
				}
			})

			t.Run("near-red maps to red", func(t *testing.T) {
				m, err := cl.Classify("#fe0505")
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if m.Color.Hex != "#ff0000" {
					t.Errorf("matched %s, want #ff0000", m.Color.Hex)
				}
			})

			t.Run("near-black maps to black", func(t *testing.T) {
				m, err := cl.Classify("#0a0a0a")
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if m.Color.Hex != "#000000" {
					t.Errorf("matched %s, want #000000", m.Color.Hex)
				}
			})
		})
	}
}

func TestClassifyInvalidInput(t *testing.T) {
	cl, err := New([]string{"#fff", "#000"}, distance.RGB)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := cl.Classify("notacolor"); err == nil {
		t.Fatal("expected error for invalid input")
	}
}

func TestClassifyTiesResolveToEarliestEntry(t *testing.T) {
	// Both entries normalize to the same color; the first wins.
	cl, err := New([]string{"#ff0000", "#f00"}, distance.RGB)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, err := cl.Classify("#ff0000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Color.Original != "#ff0000" {
		t.Errorf("matched entry %q, want the first (%q)", m.Color.Original, "#ff0000")
	}
}

func TestClassifyColor(t *testing.T) {
	cl, err := New([]string{"#ffffff", "#000000"}, distance.CIEDE2000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, err := color.New("#f8f8f8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, err := cl.ClassifyColor(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Color.Hex != "#ffffff" {
		t.Errorf("matched %s, want #ffffff", m.Color.Hex)
	}
}

func TestPaletteReturnsCopy(t *testing.T) {
	cl, err := New([]string{"#ff0000", "#00ff00"}, distance.RGB)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := cl.Palette()
	p[0] = color.Color{}
	if cl.Palette()[0].Hex != "#ff0000" {
		t.Error("mutating the returned slice changed the classifier's palette")
	}
}

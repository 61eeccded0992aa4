package svquad

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// TestGeomspace verifies log spacing, endpoint handling and the degenerate
// zero-width span.
func TestGeomspace(t *testing.T) {
	t.Run("decades", func(t *testing.T) {
		got := Geomspace(make([]float64, 5), 1, 1e4)
		want := []float64{1, 10, 100, 1000, 10000}

		for i := range want {
			if math.Abs(got[i]-want[i])/want[i] > 1e-12 {
				t.Errorf("point %d = %g, expected %g", i, got[i], want[i])
			}
		}
		AssertNonDecreasing(t, "geomspace", got)
	})

	t.Run("zero width", func(t *testing.T) {
		got := Geomspace(make([]float64, 4), 1e-3, 1e-3)
		for i, v := range got {
			if v != 1e-3 {
				t.Errorf("point %d = %g, expected repeated endpoint 1e-3", i, v)
			}
		}
		t.Log("✓ zero-width span repeats the endpoint")
	})
}

// TestPeakBounds exercises the sign-change bracketing over hand-built
// columns on a five-point grid.
func TestPeakBounds(t *testing.T) {
	grid := []float64{1e-4, 1e-3, 1e-2, 1e-1, 1}

	tests := []struct {
		name               string
		col                []float64
		fLow, fPeak, fHigh float64
	}{
		{
			name: "interior peak",
			col:  []float64{0, 1e-20, 1, 0.5, 1e-20},
			fLow: 1e-3, fPeak: 1e-2, fHigh: 1e-1,
		},
		{
			name: "never drops below threshold",
			col:  []float64{1e-20, 1e-6, 1e-3, 0.5, 1},
			fLow: 1e-4, fPeak: 1, fHigh: 1,
		},
		{
			name: "starts above threshold",
			col:  []float64{1, 0.5, 1e-3, 1e-20, 0},
			fLow: 1e-4, fPeak: 1e-4, fHigh: 1e-2,
		},
		{
			// A peak on the first grid point with an immediate drop has no
			// usable downward bracket; the whole remaining domain is kept
			// instead of collapsing to a zero-width span.
			name: "peak at grid start",
			col:  []float64{1, 1e-20, 0, 0, 0},
			fLow: 1e-4, fPeak: 1e-4, fHigh: 1,
		},
		{
			// A secondary bump ahead of the dominant peak must not pull
			// fHigh below fPeak; only the crossing at or after the peak
			// counts.
			name: "secondary bump before the peak",
			col:  []float64{1e-20, 1e-3, 1e-20, 1, 1e-20},
			fLow: 1e-4, fPeak: 1e-1, fHigh: 1e-1,
		},
		{
			// Mirror case: a re-rise after a start-of-grid peak must not
			// push fLow above fPeak.
			name: "re-rise after start peak",
			col:  []float64{1, 1e-20, 0.5, 1e-20, 0},
			fLow: 1e-4, fPeak: 1e-4, fHigh: 1,
		},
		{
			name: "identically zero",
			col:  []float64{0, 0, 0, 0, 0},
			fLow: 1e-4, fPeak: 1e-4, fHigh: 1e-4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fLow, fPeak, fHigh := peakBounds(grid, tt.col, 1e-10)

			if fLow != tt.fLow || fPeak != tt.fPeak || fHigh != tt.fHigh {
				t.Errorf("bounds (%g, %g, %g), expected (%g, %g, %g)",
					fLow, fPeak, fHigh, tt.fLow, tt.fPeak, tt.fHigh)
			}
			if fLow > fPeak || fPeak > fHigh {
				t.Errorf("ordering violated: fLow=%g fPeak=%g fHigh=%g", fLow, fPeak, fHigh)
			}

			t.Logf("✓ fLow=%g ≤ fPeak=%g ≤ fHigh=%g", fLow, fPeak, fHigh)
		})
	}
}

// TestResampleAroundPeak_Columns verifies shape, ordering, range and
// per-column independence of the refined grid.
func TestResampleAroundPeak_Columns(t *testing.T) {
	grid := []float64{1e-4, 1e-3, 1e-2, 1e-1, 1}
	cfg := GridConfig{CoarsePoints: 5, Frac: 1e-10, NLow: 8, NHigh: 12}

	// Column 0 peaks at 1e-2, column 1 at 1e-1.
	vals := mat.NewDense(5, 2, []float64{
		0, 0,
		1e-20, 0,
		1, 1e-20,
		0.5, 1,
		1e-20, 0.25,
	})

	refined := ResampleAroundPeak(grid, vals, cfg)

	rows, cols := refined.Dims()
	if rows != cfg.NLow+cfg.NHigh || cols != 2 {
		t.Fatalf("refined shape %dx%d, expected %dx2", rows, cols, cfg.NLow+cfg.NHigh)
	}

	for j := 0; j < cols; j++ {
		col := mat.Col(nil, j, refined)
		AssertNonDecreasing(t, "refined column", col)
		AssertWithinSpan(t, "refined column", col, grid[0], grid[len(grid)-1])
	}

	// The two columns bracket different peaks and must differ.
	c0 := mat.Col(nil, 0, refined)
	c1 := mat.Col(nil, 1, refined)
	same := true
	for i := range c0 {
		if c0[i] != c1[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("columns with different peaks produced identical refined grids")
	}
}

// TestResampleAroundPeak_ZeroColumn verifies the degenerate collapse: an
// identically zero column refines to a single repeated abundance.
func TestResampleAroundPeak_ZeroColumn(t *testing.T) {
	grid := []float64{1e-4, 1e-3, 1e-2, 1e-1, 1}
	cfg := GridConfig{CoarsePoints: 5, Frac: 1e-10, NLow: 6, NHigh: 6}

	vals := mat.NewDense(5, 1, make([]float64, 5))
	refined := ResampleAroundPeak(grid, vals, cfg)

	col := mat.Col(nil, 0, refined)
	for i, f := range col {
		if f != grid[0] {
			t.Errorf("point %d = %g, expected collapse to %g", i, f, grid[0])
		}
	}

	t.Logf("✓ zero column collapsed to %d copies of %g", len(col), grid[0])
}

// TestResampleAroundPeak_BimodalStaysSorted: a column with a secondary bump
// ahead of its peak must still refine to a sorted grid fit for the
// trapezoid rule.
func TestResampleAroundPeak_BimodalStaysSorted(t *testing.T) {
	grid := []float64{1e-4, 1e-3, 1e-2, 1e-1, 1}
	cfg := GridConfig{CoarsePoints: 5, Frac: 1e-10, NLow: 6, NHigh: 6}

	vals := mat.NewDense(5, 1, []float64{1e-20, 1e-3, 1e-20, 1, 1e-20})
	refined := ResampleAroundPeak(grid, vals, cfg)

	col := mat.Col(nil, 0, refined)
	AssertNonDecreasing(t, "bimodal refined column", col)
	AssertWithinSpan(t, "bimodal refined column", col, grid[0], grid[len(grid)-1])
}

// TestResampleAroundPeak_PeakAtBoundary: a column still rising at the last
// grid point puts fPeak == fHigh, so the upper refinement half degenerates
// to repeated endpoints without a panic.
func TestResampleAroundPeak_PeakAtBoundary(t *testing.T) {
	grid := []float64{1e-4, 1e-3, 1e-2, 1e-1, 1}
	cfg := GridConfig{CoarsePoints: 5, Frac: 1e-10, NLow: 6, NHigh: 6}

	vals := mat.NewDense(5, 1, []float64{1e-20, 1e-6, 1e-3, 0.5, 1})
	refined := ResampleAroundPeak(grid, vals, cfg)

	col := mat.Col(nil, 0, refined)
	AssertNonDecreasing(t, "boundary-peak column", col)

	for i := cfg.NLow; i < cfg.NLow+cfg.NHigh; i++ {
		if col[i] != 1 {
			t.Errorf("upper half point %d = %g, expected repeated peak 1", i, col[i])
		}
	}
}

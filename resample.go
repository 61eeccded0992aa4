package svquad

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Geomspace fills dst with logarithmically spaced points from l to u
// inclusive and returns dst. Both endpoints must be positive. A zero-width
// span (l == u) is well-defined and fills dst with the endpoint repeated;
// the resampler relies on this when a peak sits at a grid boundary.
func Geomspace(dst []float64, l, u float64) []float64 {
	if l == u {
		for i := range dst {
			dst[i] = l
		}
		return dst
	}
	floats.LogSpan(dst, l, u)
	// LogSpan reconstructs endpoints as exp(log(x)+rounding), which can land
	// one ulp off the exact bound; pin them so adjacent spans sharing an
	// endpoint stay monotonic.
	dst[0] = l
	dst[len(dst)-1] = u
	return dst
}

// ResampleAroundPeak builds a refined abundance grid concentrated around the
// integrand peak of every cross-section column.
//
// grid is the coarse abundance grid and vals the integrand evaluated on it,
// shaped [len(grid) × number of cross sections]. For each column the peak
// location fPeak and the span [fLow, fHigh] where the column exceeds
// cfg.Frac × its maximum are located, and the column is replaced by
// cfg.NLow log-spaced points from fLow to fPeak followed by cfg.NHigh
// log-spaced points from fPeak to fHigh. The result is shaped
// [cfg.NLow+cfg.NHigh × number of cross sections].
//
// A sharply peaked integrand wastes quadrature points on flat near-zero
// tails under uniform or log-uniform sampling; concentrating points on both
// sides of the peak reaches quad-level accuracy with far fewer evaluations.
//
// Every output column is non-decreasing, so it can be fed directly to the
// trapezoid rule. Degenerate columns (peak at a grid boundary, or an
// identically zero column) collapse to repeated points and integrate to an
// exact zero-width contribution.
func ResampleAroundPeak(grid []float64, vals mat.Matrix, cfg GridConfig) *mat.Dense {
	rows, cols := vals.Dims()
	out := mat.NewDense(cfg.NLow+cfg.NHigh, cols, nil)

	col := make([]float64, rows)
	low := make([]float64, cfg.NLow)
	high := make([]float64, cfg.NHigh)

	for j := 0; j < cols; j++ {
		mat.Col(col, j, vals)
		fLow, fPeak, fHigh := peakBounds(grid, col, cfg.Frac)

		Geomspace(low, fLow, fPeak)
		Geomspace(high, fPeak, fHigh)

		for i, f := range low {
			out.Set(i, j, f)
		}
		for i, f := range high {
			out.Set(cfg.NLow+i, j, f)
		}
	}

	return out
}

// peakBounds locates the peak of one integrand column and the abundance span
// where the column is non-negligible.
//
// The span is found by sign-change detection against the threshold
// frac × max: fLow is the grid point just before the first upward crossing
// (defaulting to the first grid point when the column starts above
// threshold), fHigh is the last grid point above threshold before the first
// downward crossing at or after the peak. Two cases fall back to the final
// grid point: a column that never drops back below threshold, and a drop
// across the very first grid pair, where the crossing carries no usable
// bracket and the whole remaining domain is kept.
//
// An identically zero column has no peak to bracket; it collapses to the
// first grid point on all three bounds so the downstream trapezoid integral
// is exactly zero.
//
// The upward scan stops at the peak and the downward scan starts there, so
// fLow <= fPeak <= fHigh always holds and the refined grid stays sorted even
// for multi-modal columns. A secondary bump outside [fLow, fHigh] is still
// excluded from refinement; see the package documentation for that accuracy
// caveat.
func peakBounds(grid, col []float64, frac float64) (fLow, fPeak, fHigh float64) {
	peakIdx := floats.MaxIdx(col)
	peak := col[peakIdx]
	if peak == 0 {
		return grid[0], grid[0], grid[0]
	}

	thr := frac * peak
	fPeak = grid[peakIdx]

	fLow = grid[0]
	for i := 0; i < peakIdx; i++ {
		if sign(thr-col[i]) > sign(thr-col[i+1]) {
			fLow = grid[i]
			break
		}
	}

	fHigh = grid[len(grid)-1]
	for i := peakIdx; i+1 < len(col); i++ {
		if sign(thr-col[i]) < sign(thr-col[i+1]) {
			if i > 0 {
				fHigh = grid[i]
			}
			break
		}
	}

	return fLow, fPeak, fHigh
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

package svquad

import (
	"math"
	"testing"
)

// AssertNonNegative verifies every value in vals is >= 0.
//
// The posterior integrand is exp of a real log-probability, so a negative
// value anywhere means the evaluation pipeline is broken.
func AssertNonNegative(t *testing.T, name string, vals []float64) {
	t.Helper()

	for i, v := range vals {
		if v < 0 || math.IsNaN(v) {
			t.Errorf("%s[%d] = %g, must be non-negative", name, i, v)
			return
		}
	}

	t.Logf("✓ %s: all %d values non-negative", name, len(vals))
}

// AssertNonDecreasing verifies vals is sorted in non-decreasing order.
// Repeated points are allowed: a degenerate refined grid collapses to the
// same abundance many times over.
func AssertNonDecreasing(t *testing.T, name string, vals []float64) {
	t.Helper()

	for i := 1; i < len(vals); i++ {
		if vals[i] < vals[i-1] {
			t.Errorf("%s not sorted at %d: %g > %g", name, i, vals[i-1], vals[i])
			return
		}
	}

	t.Logf("✓ %s: non-decreasing over %d points", name, len(vals))
}

// AssertWithinSpan verifies every value in vals lies inside [lo, hi].
func AssertWithinSpan(t *testing.T, name string, vals []float64, lo, hi float64) {
	t.Helper()

	for i, v := range vals {
		if v < lo || v > hi {
			t.Errorf("%s[%d] = %g outside [%g, %g]", name, i, v, lo, hi)
			return
		}
	}

	t.Logf("✓ %s: %d points within [%g, %g]", name, len(vals), lo, hi)
}

// AssertRelativeError verifies got matches want within a relative tolerance.
func AssertRelativeError(t *testing.T, name string, got, want, tol float64) {
	t.Helper()

	if want == 0 {
		if got != 0 {
			t.Errorf("%s = %g, want exactly 0", name, got)
		}
		return
	}

	rel := math.Abs(got-want) / math.Abs(want)
	if rel > tol {
		t.Errorf("%s = %g, want %g (relative error %.3g > %.3g)",
			name, got, want, rel, tol)
		return
	}

	t.Logf("✓ %s = %g (relative error %.3g)", name, got, rel)
}

// AssertColumnIndependence verifies that a batched PosteriorValues call
// equals element-wise PosteriorValue calls, bit for bit. Each cross-section
// column must be computed independently of its neighbors.
func AssertColumnIndependence(t *testing.T, m *Model, svs []float64, mDM float64) {
	t.Helper()

	batched := m.PosteriorValues(svs, mDM)
	for j, sv := range svs {
		single := m.PosteriorValue(sv, mDM)
		if math.Float64bits(batched[j]) != math.Float64bits(single) {
			t.Errorf("column %d (sv=%g): batched %g != scalar %g",
				j, sv, batched[j], single)
		}
	}

	t.Logf("✓ %d columns independent of batch shape", len(svs))
}

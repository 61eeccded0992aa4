package svquad

import (
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/mat"
)

// PosteriorValue computes the marginal posterior value at a single cross
// section for DM mass mDM, integrating the nuisance abundance parameter out
// over [FMin, FMax].
func (m *Model) PosteriorValue(sv, mDM float64) float64 {
	return m.PosteriorValues([]float64{sv}, mDM)[0]
}

// PosteriorValues computes the marginal posterior at every cross section in
// svs for a common DM mass, one abundance integration per entry. Columns are
// fully independent: the result equals element-wise PosteriorValue calls.
//
// The integration is a fixed two-pass scheme with no convergence loop:
//
//  1. Evaluate the integrand on a coarse log-spaced abundance grid to
//     locate each column's peak region.
//  2. Resample a refined grid concentrated around each peak
//     (see ResampleAroundPeak) and re-evaluate.
//  3. Apply the trapezoid rule per column over the refined grid.
//
// Identical inputs always produce bit-identical outputs; the evaluation is
// pure and carries no hidden state.
func (m *Model) PosteriorValues(svs []float64, mDM float64) []float64 {
	coarse := Geomspace(make([]float64, m.Grid.CoarsePoints), m.FMin, m.FMax)
	coarseVals := m.integrandOverMesh(columnMesh(coarse, len(svs)), svs, mDM)

	refined := ResampleAroundPeak(coarse, coarseVals, m.Grid)
	refinedVals := m.integrandOverMesh(refined, svs, mDM)

	out := make([]float64, len(svs))
	x := make([]float64, m.Grid.NLow+m.Grid.NHigh)
	y := make([]float64, m.Grid.NLow+m.Grid.NHigh)
	for j := range svs {
		mat.Col(x, j, refined)
		mat.Col(y, j, refinedVals)
		out[j] = integrate.Trapezoidal(x, y)
	}
	return out
}

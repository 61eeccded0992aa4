package svquad

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Integrand evaluates the unnormalized posterior integrand at a single
// (f, sv) point for DM mass mDM.
//
// The value is the product of the two prior densities and the Gaussian
// likelihood of the flux residuals:
//
//	p(f, sv) = prior_sv(sv) · prior_f(f) · ∏_i N(φ_i; 0, σ_i)
//
// All terms accumulate in log space and only the final result is
// exponentiated: far from the best fit the likelihood underflows double
// precision by hundreds of orders of magnitude, and summing logs keeps the
// near-peak shape intact. A zero prior density contributes log(0) = -Inf and
// the result is exactly zero, never an error.
func (m *Model) Integrand(f, sv, mDM float64) float64 {
	logProb := math.Log(m.PriorSV(sv)) + math.Log(m.PriorF(f))

	phi := m.FluxResidual(m.Energies, mDM, sv, m.MPBH, f, m.FinalState)
	for i, p := range phi {
		s := m.Sigma[i]
		r := p / s
		logProb -= 0.5 * (r*r + math.Log(2*math.Pi*s*s))
	}

	return math.Exp(logProb)
}

// integrandOverMesh evaluates the integrand on a per-column abundance mesh.
// fMesh holds one abundance grid per cross section: entry (i, j) is the i-th
// abundance sample for svs[j]. The result has the same shape.
//
// This is the explicit Go form of broadcasting the integrand over an
// (abundance × cross-section) mesh: every column is evaluated independently
// against its own cross section.
func (m *Model) integrandOverMesh(fMesh mat.Matrix, svs []float64, mDM float64) *mat.Dense {
	rows, cols := fMesh.Dims()
	out := mat.NewDense(rows, cols, nil)
	for j := 0; j < cols; j++ {
		sv := svs[j]
		for i := 0; i < rows; i++ {
			out.Set(i, j, m.Integrand(fMesh.At(i, j), sv, mDM))
		}
	}
	return out
}

// columnMesh builds the outer-product mesh of a shared abundance grid against
// cols cross sections: every column holds a copy of grid.
func columnMesh(grid []float64, cols int) *mat.Dense {
	out := mat.NewDense(len(grid), cols, nil)
	for i, f := range grid {
		for j := 0; j < cols; j++ {
			out.Set(i, j, f)
		}
	}
	return out
}

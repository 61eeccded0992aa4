package svquad

import "fmt"

// PriorFunc is a one-argument probability density. It must return a
// non-negative value for every input; a return of exactly zero marks the
// input as excluded by the prior and propagates to an exactly-zero integrand.
type PriorFunc func(x float64) float64

// FluxResidualFunc computes the predicted-minus-observed flux for each energy
// bin. The returned slice must have one element per energy bin, in the same
// order as energies.
//
// The final-state tag is an opaque passthrough: the integration core never
// inspects it, it only forwards it to the flux model.
type FluxResidualFunc func(energies []float64, mDM, sv, mPBH, f float64, finalState string) []float64

// GridConfig controls the two-pass adaptive abundance grid.
type GridConfig struct {
	// CoarsePoints is the size of the exploratory log-spaced grid used to
	// locate the integrand peak.
	CoarsePoints int

	// Frac defines the "negligible" threshold as a fraction of each
	// column's peak value. Grid points where the integrand falls below
	// Frac × max are treated as flat tail and excluded from refinement.
	Frac float64

	// NLow is the number of log-spaced refinement points below the peak.
	NLow int

	// NHigh is the number of log-spaced refinement points above the peak.
	// The decay above the peak is typically slower, so NHigh > NLow.
	NHigh int
}

// DefaultGridConfig returns the grid sizes used for posterior scans.
//
// 20 coarse points are enough to bracket a peak spanning a fraction of a
// decade; 50+150 refined points put the trapezoid discretization error well
// below the percent level for such peaks. For very narrow integrands
// (width below the coarse spacing) raise NLow/NHigh to 75/350.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		CoarsePoints: 20,
		Frac:         1e-10,
		NLow:         50,
		NHigh:        150,
	}
}

// Model bundles everything the integration core needs to evaluate the
// posterior over the self-annihilation cross section: the two prior
// densities, the flux residual model, the observational data and the
// abundance integration domain.
//
// All fields are read-only to the core. A Model carries no mutable state, so
// a single value is safe for concurrent use by any number of goroutines.
type Model struct {
	// PriorF is the prior density on the PBH relative abundance f.
	PriorF PriorFunc

	// PriorSV is the prior density on the cross section <sigma v>.
	PriorSV PriorFunc

	// FluxResidual maps model parameters to per-bin flux residuals.
	FluxResidual FluxResidualFunc

	// Energies holds the observed energy bins.
	Energies []float64

	// Sigma holds the per-bin observational uncertainty. Must have the
	// same length as Energies, all entries positive.
	Sigma []float64

	// MPBH is the PBH mass, forwarded unchanged to FluxResidual.
	MPBH float64

	// FinalState is the DM annihilation final state tag, forwarded
	// unchanged to FluxResidual.
	FinalState string

	// FMin and FMax bound the abundance integration domain. Both must be
	// positive with FMin < FMax; the domain typically spans several
	// decades.
	FMin, FMax float64

	// Grid configures the adaptive two-pass quadrature.
	Grid GridConfig
}

// Validate checks the Model preconditions. Numeric degeneracies during
// integration (all-zero integrand columns, zero-width peaks) are handled by
// the quadrature itself and are not errors; Validate only rejects inputs the
// core is not defined for.
func (m *Model) Validate() error {
	if m.PriorF == nil {
		return fmt.Errorf("svquad: PriorF is nil")
	}
	if m.PriorSV == nil {
		return fmt.Errorf("svquad: PriorSV is nil")
	}
	if m.FluxResidual == nil {
		return fmt.Errorf("svquad: FluxResidual is nil")
	}
	if len(m.Energies) == 0 {
		return fmt.Errorf("svquad: no energy bins")
	}
	if len(m.Sigma) != len(m.Energies) {
		return fmt.Errorf("svquad: %d sigma entries for %d energy bins",
			len(m.Sigma), len(m.Energies))
	}
	for i, s := range m.Sigma {
		if s <= 0 {
			return fmt.Errorf("svquad: sigma[%d] = %g, must be positive", i, s)
		}
	}
	if m.FMin <= 0 || m.FMax <= 0 {
		return fmt.Errorf("svquad: abundance bounds must be positive, got [%g, %g]",
			m.FMin, m.FMax)
	}
	if m.FMin >= m.FMax {
		return fmt.Errorf("svquad: FMin = %g must be below FMax = %g", m.FMin, m.FMax)
	}
	if m.Grid.CoarsePoints < 2 {
		return fmt.Errorf("svquad: CoarsePoints = %d, need at least 2", m.Grid.CoarsePoints)
	}
	if m.Grid.NLow < 2 || m.Grid.NHigh < 2 {
		return fmt.Errorf("svquad: refinement sizes %d/%d, need at least 2 each",
			m.Grid.NLow, m.Grid.NHigh)
	}
	if m.Grid.Frac <= 0 || m.Grid.Frac >= 1 {
		return fmt.Errorf("svquad: Frac = %g, must be in (0, 1)", m.Grid.Frac)
	}
	return nil
}

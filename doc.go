// Package svquad computes Bayesian posterior densities over a dark-matter
// self-annihilation cross section, marginalizing a nuisance PBH abundance
// parameter with an adaptive two-pass quadrature.
//
// # Overview
//
// Diffuse gamma-ray constraints on annihilating dark matter lead to a
// marginal posterior of the form
//
//	P(<σv> | data) ∝ ∫ p(<σv>) p(f) L(data | f, <σv>, m_DM) df
//
// where f is the fraction of dark matter in primordial black holes (PBHs)
// and L is a Gaussian likelihood over per-energy-bin flux residuals. The
// integrand is sharply peaked at an unknown abundance, spans several orders
// of magnitude in f, and underflows double precision almost everywhere else.
// svquad solves the two coupled problems this raises:
//
//   - Evaluating the integrand without underflow (log-space accumulation,
//     exponentiating only the final value).
//   - Integrating it accurately without thousands of evaluations (locate the
//     peak on a coarse log-spaced grid, rebuild the grid concentrated around
//     the peak, then apply the trapezoid rule).
//
// # Quick Start
//
// Describe the physics with a Model: two prior densities, a flux residual
// function and the observed bins.
//
//	m := &svquad.Model{
//	    PriorF:       priorF,
//	    PriorSV:      priorSV,
//	    FluxResidual: fluxResidual,
//	    Energies:     energies,
//	    Sigma:        sigma,
//	    MPBH:         0.5,
//	    FinalState:   "b",
//	    FMin:         1e-6,
//	    FMax:         1,
//	    Grid:         svquad.DefaultGridConfig(),
//	}
//	if err := m.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
//	// One point of the posterior:
//	p := m.PosteriorValue(3e-26, 100)
//
//	// A whole (cross section × mass) table, rows parallelized:
//	table, err := m.Scan(ctx, svs, masses)
//
// # The Adaptive Grid
//
// PosteriorValues makes exactly two evaluation passes and never iterates to
// a tolerance:
//
//  1. Coarse pass: the integrand is evaluated on GridConfig.CoarsePoints
//     log-spaced abundances spanning [FMin, FMax].
//  2. Peak bracketing: per cross-section column, the abundance span where
//     the integrand exceeds Frac × its column maximum is found by
//     sign-change detection (see ResampleAroundPeak).
//  3. Refined pass: NLow log-spaced points below the peak and NHigh above it
//     replace the coarse grid, the integrand is re-evaluated, and the
//     trapezoid rule integrates each column.
//
// Degenerate columns never fail: a peak at a grid boundary collapses one
// refinement half to repeated points, and an identically zero column
// integrates to exactly zero.
//
// # Concurrency
//
// A Model is immutable once built and every evaluation is pure, so all
// methods are safe for concurrent use. Scan exploits this by computing mass
// rows in parallel; for any other parallel decomposition, call
// PosteriorValue from as many goroutines as you like.
//
// # Testing
//
// The Assert helpers validate the core numeric invariants in your own tests:
//
//	func TestMyModel(t *testing.T) {
//	    vals := m.PosteriorValues(svs, 100)
//
//	    svquad.AssertNonNegative(t, "posterior", vals)
//	    svquad.AssertColumnIndependence(t, m, svs, 100)
//	}
//
// # Limitations
//
// The peak bracketing assumes a unimodal integrand. A multi-modal column is
// bracketed around its sampled maximum only, between the first upward
// threshold crossing before the peak and the first downward crossing after
// it; secondary bumps outside that span are not refined and may be
// integrated poorly. Peaks much narrower than the coarse spacing can be
// bracketed off-center; raise GridConfig.CoarsePoints if the flux model
// produces such integrands.
package svquad

package svquad

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Scan evaluates the marginal posterior over the outer product of cross
// sections and DM masses. Row i of the result holds PosteriorValues(svs,
// masses[i]); columns follow svs.
//
// Masses are independent, so rows are computed in parallel, one goroutine
// per mass capped at GOMAXPROCS. The context is checked before each row;
// cancellation abandons the scan and returns the context error.
func (m *Model) Scan(ctx context.Context, svs, masses []float64) (*mat.Dense, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if len(svs) == 0 || len(masses) == 0 {
		return nil, fmt.Errorf("svquad: empty scan grid (%d cross sections, %d masses)",
			len(svs), len(masses))
	}

	out := mat.NewDense(len(masses), len(svs), nil)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, mass := range masses {
		i, mass := i, mass
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			out.SetRow(i, m.PosteriorValues(svs, mass))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

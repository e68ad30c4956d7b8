package fourier

import (
	"fmt"

	dsp "gonum.org/v1/gonum/dsp/fourier"

	"github.com/avoskre/matsu/gf"
	"github.com/avoskre/matsu/mesh"
)

// ToRealSpace transforms g from the momentum mesh to its real-space dual,
// independently for every frequency/time point:
//
//	f(r) = (1/N_k)·Σ_k e^{+i k·r} f(k)
//
// Returns ErrSpaceAxis unless g lives on a *mesh.KMesh spatial axis.
func ToRealSpace(g *gf.Gf) (*gf.Gf, error) {
	km, ok := g.Space().(*mesh.KMesh)
	if !ok {
		return nil, fmt.Errorf("ToRealSpace: axis %T: %w", g.Space(), ErrSpaceAxis)
	}

	out, err := gf.New(km.Conjugate(), g.Time())
	if err != nil {
		return nil, fmt.Errorf("ToRealSpace: %w", err)
	}
	spatial2D(g, out, km.L(), false)
	out.Scale(complex(1/float64(km.Len()), 0))

	return out, nil
}

// ToMomentum transforms g from the real-space mesh to its momentum dual,
// independently for every frequency/time point:
//
//	f(k) = Σ_r e^{−i k·r} f(r)
//
// Returns ErrSpaceAxis unless g lives on a *mesh.RMesh spatial axis.
func ToMomentum(g *gf.Gf) (*gf.Gf, error) {
	rm, ok := g.Space().(*mesh.RMesh)
	if !ok {
		return nil, fmt.Errorf("ToMomentum: axis %T: %w", g.Space(), ErrSpaceAxis)
	}

	out, err := gf.New(rm.Conjugate(), g.Time())
	if err != nil {
		return nil, fmt.Errorf("ToMomentum: %w", err)
	}
	spatial2D(g, out, rm.L(), true)

	return out, nil
}

// spatial2D applies an unnormalized DFT along both spatial coordinates for
// every temperature point. forward selects e^{−i k·r} (Coefficients);
// otherwise e^{+i k·r} (Sequence). src and dst must share axis sizes.
func spatial2D(src, dst *gf.Gf, l int, forward bool) {
	var (
		plan = dsp.NewCmplxFFT(l)
		nt   = src.Time().Len()
		grid = make([]complex128, l*l) // scratch plane at fixed t
		buf  = make([]complex128, l)   // one row/column line
		line = make([]complex128, l)   // transformed line
	)

	for t := 0; t < nt; t++ {
		// Gather the spatial plane at this temperature point.
		for s := 0; s < l*l; s++ {
			grid[s] = src.At(s, t)
		}

		// First coordinate: transform each row (fixed a, running b).
		for a := 0; a < l; a++ {
			copy(buf, grid[a*l:(a+1)*l])
			apply(plan, line, buf, forward)
			copy(grid[a*l:(a+1)*l], line)
		}

		// Second coordinate: transform each column (fixed b, running a).
		for b := 0; b < l; b++ {
			for a := 0; a < l; a++ {
				buf[a] = grid[a*l+b]
			}
			apply(plan, line, buf, forward)
			for a := 0; a < l; a++ {
				grid[a*l+b] = line[a]
			}
		}

		// Scatter the transformed plane.
		for s := 0; s < l*l; s++ {
			dst.Set(s, t, grid[s])
		}
	}
}

// apply runs one unnormalized DFT line: negative exponent for forward,
// positive for backward.
func apply(plan *dsp.CmplxFFT, dst, src []complex128, forward bool) {
	if forward {
		plan.Coefficients(dst, src)
	} else {
		plan.Sequence(dst, src)
	}
}

package fourier

import (
	"fmt"
	"math"
	"math/cmplx"

	dsp "gonum.org/v1/gonum/dsp/fourier"

	"github.com/avoskre/matsu/gf"
	"github.com/avoskre/matsu/mesh"
)

// ToImTime transforms g from the Matsubara-frequency mesh to its
// imaginary-time dual, independently for every momentum/site point:
//
//	f(τ_j) = (1/β)·Σ_n e^{−i ω_n τ_j} f(iω_n)
//
// The statistics of the frequency mesh selects the phase: with frequencies
// ω stored on slots s ↔ Matsubara index s−n, the exponent factorizes into
// a plain length-N DFT times (−1)^j, times the fermionic half-step phase
// e^{−iπj/N}. Returns ErrTimeAxis unless g lives on a *mesh.ImFreqMesh.
func ToImTime(g *gf.Gf) (*gf.Gf, error) {
	wm, ok := g.Time().(*mesh.ImFreqMesh)
	if !ok {
		return nil, fmt.Errorf("ToImTime: axis %T: %w", g.Time(), ErrTimeAxis)
	}

	var (
		n     = wm.Len()
		tm    = wm.Conjugate()
		plan  = dsp.NewCmplxFFT(n)
		phase = boundaryPhase(wm.Statistics(), n)
		coeff = make([]complex128, n)
		invB  = complex(1/wm.Beta(), 0)
	)

	out, err := gf.New(g.Space(), tm)
	if err != nil {
		return nil, fmt.Errorf("ToImTime: %w", err)
	}

	for s := 0; s < g.Space().Len(); s++ {
		plan.Coefficients(coeff, g.TimeSlice(s))
		row := out.TimeSlice(s)
		for j := 0; j < n; j++ {
			row[j] = invB * phase[j] * coeff[j]
		}
	}

	return out, nil
}

// ToImFreq transforms g from the imaginary-time mesh back to its Matsubara
// dual, independently for every momentum/site point:
//
//	f(iω_n) = (β/N_τ)·Σ_j e^{+i ω_n τ_j} f(τ_j)
//
// The statistics of the time mesh is consulted for the boundary phase, so
// a bosonic object (such as the bubble) must arrive on a bosonic time mesh
// — reusing a fermionic one would shift every output frequency by π/β.
// Returns ErrTimeAxis unless g lives on a *mesh.ImTimeMesh, and
// ErrOddTimeMesh for an odd slice count.
func ToImFreq(g *gf.Gf) (*gf.Gf, error) {
	tm, ok := g.Time().(*mesh.ImTimeMesh)
	if !ok {
		return nil, fmt.Errorf("ToImFreq: axis %T: %w", g.Time(), ErrTimeAxis)
	}
	if tm.Len()%2 != 0 {
		return nil, fmt.Errorf("ToImFreq: %d slices: %w", tm.Len(), ErrOddTimeMesh)
	}

	var (
		n     = tm.Len()
		wm    = tm.Conjugate()
		plan  = dsp.NewCmplxFFT(n)
		phase = boundaryPhase(tm.Statistics(), n)
		prep  = make([]complex128, n)
		scale = complex(tm.Beta()/float64(n), 0)
	)

	out, err := gf.New(g.Space(), wm)
	if err != nil {
		return nil, fmt.Errorf("ToImFreq: %w", err)
	}

	for s := 0; s < g.Space().Len(); s++ {
		row := g.TimeSlice(s)
		// Undo the boundary phase before the plain DFT leg.
		for j := 0; j < n; j++ {
			prep[j] = row[j] * cmplx.Conj(phase[j])
		}
		dst := out.TimeSlice(s)
		plan.Sequence(dst, prep)
		for k := 0; k < n; k++ {
			dst[k] *= scale
		}
	}

	return out, nil
}

// boundaryPhase tabulates the per-slice phase that factors the
// statistics-aware exponent e^{−iω_n τ_j} into a plain DFT:
// (−1)^j for bosons, (−1)^j·e^{−iπj/N} for fermions.
func boundaryPhase(stat mesh.Statistics, n int) []complex128 {
	p := make([]complex128, n)
	for j := 0; j < n; j++ {
		v := complex(1, 0)
		if j%2 == 1 {
			v = -v
		}
		if stat == mesh.Fermion {
			v *= cmplx.Exp(complex(0, -math.Pi*float64(j)/float64(n)))
		}
		p[j] = v
	}

	return p
}

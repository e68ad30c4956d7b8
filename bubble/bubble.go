package bubble

import (
	"fmt"

	"github.com/avoskre/matsu/fourier"
	"github.com/avoskre/matsu/gf"
	"github.com/avoskre/matsu/mesh"
)

// Chi0 computes the particle-hole bubble χ0(q, iΩ) of a fermionic
// Green's function G0 given on a (momentum × Matsubara-frequency) product
// mesh. The four stages are
//
//  1. transform axis-by-axis to G0(r, τ);
//  2. build the reflected factor G0(−r, β−τ);
//  3. multiply pointwise: χ0(r, τ) = G0(r,τ)·G0(−r, β−τ);
//  4. transform forward to (q, iΩ) on a bosonic frequency window.
//
// The result lives on (KMesh × bosonic ImFreqMesh) with the same β and
// sizes as the input axes.
func Chi0(g0 *gf.Gf) (*gf.Gf, error) {
	if g0.Statistics() != mesh.Fermion {
		return nil, fmt.Errorf("Chi0: input is %v: %w", g0.Statistics(), gf.ErrStatistics)
	}

	// Stage 1: one axis at a time — momentum first, then frequency.
	grt, err := fourier.ToRealSpace(g0)
	if err != nil {
		return nil, fmt.Errorf("Chi0: %w", err)
	}
	if grt, err = fourier.ToImTime(grt); err != nil {
		return nil, fmt.Errorf("Chi0: %w", err)
	}

	return FromRealTime(grt)
}

// FromRealTime computes stages 2–4 of Chi0 given G0 already in the
// real-space / imaginary-time representation (as produced by
// fourier.ToRealSpace followed by fourier.ToImTime).
func FromRealTime(grt *gf.Gf) (*gf.Gf, error) {
	rm, ok := grt.Space().(*mesh.RMesh)
	if !ok {
		return nil, fmt.Errorf("FromRealTime: axis %T: %w", grt.Space(), fourier.ErrSpaceAxis)
	}
	tm, ok := grt.Time().(*mesh.ImTimeMesh)
	if !ok {
		return nil, fmt.Errorf("FromRealTime: axis %T: %w", grt.Time(), fourier.ErrTimeAxis)
	}
	if tm.Statistics() != mesh.Fermion {
		return nil, fmt.Errorf("FromRealTime: input is %v: %w", tm.Statistics(), gf.ErrStatistics)
	}

	// Stage 2: the reflected factor.
	refl, err := Reflect(grt)
	if err != nil {
		return nil, fmt.Errorf("FromRealTime: %w", err)
	}

	// Stage 3 + re-tag: χ0 is bosonic, so the product is laid onto a fresh
	// bosonic time mesh with the same β and slice count. Reusing the
	// fermionic mesh here would poison the backward transform.
	btm, err := mesh.NewImTimeMesh(tm.Beta(), mesh.Boson, tm.Len())
	if err != nil {
		return nil, fmt.Errorf("FromRealTime: %w", err)
	}
	chi, err := gf.New(rm, btm)
	if err != nil {
		return nil, fmt.Errorf("FromRealTime: %w", err)
	}
	for s := 0; s < rm.Len(); s++ {
		a, b, dst := grt.TimeSlice(s), refl.TimeSlice(s), chi.TimeSlice(s)
		for j := range dst {
			dst[j] = a[j] * b[j]
		}
	}

	// Stage 4: forward legs, real space → momentum then time → bosonic
	// frequency.
	chiq, err := fourier.ToMomentum(chi)
	if err != nil {
		return nil, fmt.Errorf("FromRealTime: %w", err)
	}
	out, err := fourier.ToImFreq(chiq)
	if err != nil {
		return nil, fmt.Errorf("FromRealTime: %w", err)
	}

	return out, nil
}

// Reflect builds the reflected function g(−r, β−τ) on the same product
// mesh as g. Site indices are negated componentwise modulo L; the time
// slice j maps to N−j, with the statistics boundary sign when j = 0 wraps
// β back onto the canonical τ = 0 sample. Every lookup lands exactly on a
// mesh point.
func Reflect(g *gf.Gf) (*gf.Gf, error) {
	rm, ok := g.Space().(*mesh.RMesh)
	if !ok {
		return nil, fmt.Errorf("Reflect: axis %T: %w", g.Space(), fourier.ErrSpaceAxis)
	}
	tm, ok := g.Time().(*mesh.ImTimeMesh)
	if !ok {
		return nil, fmt.Errorf("Reflect: axis %T: %w", g.Time(), fourier.ErrTimeAxis)
	}

	out, err := gf.New(rm, tm)
	if err != nil {
		return nil, fmt.Errorf("Reflect: %w", err)
	}
	for s := 0; s < rm.Len(); s++ {
		neg := rm.Negate(s)
		dst := out.TimeSlice(s)
		for j := 0; j < tm.Len(); j++ {
			jr, sign := tm.Reflect(j)
			dst[j] = sign * g.At(neg, jr)
		}
	}

	return out, nil
}

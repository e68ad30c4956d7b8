package pipeline

import (
	"errors"
	"fmt"

	"github.com/avoskre/matsu/bubble"
	"github.com/avoskre/matsu/fourier"
	"github.com/avoskre/matsu/gf"
	"github.com/avoskre/matsu/lattice"
	"github.com/avoskre/matsu/mesh"
	"github.com/avoskre/matsu/rpa"
)

// ErrBadParams indicates an invalid pipeline parameter.
var ErrBadParams = errors.New("pipeline: invalid parameters")

// Params fixes one run of the response pipeline.
//
// Fields:
//   - Beta — inverse temperature β > 0; sets the τ period and frequency
//     spacing of every temperature mesh.
//   - Mu   — chemical potential μ.
//   - T    — nearest-neighbor hopping amplitude t.
//   - NK   — momentum grid resolution per axis (NK×NK points), > 0.
//   - NW   — fermionic Matsubara half-window (2·NW frequencies), > 0.
//   - U    — Hubbard interaction strength for the RPA closure.
type Params struct {
	Beta float64
	Mu   float64
	T    float64
	NK   int
	NW   int
	U    float64
}

// DefaultParams returns the tutorial scenario: β=4, μ=0, t=−1 on a 64×64
// momentum grid with 2·20 Matsubara frequencies and U=2.
func DefaultParams() Params {
	return Params{Beta: 4.0, Mu: 0, T: -1.0, NK: 64, NW: 20, U: 2.0}
}

// Validate reports the first invalid field, wrapped in ErrBadParams.
func (p Params) Validate() error {
	if p.Beta <= 0 {
		return fmt.Errorf("Validate: Beta=%g must be positive: %w", p.Beta, ErrBadParams)
	}
	if p.NK <= 0 {
		return fmt.Errorf("Validate: NK=%d must be positive: %w", p.NK, ErrBadParams)
	}
	if p.NW <= 0 {
		return fmt.Errorf("Validate: NW=%d must be positive: %w", p.NW, ErrBadParams)
	}

	return nil
}

// Result collects every object produced by one run. The caller owns all
// of it; nothing is shared across runs.
type Result struct {
	Lattice *lattice.Lattice
	KMesh   *mesh.KMesh
	WMesh   *mesh.ImFreqMesh

	G0   *gf.Gf // G0(k, iω), fermionic
	G0rt *gf.Gf // G0(r, τ), fermionic
	Chi0 *gf.Gf // χ0(q, iΩ), bosonic
	Chi  *gf.Gf // χ_RPA(q, iΩ), bosonic
}

// Run executes dispersion → G0 → bubble → RPA for one parameter set.
// Strictly sequential, no branching; the first failing stage aborts.
func Run(p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	// Stage 1: lattice and meshes.
	res := &Result{Lattice: lattice.Square(p.T)}
	var err error
	if res.KMesh, err = mesh.NewKMesh(p.NK); err != nil {
		return nil, fmt.Errorf("Run: momentum mesh: %w", err)
	}
	if res.WMesh, err = mesh.NewImFreqMesh(p.Beta, mesh.Fermion, p.NW); err != nil {
		return nil, fmt.Errorf("Run: frequency mesh: %w", err)
	}

	// Stage 2: non-interacting Green's function.
	if res.G0, err = gf.G0(res.Lattice, res.KMesh, res.WMesh, p.Mu); err != nil {
		return nil, fmt.Errorf("Run: G0: %w", err)
	}

	// Stage 3: real-space / imaginary-time representation, kept for the
	// caller and reused by the bubble.
	if res.G0rt, err = fourier.ToRealSpace(res.G0); err != nil {
		return nil, fmt.Errorf("Run: G0(r,iω): %w", err)
	}
	if res.G0rt, err = fourier.ToImTime(res.G0rt); err != nil {
		return nil, fmt.Errorf("Run: G0(r,τ): %w", err)
	}

	// Stage 4: particle-hole bubble.
	if res.Chi0, err = bubble.FromRealTime(res.G0rt); err != nil {
		return nil, fmt.Errorf("Run: bubble: %w", err)
	}

	// Stage 5: RPA closure.
	if res.Chi, err = rpa.Chi(res.Chi0, p.U); err != nil {
		return nil, fmt.Errorf("Run: rpa: %w", err)
	}

	return res, nil
}

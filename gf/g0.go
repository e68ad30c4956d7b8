package gf

import (
	"fmt"

	"github.com/avoskre/matsu/lattice"
	"github.com/avoskre/matsu/mesh"
)

// G0 builds the non-interacting lattice Green's function
//
//	G0(k, iω) = 1 / (iω − ε(k) + μ)
//
// over the product of a momentum mesh and a fermionic Matsubara mesh.
// The dispersion ε(k) is evaluated once per momentum point.
// Returns ErrNilMesh for nil inputs and ErrStatistics when wm is bosonic:
// a single-particle propagator is a fermionic object.
func G0(lat *lattice.Lattice, km *mesh.KMesh, wm *mesh.ImFreqMesh, mu float64) (*Gf, error) {
	if lat == nil || km == nil || wm == nil {
		return nil, fmt.Errorf("G0: %w", ErrNilMesh)
	}
	if wm.Statistics() != mesh.Fermion {
		return nil, fmt.Errorf("G0: frequency mesh is %v: %w", wm.Statistics(), ErrStatistics)
	}

	g, err := New(km, wm)
	if err != nil {
		return nil, fmt.Errorf("G0: %w", err)
	}

	nw := wm.Len()
	for s := 0; s < km.Len(); s++ {
		kx, ky := km.Point(s)
		eps := complex(lat.Dispersion(kx, ky)-mu, 0)
		row := g.TimeSlice(s)
		for t := 0; t < nw; t++ {
			row[t] = 1 / (wm.Omega(t) - eps)
		}
	}

	return g, nil
}

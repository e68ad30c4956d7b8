package bubble

import (
	"fmt"

	"github.com/avoskre/matsu/gf"
	"github.com/avoskre/matsu/mesh"
)

// Direct evaluates the bubble at a single transfer (q, iΩ_m) by the
// brute-force momentum/frequency double sum
//
//	χ0(q, iΩ_m) = −(1/(β·N_k))·Σ_{k,n} G0(k, iω_n)·G0(k+q, iω_{n+m})
//
// with q given by its integer grid coordinates (qa, qb) and iΩ_m by the
// bosonic Matsubara index m. Internal frequencies whose shifted partner
// n+m falls outside the stored window are skipped, matching the truncated
// sum; at m = 0 this agrees with the transform route to rounding error.
//
// Direct exists as a reference oracle: O(N_k·N_ω) per output point, so use
// Chi0 for whole meshes.
func Direct(g0 *gf.Gf, qa, qb, m int) (complex128, error) {
	km, ok := g0.Space().(*mesh.KMesh)
	if !ok {
		return 0, fmt.Errorf("Direct: axis %T: %w", g0.Space(), gf.ErrMeshMismatch)
	}
	wm, ok := g0.Time().(*mesh.ImFreqMesh)
	if !ok {
		return 0, fmt.Errorf("Direct: axis %T: %w", g0.Time(), gf.ErrMeshMismatch)
	}
	if wm.Statistics() != mesh.Fermion {
		return 0, fmt.Errorf("Direct: input is %v: %w", wm.Statistics(), gf.ErrStatistics)
	}

	qidx := km.Index(qa, qb)
	var acc complex128
	for s := 0; s < km.Len(); s++ {
		kq := km.Add(s, qidx)
		for slot := 0; slot < wm.Len(); slot++ {
			shift, ok := wm.Slot(wm.MatsubaraIndex(slot) + m)
			if !ok {
				continue // outside the truncated window
			}
			acc += g0.At(s, slot) * g0.At(kq, shift)
		}
	}

	norm := complex(-1/(wm.Beta()*float64(km.Len())), 0)

	return norm * acc, nil
}

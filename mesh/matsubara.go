package mesh

import (
	"fmt"
	"math"
)

// ImFreqMesh is a symmetric window of Matsubara frequencies at inverse
// temperature β. It holds 2n points with integer Matsubara indices
// k = −n..n−1, stored in increasing order (slot s ↔ index k = s−n):
//
//	fermionic: ω_k = (2k+1)·π/β
//	bosonic:   Ω_k = 2k·π/β
//
// Both statistics carry the same point count so that the mesh has exactly
// the cardinality of its conjugate imaginary-time mesh and the discrete
// transform between them is exactly invertible. Immutable once built.
type ImFreqMesh struct {
	beta float64
	stat Statistics
	half int // half-window n; Len = 2n
}

// NewImFreqMesh builds a Matsubara-frequency mesh with half-window n.
// Returns ErrNonPositiveBeta when beta ≤ 0, ErrNonPositiveSize when n ≤ 0.
func NewImFreqMesh(beta float64, stat Statistics, n int) (*ImFreqMesh, error) {
	if beta <= 0 {
		return nil, fmt.Errorf("NewImFreqMesh: beta=%g: %w", beta, ErrNonPositiveBeta)
	}
	if n <= 0 {
		return nil, fmt.Errorf("NewImFreqMesh: n=%d: %w", n, ErrNonPositiveSize)
	}

	return &ImFreqMesh{beta: beta, stat: stat, half: n}, nil
}

// Beta reports the inverse temperature.
func (m *ImFreqMesh) Beta() float64 { return m.beta }

// Statistics reports the frequency parity of the mesh.
func (m *ImFreqMesh) Statistics() Statistics { return m.stat }

// Half reports the half-window n.
func (m *ImFreqMesh) Half() int { return m.half }

// Len reports the total number of frequencies (2n).
func (m *ImFreqMesh) Len() int { return 2 * m.half }

// MatsubaraIndex maps a storage slot s = 0..2n−1 to the integer Matsubara
// index k = s−n.
func (m *ImFreqMesh) MatsubaraIndex(slot int) int { return slot - m.half }

// Slot maps an integer Matsubara index k to its storage slot, reporting
// false when k lies outside the window −n..n−1.
func (m *ImFreqMesh) Slot(k int) (int, bool) {
	s := k + m.half
	if s < 0 || s >= m.Len() {
		return 0, false
	}

	return s, true
}

// Omega returns the purely imaginary frequency iω at a storage slot:
// i(2k+1)π/β for fermions, i·2kπ/β for bosons.
func (m *ImFreqMesh) Omega(slot int) complex128 {
	k := float64(m.MatsubaraIndex(slot))
	var w float64
	if m.stat == Fermion {
		w = (2*k + 1) * math.Pi / m.beta
	} else {
		w = 2 * k * math.Pi / m.beta
	}

	return complex(0, w)
}

// Conjugate returns the imaginary-time mesh dual to m: same β, same
// statistics, same number of points.
func (m *ImFreqMesh) Conjugate() *ImTimeMesh {
	return &ImTimeMesh{beta: m.beta, stat: m.stat, n: m.Len()}
}

// ImTimeMesh is a uniform grid of N imaginary-time slices on [0, β):
// τ_j = β·j/N for j = 0..N−1. τ = 0 is the canonical representative of the
// boundary orbit {0, β}; values at τ = β are recovered from τ = 0 via the
// statistics sign. The grid is symmetric under τ → β−τ: the reflected
// point is always itself a mesh point. Immutable once built.
type ImTimeMesh struct {
	beta float64
	stat Statistics
	n    int
}

// NewImTimeMesh builds an imaginary-time mesh with n slices.
// Returns ErrNonPositiveBeta when beta ≤ 0, ErrNonPositiveSize when n ≤ 0.
func NewImTimeMesh(beta float64, stat Statistics, n int) (*ImTimeMesh, error) {
	if beta <= 0 {
		return nil, fmt.Errorf("NewImTimeMesh: beta=%g: %w", beta, ErrNonPositiveBeta)
	}
	if n <= 0 {
		return nil, fmt.Errorf("NewImTimeMesh: n=%d: %w", n, ErrNonPositiveSize)
	}

	return &ImTimeMesh{beta: beta, stat: stat, n: n}, nil
}

// Beta reports the inverse temperature.
func (m *ImTimeMesh) Beta() float64 { return m.beta }

// Statistics reports the boundary condition of the mesh.
func (m *ImTimeMesh) Statistics() Statistics { return m.stat }

// Len reports the number of time slices.
func (m *ImTimeMesh) Len() int { return m.n }

// Tau returns the imaginary time of slice j: β·j/N.
func (m *ImTimeMesh) Tau(j int) float64 {
	return m.beta * float64(j) / float64(m.n)
}

// Reflect maps slice j to the slice holding β−τ_j, together with the
// boundary sign to apply to the stored value. For j > 0 the reflected
// point is the interior slice N−j with sign +1. For j = 0 the point β
// wraps onto the canonical τ = 0 slice and picks up the statistics sign:
// f(β) = −f(0) for fermions, f(β) = f(0) for bosons.
func (m *ImTimeMesh) Reflect(j int) (int, complex128) {
	if j == 0 {
		return 0, m.stat.Sign()
	}

	return m.n - j, 1
}

// Conjugate returns the Matsubara-frequency mesh dual to m: same β, same
// statistics, half-window N/2.
func (m *ImTimeMesh) Conjugate() *ImFreqMesh {
	return &ImFreqMesh{beta: m.beta, stat: m.stat, half: m.n / 2}
}

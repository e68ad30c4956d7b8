package mesh

import (
	"fmt"
	"math"
)

// Axis is the minimal interface shared by every mesh: the number of grid
// points it holds. Mesh-valued functions are sized from it.
type Axis interface {
	// Len reports the total number of grid points.
	Len() int
}

// TimeAxis is the interface shared by the two temperature-dependent meshes,
// ImFreqMesh and ImTimeMesh: they carry β and a statistics tag in addition
// to their size.
type TimeAxis interface {
	Axis
	// Beta reports the inverse temperature.
	Beta() float64
	// Statistics reports the boundary condition of the mesh.
	Statistics() Statistics
}

// KMesh is an L×L grid of momenta covering the first Brillouin zone of a
// 2D square lattice: k_{a,b} = (2π·a/L, 2π·b/L) for a, b in 0..L−1.
// Linear indices are row-major: idx = a·L + b. Immutable once built.
type KMesh struct {
	l int // points per axis
}

// NewKMesh builds an l×l momentum mesh.
// Returns ErrNonPositiveSize when l ≤ 0.
func NewKMesh(l int) (*KMesh, error) {
	if l <= 0 {
		return nil, fmt.Errorf("NewKMesh: l=%d: %w", l, ErrNonPositiveSize)
	}

	return &KMesh{l: l}, nil
}

// L reports the number of points per axis.
func (m *KMesh) L() int { return m.l }

// Len reports the total number of momentum points (L²).
func (m *KMesh) Len() int { return m.l * m.l }

// Index maps integer grid coordinates (a, b) to a linear index, wrapping
// each coordinate into the fundamental domain 0..L−1.
func (m *KMesh) Index(a, b int) int {
	a = wrap(a, m.l)
	b = wrap(b, m.l)

	return a*m.l + b
}

// Coords inverts Index: linear index → integer grid coordinates.
func (m *KMesh) Coords(idx int) (a, b int) {
	return idx / m.l, idx % m.l
}

// Point returns the momentum components (kx, ky) of a linear index,
// each in [0, 2π).
func (m *KMesh) Point(idx int) (kx, ky float64) {
	a, b := m.Coords(idx)

	return 2 * math.Pi * float64(a) / float64(m.l), 2 * math.Pi * float64(b) / float64(m.l)
}

// Negate returns the linear index of −k, wrapped back into the zone.
func (m *KMesh) Negate(idx int) int {
	a, b := m.Coords(idx)

	return m.Index(-a, -b)
}

// Add returns the linear index of k_i + k_j, wrapped back into the zone.
func (m *KMesh) Add(i, j int) int {
	ai, bi := m.Coords(i)
	aj, bj := m.Coords(j)

	return m.Index(ai+aj, bi+bj)
}

// Conjugate returns the Fourier-dual real-space mesh of the same size.
func (m *KMesh) Conjugate() *RMesh { return &RMesh{l: m.l} }

// RMesh is the real-space dual of a KMesh: an L×L grid of integer lattice
// sites r = (x, y), each coordinate taken modulo L. Linear indices are
// row-major: idx = x·L + y. Immutable once built.
type RMesh struct {
	l int // sites per axis
}

// NewRMesh builds an l×l real-space mesh.
// Returns ErrNonPositiveSize when l ≤ 0.
func NewRMesh(l int) (*RMesh, error) {
	if l <= 0 {
		return nil, fmt.Errorf("NewRMesh: l=%d: %w", l, ErrNonPositiveSize)
	}

	return &RMesh{l: l}, nil
}

// L reports the number of sites per axis.
func (m *RMesh) L() int { return m.l }

// Len reports the total number of lattice sites (L²).
func (m *RMesh) Len() int { return m.l * m.l }

// Index maps integer site coordinates (x, y) to a linear index, wrapping
// each coordinate into 0..L−1.
func (m *RMesh) Index(x, y int) int {
	x = wrap(x, m.l)
	y = wrap(y, m.l)

	return x*m.l + y
}

// Coords inverts Index: linear index → integer site coordinates.
func (m *RMesh) Coords(idx int) (x, y int) {
	return idx / m.l, idx % m.l
}

// Negate returns the linear index of −r, wrapped back into 0..L−1
// componentwise. r = 0 maps to itself.
func (m *RMesh) Negate(idx int) int {
	x, y := m.Coords(idx)

	return m.Index(-x, -y)
}

// Conjugate returns the Fourier-dual momentum mesh of the same size.
func (m *RMesh) Conjugate() *KMesh { return &KMesh{l: m.l} }

// wrap reduces v into 0..l−1 under periodic boundary conditions.
func wrap(v, l int) int {
	v %= l
	if v < 0 {
		v += l
	}

	return v
}

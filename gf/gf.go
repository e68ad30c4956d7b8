package gf

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/cmplxs"

	"github.com/avoskre/matsu/mesh"
)

var (
	// ErrNilMesh indicates a constructor received a nil axis mesh.
	ErrNilMesh = errors.New("gf: axis mesh must not be nil")
	// ErrMeshMismatch indicates a binary operation over functions whose
	// product meshes differ in shape, β or statistics.
	ErrMeshMismatch = errors.New("gf: product meshes do not match")
	// ErrStatistics indicates an operation received an object with the
	// wrong statistics tag.
	ErrStatistics = errors.New("gf: wrong statistics for operation")
)

// Gf is a dense complex-valued function over a (space × frequency/time)
// product mesh. The spatial axis is a *mesh.KMesh or *mesh.RMesh; the
// temperature axis is a *mesh.ImFreqMesh or *mesh.ImTimeMesh and carries
// β and the statistics tag. Values are stored flat, space index major:
// data[s·T + t].
type Gf struct {
	space mesh.Axis
	time  mesh.TimeAxis
	data  []complex128
}

// New returns a zero-filled Gf over the given product mesh.
// Returns ErrNilMesh when either axis is nil.
func New(space mesh.Axis, time mesh.TimeAxis) (*Gf, error) {
	if space == nil || time == nil {
		return nil, fmt.Errorf("New: %w", ErrNilMesh)
	}

	return &Gf{
		space: space,
		time:  time,
		data:  make([]complex128, space.Len()*time.Len()),
	}, nil
}

// Space returns the spatial axis mesh.
func (g *Gf) Space() mesh.Axis { return g.space }

// Time returns the temperature axis mesh.
func (g *Gf) Time() mesh.TimeAxis { return g.time }

// Beta reports the inverse temperature carried by the temperature axis.
func (g *Gf) Beta() float64 { return g.time.Beta() }

// Statistics reports the statistics tag carried by the temperature axis.
func (g *Gf) Statistics() mesh.Statistics { return g.time.Statistics() }

// At returns the value at spatial index s and temperature index t.
// Indexes are not wrapped; out-of-range access panics like a slice.
func (g *Gf) At(s, t int) complex128 {
	return g.data[s*g.time.Len()+t]
}

// Set stores v at spatial index s and temperature index t.
func (g *Gf) Set(s, t int, v complex128) {
	g.data[s*g.time.Len()+t] = v
}

// Data exposes the backing buffer, space index major. Mutating it mutates
// the function; transforms use this for axis-strided kernel calls.
func (g *Gf) Data() []complex128 { return g.data }

// TimeSlice returns the contiguous sub-slice of all temperature-axis
// values at spatial index s.
func (g *Gf) TimeSlice(s int) []complex128 {
	t := g.time.Len()

	return g.data[s*t : (s+1)*t]
}

// Clone returns a deep copy sharing no storage with g.
func (g *Gf) Clone() *Gf {
	cp := &Gf{
		space: g.space,
		time:  g.time,
		data:  make([]complex128, len(g.data)),
	}
	copy(cp.data, g.data)

	return cp
}

// Scale multiplies every stored value by c in place.
func (g *Gf) Scale(c complex128) {
	cmplxs.Scale(c, g.data)
}

// MulElem multiplies g elementwise by o in place.
// Returns ErrMeshMismatch unless both functions live on product meshes of
// identical shape, β and statistics.
func (g *Gf) MulElem(o *Gf) error {
	if err := sameShape(g, o); err != nil {
		return fmt.Errorf("MulElem: %w", err)
	}
	cmplxs.Mul(g.data, o.data)

	return nil
}

// sameShape verifies that two functions share axis sizes, β and statistics.
func sameShape(a, b *Gf) error {
	if a.space.Len() != b.space.Len() || a.time.Len() != b.time.Len() {
		return fmt.Errorf("size %dx%d vs %dx%d: %w",
			a.space.Len(), a.time.Len(), b.space.Len(), b.time.Len(), ErrMeshMismatch)
	}
	if a.Beta() != b.Beta() {
		return fmt.Errorf("beta %g vs %g: %w", a.Beta(), b.Beta(), ErrMeshMismatch)
	}
	if a.Statistics() != b.Statistics() {
		return fmt.Errorf("statistics %v vs %v: %w", a.Statistics(), b.Statistics(), ErrMeshMismatch)
	}

	return nil
}

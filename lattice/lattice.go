package lattice

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

var (
	// ErrEmptyHoppings indicates a hopping table with no entries.
	ErrEmptyHoppings = errors.New("lattice: hopping table must have at least one entry")
	// ErrNonHermitian indicates t_{−δ} ≠ conj(t_δ) for some displacement δ.
	ErrNonHermitian = errors.New("lattice: hopping table is not hermitian")
)

// hermTol bounds the acceptable |t_{−δ} − conj(t_δ)| at construction.
const hermTol = 1e-12

// Displacement is an integer lattice displacement vector (in units of the
// square-lattice unit vectors).
type Displacement [2]int

// Lattice is a 2D square lattice described by its hopping table: a map
// from integer displacement vectors to complex hopping amplitudes.
// Immutable once constructed.
type Lattice struct {
	hops map[Displacement]complex128
}

// New builds a Lattice from a hopping table. The table is copied, so the
// caller's map may be reused freely. Returns ErrEmptyHoppings for an empty
// table and ErrNonHermitian when t_{−δ} ≠ conj(t_δ) for any δ (a missing
// reverse entry counts as t_{−δ} = 0).
func New(hops map[Displacement]complex128) (*Lattice, error) {
	if len(hops) == 0 {
		return nil, fmt.Errorf("New: %w", ErrEmptyHoppings)
	}

	// Hermiticity guarantees a real band energy.
	for d, t := range hops {
		rev := Displacement{-d[0], -d[1]}
		if cmplx.Abs(hops[rev]-cmplx.Conj(t)) > hermTol {
			return nil, fmt.Errorf("New: displacement %v: %w", d, ErrNonHermitian)
		}
	}

	cp := make(map[Displacement]complex128, len(hops))
	for d, t := range hops {
		cp[d] = t
	}

	return &Lattice{hops: cp}, nil
}

// Square returns the nearest-neighbor square lattice with real hopping
// amplitude t on the four displacements (±1,0), (0,±1).
// Its dispersion is ε(k) = 2t·(cos kx + cos ky).
func Square(t float64) *Lattice {
	amp := complex(t, 0)
	l, err := New(map[Displacement]complex128{
		{1, 0}: amp, {-1, 0}: amp,
		{0, 1}: amp, {0, -1}: amp,
	})
	if err != nil {
		// Unreachable: the table above is non-empty and hermitian.
		panic(err)
	}

	return l
}

// Hoppings returns the number of entries in the hopping table.
func (l *Lattice) Hoppings() int { return len(l.hops) }

// Dispersion evaluates the band energy ε(k) = Σ_δ t_δ·e^{i k·δ} at the
// momentum point (kx, ky). Momenta are periodic with period 2π per axis,
// so callers may pass wrapped or unwrapped components. The hermiticity
// enforced at construction makes the imaginary part vanish; only the real
// band energy is returned.
func (l *Lattice) Dispersion(kx, ky float64) float64 {
	var eps complex128
	for d, t := range l.hops {
		phase := kx*float64(d[0]) + ky*float64(d[1])
		eps += t * cmplx.Exp(complex(0, phase))
	}

	return real(eps)
}

// DispersionMinMax scans an l×l momentum grid and reports the band
// minimum and maximum, a cheap bandwidth estimate for plotting ranges.
func (l *Lattice) DispersionMinMax(n int) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			e := l.Dispersion(2*math.Pi*float64(a)/float64(n), 2*math.Pi*float64(b)/float64(n))
			lo = math.Min(lo, e)
			hi = math.Max(hi, e)
		}
	}

	return lo, hi
}

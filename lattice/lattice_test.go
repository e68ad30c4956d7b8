package lattice_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoskre/matsu/lattice"
)

// TestNew_Validation verifies fail-fast construction of hopping tables.
func TestNew_Validation(t *testing.T) {
	_, err := lattice.New(nil)
	assert.ErrorIs(t, err, lattice.ErrEmptyHoppings, "empty table must be rejected")

	// (1,0) has no conjugate reverse entry.
	_, err = lattice.New(map[lattice.Displacement]complex128{
		{1, 0}: complex(1, 0),
	})
	assert.ErrorIs(t, err, lattice.ErrNonHermitian, "missing reverse hopping must be rejected")

	// Reverse entry present but not the conjugate.
	_, err = lattice.New(map[lattice.Displacement]complex128{
		{1, 0}:  complex(0, 1),
		{-1, 0}: complex(0, 1),
	})
	assert.ErrorIs(t, err, lattice.ErrNonHermitian, "non-conjugate reverse hopping must be rejected")
}

// TestNew_CopiesTable verifies the constructor does not alias the
// caller's map.
func TestNew_CopiesTable(t *testing.T) {
	hops := map[lattice.Displacement]complex128{
		{1, 0}: 1, {-1, 0}: 1,
	}
	lat, err := lattice.New(hops)
	require.NoError(t, err)

	hops[lattice.Displacement{1, 0}] = 99
	assert.InDelta(t, 2.0, lat.Dispersion(0, 0), 1e-15, "mutating the input map must not affect the lattice")
}

// TestSquare_Dispersion verifies the nearest-neighbor band
// ε(k) = 2t(cos kx + cos ky) at high-symmetry points.
func TestSquare_Dispersion(t *testing.T) {
	lat := lattice.Square(-1.0)
	require.Equal(t, 4, lat.Hoppings(), "nearest-neighbor table has four displacements")

	assert.InDelta(t, -4.0, lat.Dispersion(0, 0), 1e-12, "band bottom at Γ")
	assert.InDelta(t, 4.0, lat.Dispersion(math.Pi, math.Pi), 1e-12, "band top at M")
	assert.InDelta(t, 0.0, lat.Dispersion(math.Pi, 0), 1e-12, "van Hove point at X")
	assert.InDelta(t, 0.0, lat.Dispersion(math.Pi/2, math.Pi/2), 1e-12, "Fermi surface point on the zone diagonal")
}

// TestSquare_InversionSymmetry verifies ε(k) = ε(−k) over a grid, the
// symmetry behind G0(k,iω) = G0(−k,iω) at μ=0.
func TestSquare_InversionSymmetry(t *testing.T) {
	lat := lattice.Square(-1.0)
	const n = 12
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			kx := 2 * math.Pi * float64(a) / n
			ky := 2 * math.Pi * float64(b) / n
			assert.InDelta(t, lat.Dispersion(kx, ky), lat.Dispersion(-kx, -ky), 1e-12,
				"ε(k) must equal ε(−k)")
		}
	}
}

// TestDispersion_Periodicity verifies momenta may be passed wrapped or
// unwrapped.
func TestDispersion_Periodicity(t *testing.T) {
	lat := lattice.Square(0.5)
	assert.InDelta(t, lat.Dispersion(0.3, -0.7), lat.Dispersion(0.3+2*math.Pi, -0.7-4*math.Pi), 1e-12,
		"dispersion is 2π-periodic per axis")
}

// TestDispersionMinMax verifies the bandwidth scan against the known
// nearest-neighbor band edges ±4|t|.
func TestDispersionMinMax(t *testing.T) {
	lo, hi := lattice.Square(-1.0).DispersionMinMax(16)
	assert.InDelta(t, -4.0, lo, 1e-12, "band minimum is −4|t|")
	assert.InDelta(t, 4.0, hi, 1e-12, "band maximum is +4|t|")
}

package rpa_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoskre/matsu/gf"
	"github.com/avoskre/matsu/mesh"
	"github.com/avoskre/matsu/rpa"
)

// bosonic builds a small bosonic test function with the given values.
func bosonic(t *testing.T, vals ...complex128) *gf.Gf {
	t.Helper()

	km, err := mesh.NewKMesh(1)
	require.NoError(t, err)
	wm, err := mesh.NewImFreqMesh(1.0, mesh.Boson, (len(vals)+1)/2)
	require.NoError(t, err)
	g, err := gf.New(km, wm)
	require.NoError(t, err)
	copy(g.Data(), vals)

	return g
}

// TestChi_Statistics verifies fermionic input is rejected.
func TestChi_Statistics(t *testing.T) {
	km, err := mesh.NewKMesh(1)
	require.NoError(t, err)
	fm, err := mesh.NewImFreqMesh(1.0, mesh.Fermion, 1)
	require.NoError(t, err)
	g, err := gf.New(km, fm)
	require.NoError(t, err)

	_, err = rpa.Chi(g, 1.0)
	assert.ErrorIs(t, err, gf.ErrStatistics, "the closure is defined on the bosonic bubble")
	_, err = rpa.StonerDenominator(g, 1.0)
	assert.ErrorIs(t, err, gf.ErrStatistics, "the denominator is defined on the bosonic bubble")
}

// TestChi_FreeLimit verifies χ = 2χ0 exactly at U=0, pointwise.
func TestChi_FreeLimit(t *testing.T) {
	chi0 := bosonic(t, complex(0.3, 0.1), complex(-0.2, 0), complex(1.5, -0.4), complex(0, 0))

	chi, err := rpa.Chi(chi0, 0)
	require.NoError(t, err)

	for i, v := range chi0.Data() {
		assert.Equal(t, 2*v, chi.Data()[i], "U=0 must give exactly 2χ0 at point %d", i)
	}
}

// TestChi_Closure verifies the closure value at a generic point.
func TestChi_Closure(t *testing.T) {
	chi0 := bosonic(t, complex(0.25, 0), 0)

	chi, err := rpa.Chi(chi0, 2.0)
	require.NoError(t, err)

	// 2·0.25 / (1 − 2·0.25) = 1.
	assert.InDelta(t, 1.0, real(chi.Data()[0]), 1e-14, "closure value at χ0=1/4, U=2")
	assert.Equal(t, complex(0, 0), chi.Data()[1], "zero stays zero")
}

// TestChi_Singularity verifies a vanishing Stoner denominator produces an
// infinite value and no error — the instability is physics, not failure.
func TestChi_Singularity(t *testing.T) {
	chi0 := bosonic(t, complex(0.5, 0), complex(0.4999999, 0))

	chi, err := rpa.Chi(chi0, 2.0)
	require.NoError(t, err, "a singular point must not abort the run")

	assert.True(t, cmplx.IsInf(chi.Data()[0]), "Uχ0=1 maps to infinity")
	assert.Greater(t, real(chi.Data()[1]), 1e6, "near-singular points blow up but stay finite")

	// The input is untouched.
	assert.Equal(t, complex(0.5, 0), chi0.Data()[0], "χ0 is not mutated")
}

// TestStonerDenominator verifies 1 − U·χ0 pointwise.
func TestStonerDenominator(t *testing.T) {
	chi0 := bosonic(t, complex(0.25, 0), complex(0, 0.5))

	den, err := rpa.StonerDenominator(chi0, 2.0)
	require.NoError(t, err)

	assert.Equal(t, complex(0.5, 0), den.Data()[0], "1 − 2·0.25 = 0.5")
	assert.Equal(t, complex(1, -1), den.Data()[1], "1 − 2·(0.5i) = 1 − i")
}

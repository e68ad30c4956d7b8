package mesh_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoskre/matsu/mesh"
)

// TestNewKMesh_Validation verifies fail-fast construction for momentum
// and real-space meshes.
func TestNewKMesh_Validation(t *testing.T) {
	_, err := mesh.NewKMesh(0)
	assert.ErrorIs(t, err, mesh.ErrNonPositiveSize, "l=0 must be rejected")

	_, err = mesh.NewRMesh(-3)
	assert.ErrorIs(t, err, mesh.ErrNonPositiveSize, "negative l must be rejected")

	km, err := mesh.NewKMesh(4)
	require.NoError(t, err, "l=4 is a valid resolution")
	assert.Equal(t, 16, km.Len(), "4×4 mesh holds 16 points")
}

// TestKMesh_IndexWrap verifies periodic wrapping of grid coordinates into
// the fundamental domain.
func TestKMesh_IndexWrap(t *testing.T) {
	km, err := mesh.NewKMesh(4)
	require.NoError(t, err)

	assert.Equal(t, km.Index(1, 2), km.Index(5, -2), "coordinates wrap mod L")
	assert.Equal(t, km.Index(0, 0), km.Index(-4, 8), "multiples of L wrap to zero")

	a, b := km.Coords(km.Index(3, 1))
	assert.Equal(t, 3, a, "Coords inverts Index (first coordinate)")
	assert.Equal(t, 1, b, "Coords inverts Index (second coordinate)")
}

// TestKMesh_PointNegateAdd verifies momentum values, negation and
// addition land on exact mesh points.
func TestKMesh_PointNegateAdd(t *testing.T) {
	km, err := mesh.NewKMesh(8)
	require.NoError(t, err)

	kx, ky := km.Point(km.Index(4, 4))
	assert.InDelta(t, math.Pi, kx, 1e-15, "index L/2 is kx=π")
	assert.InDelta(t, math.Pi, ky, 1e-15, "index L/2 is ky=π")

	idx := km.Index(3, 5)
	assert.Equal(t, km.Index(-3, -5), km.Negate(idx), "Negate wraps componentwise")
	assert.Equal(t, idx, km.Negate(km.Negate(idx)), "Negate is an involution")

	sum := km.Add(km.Index(6, 7), km.Index(3, 2))
	assert.Equal(t, km.Index(1, 1), sum, "Add wraps back into the zone")
}

// TestRMesh_Negate verifies site negation, including the fixed point r=0.
func TestRMesh_Negate(t *testing.T) {
	rm, err := mesh.NewRMesh(6)
	require.NoError(t, err)

	assert.Equal(t, 0, rm.Negate(0), "r=0 maps to itself")
	assert.Equal(t, rm.Index(4, 1), rm.Negate(rm.Index(2, 5)), "−(2,5) = (4,1) mod 6")
}

// TestConjugate_SpacePair verifies the momentum↔real-space dual pairing
// preserves the resolution in both directions.
func TestConjugate_SpacePair(t *testing.T) {
	km, err := mesh.NewKMesh(10)
	require.NoError(t, err)

	rm := km.Conjugate()
	assert.Equal(t, km.Len(), rm.Len(), "dual mesh has the same cardinality")
	assert.Equal(t, km.L(), rm.Conjugate().L(), "double dual restores the mesh")
}

// TestNewImFreqMesh_Validation verifies β and size fail-fast checks.
func TestNewImFreqMesh_Validation(t *testing.T) {
	_, err := mesh.NewImFreqMesh(0, mesh.Fermion, 4)
	assert.ErrorIs(t, err, mesh.ErrNonPositiveBeta, "β=0 must be rejected")

	_, err = mesh.NewImFreqMesh(-1, mesh.Boson, 4)
	assert.ErrorIs(t, err, mesh.ErrNonPositiveBeta, "β<0 must be rejected")

	_, err = mesh.NewImFreqMesh(2, mesh.Fermion, 0)
	assert.ErrorIs(t, err, mesh.ErrNonPositiveSize, "n=0 must be rejected")
}

// TestImFreqMesh_Frequencies verifies fermionic frequencies are odd and
// bosonic frequencies even multiples of π/β, on the slot↔index map.
func TestImFreqMesh_Frequencies(t *testing.T) {
	const beta = 2.0

	fm, err := mesh.NewImFreqMesh(beta, mesh.Fermion, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, fm.Len(), "half-window 3 holds 6 frequencies")
	assert.Equal(t, -3, fm.MatsubaraIndex(0), "first slot is index −n")

	slot, ok := fm.Slot(0)
	require.True(t, ok, "index 0 lies inside the window")
	assert.Equal(t, complex(0, math.Pi/beta), fm.Omega(slot), "fermionic ω_0 = π/β")

	_, ok = fm.Slot(3)
	assert.False(t, ok, "index n is outside the window")

	bm, err := mesh.NewImFreqMesh(beta, mesh.Boson, 3)
	require.NoError(t, err)
	slot, ok = bm.Slot(0)
	require.True(t, ok)
	assert.Equal(t, complex(0, 0), bm.Omega(slot), "bosonic Ω_0 = 0")
	slot, ok = bm.Slot(1)
	require.True(t, ok)
	assert.Equal(t, complex(0, 2*math.Pi/beta), bm.Omega(slot), "bosonic Ω_1 = 2π/β")
}

// TestImTimeMesh_TauAndReflect verifies the τ grid and the β−τ reflection
// convention, including the statistics sign on the τ=0 wrap.
func TestImTimeMesh_TauAndReflect(t *testing.T) {
	const beta = 4.0

	tm, err := mesh.NewImTimeMesh(beta, mesh.Fermion, 8)
	require.NoError(t, err)

	assert.Equal(t, 0.0, tm.Tau(0), "first slice is τ=0")
	assert.InDelta(t, beta/2, tm.Tau(4), 1e-15, "middle slice is τ=β/2")

	j, sign := tm.Reflect(3)
	assert.Equal(t, 5, j, "β−τ_3 is slice 5")
	assert.Equal(t, complex(1, 0), sign, "interior reflection has no sign")

	j, sign = tm.Reflect(0)
	assert.Equal(t, 0, j, "β wraps onto the canonical τ=0 slice")
	assert.Equal(t, complex(-1, 0), sign, "fermionic wrap flips the sign")

	bm, err := mesh.NewImTimeMesh(beta, mesh.Boson, 8)
	require.NoError(t, err)
	_, sign = bm.Reflect(0)
	assert.Equal(t, complex(1, 0), sign, "bosonic wrap keeps the sign")
}

// TestConjugate_TimePair verifies frequency↔time duals share β,
// statistics and cardinality.
func TestConjugate_TimePair(t *testing.T) {
	fm, err := mesh.NewImFreqMesh(1.5, mesh.Fermion, 8)
	require.NoError(t, err)

	tm := fm.Conjugate()
	assert.Equal(t, fm.Len(), tm.Len(), "dual time mesh has the same cardinality")
	assert.Equal(t, fm.Beta(), tm.Beta(), "dual time mesh keeps β")
	assert.Equal(t, mesh.Fermion, tm.Statistics(), "dual time mesh keeps statistics")
	assert.Equal(t, fm.Half(), tm.Conjugate().Half(), "double dual restores the window")
}

// TestStatistics verifies the boundary signs and names.
func TestStatistics(t *testing.T) {
	assert.Equal(t, complex(-1, 0), mesh.Fermion.Sign(), "fermions are antiperiodic")
	assert.Equal(t, complex(1, 0), mesh.Boson.Sign(), "bosons are periodic")
	assert.Equal(t, "Fermion", mesh.Fermion.String())
	assert.Equal(t, "Boson", mesh.Boson.String())
}

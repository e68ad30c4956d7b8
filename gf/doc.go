// Package gf implements dense mesh-valued functions — "Green's function
// objects" — over a (space × frequency/time) product mesh, and builds the
// non-interacting lattice Green's function G0.
//
// What:
//
//   - Gf — a complex-valued function sampled on the Cartesian product of a
//     spatial axis (KMesh or RMesh) and a temperature axis (ImFreqMesh or
//     ImTimeMesh). Values live in one flat row-major []complex128 buffer,
//     space index major.
//   - G0(lat, km, wm, mu) — fills G0(k,iω) = 1/(iω − ε(k) + μ) from a
//     lattice dispersion on a fermionic frequency mesh.
//   - Elementwise algebra: MulElem, Scale, Clone (gonum/cmplxs kernels).
//
// Why:
//
//   - Every pipeline stage (transform, bubble, RPA) is either a pointwise
//     map or an axis-wise transform of one of these containers; a single
//     dense representation keeps all of them allocation-simple loops.
//
// Invariants:
//
//   - The statistics tag and β of the temperature axis travel with the
//     object; binary operations require identical axis shapes, β and
//     statistics (ErrMeshMismatch otherwise).
//   - Axis meshes are immutable; only stored values change, and only
//     during construction of a pipeline stage.
//
// Errors:
//
//   - ErrNilMesh: a constructor received a nil axis.
//   - ErrMeshMismatch: binary operation over incompatible product meshes.
//   - ErrStatistics: an operation requiring a specific statistics tag
//     (e.g. fermionic input to G0) received the other one.
package gf

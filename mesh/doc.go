// Package mesh defines the discrete domains on which every matsu object
// lives: Brillouin-zone momentum grids, their real-space duals, Matsubara
// frequency windows and imaginary-time slices.
//
// What:
//
//   - KMesh   — an L×L grid of momenta k = (2π·a/L, 2π·b/L) over the BZ.
//   - RMesh   — the conjugate L×L grid of integer lattice sites (mod L).
//   - ImFreqMesh — 2n Matsubara frequencies, indices −n..n−1;
//     ω_k = (2k+1)π/β for fermions, Ω_k = 2kπ/β for bosons.
//   - ImTimeMesh — 2n imaginary-time slices τ_j = β·j/(2n) on [0, β).
//   - Conjugate() on each mesh returns its discrete Fourier dual with the
//     same β, size and statistics, so transform legs can never disagree
//     about the target domain.
//
// Why:
//
//   - Finite-temperature correlators are periodic (bosons) or antiperiodic
//     (fermions) in imaginary time with period β; the mesh carries that
//     Statistics tag explicitly so that transforms and algebra can refuse
//     to mix them.
//   - Both frequency windows hold exactly as many points as their conjugate
//     time mesh, which makes every transform an exact, invertible DFT.
//
// Conventions:
//
//   - τ = 0 is the canonical representative of the boundary orbit {0, β}:
//     Reflect maps τ_j → β−τ_j, and for j = 0 the reflected point wraps back
//     to τ = 0 carrying the statistics sign (−1 fermionic, +1 bosonic).
//   - Momentum and site indices wrap modulo L; Negate and Add land on exact
//     mesh points by construction.
//
// Errors:
//
//   - ErrNonPositiveBeta: β ≤ 0 at mesh construction.
//   - ErrNonPositiveSize: grid resolution or frequency count ≤ 0.
//
// All meshes are immutable once constructed.
package mesh

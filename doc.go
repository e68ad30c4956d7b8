// Package matsu is a small toolkit for finite-temperature lattice
// response — from tight-binding dispersions and Matsubara Green's
// functions to the particle-hole bubble and the RPA susceptibility.
//
// 🚀 What is matsu?
//
//	A batch-oriented, deterministic library for the 2D Hubbard model
//	on a square lattice that brings together:
//		• Lattices: hopping tables & tight-binding dispersions ε(k)
//		• Meshes: momentum, real-space, Matsubara-frequency, imaginary-time
//		• Green's functions: dense complex functions over product meshes
//		• Transforms: exact axis-wise DFTs between conjugate meshes
//		• Bubble: χ0 via the real-space/imaginary-time convolution route
//		• RPA: the geometric-series closure χ = 2χ0/(1 − U·χ0)
//
// ✨ Why choose matsu?
//
//   - Explicit statistics – fermionic/bosonic tags travel with every object,
//     so a silently mixed transform is impossible
//   - Exact round trips – forward/backward transforms invert to rounding error
//   - Fail-fast configuration – β ≤ 0 or mismatched meshes abort immediately
//   - Pure batch model – one run, one owner, no shared mutable state
//
// Under the hood, everything is organized per concern:
//
//	lattice/  — hopping tables and the dispersion evaluator
//	mesh/     — mesh construction, conjugate pairing, statistics tags
//	gf/       — mesh-valued functions and the non-interacting G0
//	fourier/  — momentum↔real-space and frequency↔time transforms
//	bubble/   — the particle-hole bubble χ0 (plus a brute-force oracle)
//	rpa/      — the RPA closure and Stoner denominator
//	pipeline/ — the parameters → dispersion → G0 → χ0 → χ driver
//	render/   — heatmaps and Brillouin-zone path plots (gonum/plot)
//
// Quick pipeline sketch:
//
//	params ──► ε(k) ──► G0(k,iω) ──► G0(r,τ) ──► χ0(r,τ) ──► χ0(q,iΩ) ──► χ_RPA
//
// Dive into cmd/hubbard-rpa for a runnable tutorial reproducing the
// classic β=4, t=−1 square-lattice scenario.
//
//	go get github.com/avoskre/matsu
package matsu

// Package bubble evaluates the non-interacting particle-hole response
// (the Lindhard "bubble") of a lattice Green's function:
//
//	χ0(q, iΩ) = −(1/(β·N_k))·Σ_{k,n} G0(k, iω_n)·G0(k+q, iω_n+iΩ)
//
// computed through the equivalent and far cheaper real-space /
// imaginary-time route:
//
//	χ0(r, τ) = G0(r, τ) · G0(−r, β−τ)
//
// followed by forward transforms back to (q, iΩ).
//
// What:
//
//   - Chi0 — the full route: G0(k,iω) → G0(r,τ) → χ0(r,τ) → χ0(q,iΩ).
//   - FromRealTime — steps 2–4 when G0(r,τ) is already at hand.
//   - Reflect — the reflected factor G0(−r, β−τ) as a standalone object.
//   - Direct — the brute-force momentum/frequency double sum at a single
//     (q, iΩ) point, the reference oracle for the transform route.
//
// The construction of the reflected factor is pure index bookkeeping:
// every queried point (−r, β−τ) lands exactly on a mesh sample (−r wraps
// componentwise; β−τ_j is the slice N−j, with the fermionic boundary sign
// when j = 0 wraps onto τ = 0). No interpolation ever happens.
//
// χ0 is a two-fermion object and therefore bosonic: the product χ0(r,τ)
// is laid onto a freshly built bosonic time mesh (same β, same slice
// count) before the backward frequency transform. The −1/β prefactor of
// the double-sum definition emerges from fermionic antiperiodicity
// (e^{−iωβ} = −1) during that transform; no explicit sign is applied.
//
// Errors: non-fermionic input, wrong axis kinds and mesh mismatches fail
// fast with wrapped sentinel errors from gf and fourier.
//
// Complexity: Chi0 is O(N_k·N_ω·log N) via the FFT legs plus O(N_k·N_ω)
// pointwise work; Direct is O(N_k·N_ω) for a single output point.
package bubble

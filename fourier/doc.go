// Package fourier converts mesh-valued functions between conjugate mesh
// pairs — momentum ↔ real space and Matsubara frequency ↔ imaginary time —
// one axis at a time, as exact discrete Fourier transforms.
//
// What:
//
//   - ToRealSpace / ToMomentum — 2D DFT over the spatial axis, applied
//     independently for every frequency/time point.
//   - ToImTime / ToImFreq — 1D DFT over the temperature axis, applied
//     independently for every momentum/site point, statistics-aware: the
//     fermionic half-step phase e^{−iπj/N} encodes antiperiodicity.
//
// Conventions (forward/backward consistent, round trips exact):
//
//	k → r:  f(r)   = (1/N_k)·Σ_k e^{+i k·r} f(k)
//	r → k:  f(k)   =         Σ_r e^{−i k·r} f(r)
//	iω → τ: f(τ)   =  (1/β)·Σ_n e^{−i ω_n τ} f(iω_n)
//	τ → iω: f(iω)  = (β/N_τ)·Σ_j e^{+i ω τ_j} f(τ_j)
//
// Every leg reduces to a gonum dsp/fourier plan (Coefficients/Sequence)
// after factoring out the statistics phase, so transforming forward and
// then backward reproduces the input to rounding error. The output mesh is
// always the Conjugate() of the transformed axis: statistics, β and size
// can never drift between the function and its domain.
//
// Errors:
//
//   - ErrSpaceAxis: the spatial axis is not the expected mesh kind.
//   - ErrTimeAxis: the temperature axis is not the expected mesh kind.
//   - ErrOddTimeMesh: an imaginary-time axis with an odd number of slices,
//     which has no symmetric frequency window.
//
// Complexity: O(N_space·N_time·log N) per call; memory O(N) scratch.
package fourier

// Package pipeline sequences the full Hubbard-model response computation
// for one parameter set, replacing notebook cell state with explicit
// inputs and outputs:
//
//	Params ──► ε(k) ──► G0(k,iω) ──► G0(r,τ) ──► χ0(q,iΩ) ──► χ_RPA(q,iΩ)
//
// What:
//
//   - Params — {β, μ, t, n_k, n_iw, U} with fail-fast Validate.
//   - Run — builds the lattice and meshes, then drives
//     gf.G0 → bubble → rpa with no branching or retries; the first error
//     aborts the run.
//   - Result — every intermediate object of the run (meshes, G0 in both
//     representations, χ0, χ), owned by the caller for the run's lifetime.
//
// The computation is single-threaded and deterministic: identical Params
// always produce identical Results.
//
// Errors: ErrBadParams wraps each invalid field; construction errors from
// the stage packages propagate wrapped with the stage name.
package pipeline

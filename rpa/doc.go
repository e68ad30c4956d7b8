// Package rpa applies the random-phase-approximation closure to a
// particle-hole bubble:
//
//	χ_RPA(q, iΩ) = 2·χ0(q, iΩ) / (1 − U·χ0(q, iΩ))
//
// evaluated pointwise over the product mesh (the factor 2 counts the two
// spin species).
//
// A vanishing denominator signals the approach to a magnetic or charge
// instability. That is expected physics, not a failure: zero denominators
// produce an infinite complex value (cmplx.Inf) and near-zero ones produce
// very large magnitudes, both propagated for downstream inspection.
// StonerDenominator exposes 1 − U·χ0 itself for locating the leading
// instability.
//
// Errors: fermionic input is rejected with gf.ErrStatistics — the closure
// is defined on the bosonic bubble only.
package rpa

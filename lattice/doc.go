// Package lattice defines 2D square-lattice hopping tables and evaluates
// the tight-binding dispersion ε(k) = Σ_δ t_δ·e^{i k·δ} over them.
//
// What:
//
//   - Lattice — an immutable hopping table mapping integer displacement
//     vectors δ to complex hopping amplitudes t_δ.
//   - Square(t) — the nearest-neighbor table {(±1,0), (0,±1)} with
//     amplitude t, giving ε(k) = 2t·(cos kx + cos ky).
//   - Dispersion(kx, ky) — the band energy at a momentum point.
//
// Why:
//
//   - The dispersion is the only lattice-dependent input to the
//     non-interacting Green's function G0(k,iω) = 1/(iω − ε(k) + μ).
//
// Errors:
//
//   - ErrEmptyHoppings: the hopping table has no entries.
//   - ErrNonHermitian: t_{−δ} ≠ conj(t_δ) for some δ, which would produce
//     a complex band energy.
//
// Complexity: Dispersion is O(|hoppings|) per momentum point.
package lattice

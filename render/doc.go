// Package render plots static (iΩ = 0) susceptibility slices with
// gonum/plot. It is a pure sink: it consumes bosonic mesh-valued
// functions and writes image files, feeding nothing back into the
// computation.
//
// What:
//
//   - StaticHeatmap — heatmap of Re χ(q, iΩ=0) over the full Brillouin
//     zone, axes in units of π.
//   - StaticPath — line plot of Re χ(q, iΩ=0) along the high-symmetry
//     path Γ → X → M → Γ.
//
// Near an RPA instability the static susceptibility contains very large
// or infinite values; non-finite samples are clamped to the largest
// finite magnitude on the slice so the color and axis scales stay usable.
//
// Errors: non-bosonic input, a non-momentum spatial axis, or a frequency
// window without the iΩ = 0 point fail fast; file I/O errors propagate
// from gonum/plot Save.
package render

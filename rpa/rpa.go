package rpa

import (
	"fmt"
	"math/cmplx"

	"github.com/avoskre/matsu/gf"
	"github.com/avoskre/matsu/mesh"
)

// Chi evaluates the RPA susceptibility 2·χ0/(1 − U·χ0) pointwise on the
// product mesh of chi0. Singular points (denominator exactly zero) are
// stored as cmplx.Inf and near-singular ones as large finite values; both
// are valid output. Returns gf.ErrStatistics for a fermionic input.
func Chi(chi0 *gf.Gf, u float64) (*gf.Gf, error) {
	if chi0.Statistics() != mesh.Boson {
		return nil, fmt.Errorf("Chi: input is %v: %w", chi0.Statistics(), gf.ErrStatistics)
	}

	var (
		uc  = complex(u, 0)
		out = chi0.Clone()
		d   = out.Data()
	)
	for i, v := range d {
		den := 1 - uc*v
		if den == 0 {
			d[i] = cmplx.Inf()
			continue
		}
		d[i] = 2 * v / den
	}

	return out, nil
}

// StonerDenominator evaluates 1 − U·χ0 pointwise. Its smallest real part
// over the static (iΩ = 0) slice locates the leading RPA instability.
// Returns gf.ErrStatistics for a fermionic input.
func StonerDenominator(chi0 *gf.Gf, u float64) (*gf.Gf, error) {
	if chi0.Statistics() != mesh.Boson {
		return nil, fmt.Errorf("StonerDenominator: input is %v: %w", chi0.Statistics(), gf.ErrStatistics)
	}

	var (
		uc  = complex(u, 0)
		out = chi0.Clone()
		d   = out.Data()
	)
	for i, v := range d {
		d[i] = 1 - uc*v
	}

	return out, nil
}

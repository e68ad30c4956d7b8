package render

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/avoskre/matsu/gf"
	"github.com/avoskre/matsu/mesh"
)

var (
	// ErrNotStatic indicates the frequency window of the input does not
	// contain the iΩ = 0 point.
	ErrNotStatic = errors.New("render: frequency mesh has no static point")
	// ErrAxes indicates the input does not live on a momentum × bosonic
	// frequency product mesh.
	ErrAxes = errors.New("render: expected momentum × bosonic frequency axes")
)

// StaticHeatmap writes a heatmap of Re χ(q, iΩ=0) over the Brillouin zone
// to file (format chosen by extension, e.g. .png or .pdf).
func StaticHeatmap(chi *gf.Gf, file string) error {
	vals, km, err := staticSlice(chi)
	if err != nil {
		return fmt.Errorf("StaticHeatmap: %w", err)
	}

	p := plot.New()
	p.Title.Text = "static susceptibility"
	p.X.Label.Text = "qx / π"
	p.Y.Label.Text = "qy / π"

	grid := &bzGrid{vals: vals, l: km.L()}
	p.Add(plotter.NewHeatMap(grid, moreland.SmoothBlueRed().Palette(255)))

	if err := p.Save(14*vg.Centimeter, 12*vg.Centimeter, file); err != nil {
		return fmt.Errorf("StaticHeatmap: %w", err)
	}

	return nil
}

// StaticPath writes a line plot of Re χ(q, iΩ=0) along the high-symmetry
// path Γ → X → M → Γ to file. The momentum grid must have an even number
// of points per axis so X = (π, 0) and M = (π, π) are exact grid points.
func StaticPath(chi *gf.Gf, file string) error {
	vals, km, err := staticSlice(chi)
	if err != nil {
		return fmt.Errorf("StaticPath: %w", err)
	}
	l := km.L()
	if l%2 != 0 {
		return fmt.Errorf("StaticPath: %d points per axis: %w", l, ErrAxes)
	}

	var (
		half = l / 2
		pts  plotter.XYs
		x    float64
	)
	step := func(a, b int) {
		pts = append(pts, plotter.XY{X: x, Y: vals[km.Index(a, b)]})
		x++
	}
	for a := 0; a < half; a++ { // Γ → X
		step(a, 0)
	}
	for b := 0; b < half; b++ { // X → M
		step(half, b)
	}
	for c := half; c > 0; c-- { // M → Γ
		step(c, c)
	}
	step(0, 0) // close at Γ

	p := plot.New()
	p.Title.Text = "static susceptibility along Γ–X–M–Γ"
	p.Y.Label.Text = "Re χ(q, 0)"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("StaticPath: %w", err)
	}
	p.Add(line, plotter.NewGrid())

	if err := p.Save(16*vg.Centimeter, 10*vg.Centimeter, file); err != nil {
		return fmt.Errorf("StaticPath: %w", err)
	}

	return nil
}

// staticSlice extracts Re χ(q, iΩ=0) for every momentum point, clamping
// non-finite samples to the largest finite magnitude on the slice.
func staticSlice(chi *gf.Gf) ([]float64, *mesh.KMesh, error) {
	km, ok := chi.Space().(*mesh.KMesh)
	if !ok {
		return nil, nil, fmt.Errorf("axis %T: %w", chi.Space(), ErrAxes)
	}
	wm, ok := chi.Time().(*mesh.ImFreqMesh)
	if !ok || wm.Statistics() != mesh.Boson {
		return nil, nil, fmt.Errorf("axis %T: %w", chi.Time(), ErrAxes)
	}
	slot, ok := wm.Slot(0)
	if !ok {
		return nil, nil, ErrNotStatic
	}

	vals := make([]float64, km.Len())
	finite := make([]float64, 0, km.Len())
	for s := range vals {
		vals[s] = real(chi.At(s, slot))
		if !math.IsInf(vals[s], 0) && !math.IsNaN(vals[s]) {
			finite = append(finite, math.Abs(vals[s]))
		}
	}

	// Saturate singular samples so plot scales stay finite.
	clamp := 1.0
	if len(finite) > 0 {
		clamp = floats.Max(finite)
	}
	for s, v := range vals {
		switch {
		case math.IsNaN(v), math.IsInf(v, 1):
			vals[s] = clamp
		case math.IsInf(v, -1):
			vals[s] = -clamp
		}
	}

	return vals, km, nil
}

// bzGrid adapts a static slice to plotter.GridXYZ, with momentum axes in
// units of π.
type bzGrid struct {
	vals []float64
	l    int
}

func (g *bzGrid) Dims() (c, r int)   { return g.l, g.l }
func (g *bzGrid) Z(c, r int) float64 { return g.vals[c*g.l+r] }
func (g *bzGrid) X(c int) float64    { return 2 * float64(c) / float64(g.l) }
func (g *bzGrid) Y(r int) float64    { return 2 * float64(r) / float64(g.l) }

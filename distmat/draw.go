// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

package distmat

import (
	"fmt"
	"image/color"

	"github.com/js-arias/blind"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// A distGrid serves a distance matrix
// as a grid for a heat map,
// with the first label
// at the top-left corner.
type distGrid struct {
	m *Matrix
}

func (g distGrid) Dims() (c, r int) {
	return g.m.Len(), g.m.Len()
}

func (g distGrid) Z(c, r int) float64 {
	return g.m.d.At(c, g.m.Len()-1-r)
}

func (g distGrid) X(c int) float64 { return float64(c) }
func (g distGrid) Y(r int) float64 { return float64(r) }

// A gradient is a color palette
// built from a color blind friendly gradient.
type gradient struct {
	colors int
}

func (g gradient) Colors() []color.Color {
	cs := make([]color.Color, g.colors)
	for i := range cs {
		cs[i] = blind.Gradient(float64(i) / float64(g.colors-1))
	}
	return cs
}

// Draw renders the distance matrix
// as a heat map
// and saves it as a PNG file.
func (m *Matrix) Draw(name string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%d sequences", m.Len())
	p.HideAxes()

	hm := plotter.NewHeatMap(distGrid{m: m}, palette.Palette(gradient{colors: 256}))
	p.Add(hm)

	size := vg.Length(m.Len()) * vg.Points(4)
	if size < 4*vg.Inch {
		size = 4 * vg.Inch
	}
	if err := p.Save(size, size, name); err != nil {
		return fmt.Errorf("while saving %q: %v", name, err)
	}
	return nil
}

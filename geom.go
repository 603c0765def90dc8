package bars

import (
	"math"
)

// Layout selects which axis carries the value of a bar: an horizontal
// layout grows its bars along Y, a vertical layout along X.
type Layout int

const (
	LayoutHorizontal Layout = iota
	LayoutVertical
)

func (l Layout) String() string {
	if l == LayoutVertical {
		return "vertical"
	}
	return "horizontal"
}

// DataItem is one record of a serie. Positional fields are expected to
// be already scaled to the target coordinate space; scale computation
// happens outside the engine.
type DataItem struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Value  float64
	Label  string

	// Background, when set, positions the companion rectangle of the
	// item independently of its computed geometry.
	Background *Geometry
}

// Geometry is a rectangle in the target coordinate space. Width and
// Height are never negative once resolved.
type Geometry struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (g Geometry) Empty() bool {
	return g.Width <= 0 || g.Height <= 0
}

func (g Geometry) wellformed() bool {
	return finite(g.X) && finite(g.Y) && finite(g.Width) && finite(g.Height)
}

// ResolveGeometry gives one rectangle per item, same order and same
// count. An empty input yields an empty sequence. Records with broken
// numeric fields degrade to a zero sized rectangle instead of aborting
// the serie.
func ResolveGeometry(items []DataItem) []Geometry {
	if len(items) == 0 {
		return nil
	}
	all := make([]Geometry, 0, len(items))
	for _, it := range items {
		all = append(all, resolveItem(it))
	}
	return all
}

func resolveItem(it DataItem) Geometry {
	if !finite(it.X) || !finite(it.Y) {
		return Geometry{}
	}
	g := Geometry{
		X:      it.X,
		Y:      it.Y,
		Width:  it.Width,
		Height: it.Height,
	}
	if !finite(g.Width) || !finite(g.Height) {
		g.Width = 0
		g.Height = 0
		return g
	}
	if g.Width < 0 {
		g.X += g.Width
		g.Width = -g.Width
	}
	if g.Height < 0 {
		g.Y += g.Height
		g.Height = -g.Height
	}
	return g
}

// labelAnchor is the default label position of a bar: midpoint of the
// cross axis, far edge of the value axis.
func (l Layout) labelAnchor(g Geometry) (float64, float64) {
	if l == LayoutVertical {
		return g.X + g.Width, g.Y + g.Height/2
	}
	return g.X + g.Width/2, g.Y
}

// nearAnchor keeps the cross axis midpoint but takes the value axis
// edge closest to the bar origin.
func (l Layout) nearAnchor(g Geometry) (float64, float64) {
	if l == LayoutVertical {
		return g.X, g.Y + g.Height/2
	}
	return g.X + g.Width/2, g.Y + g.Height
}

func (l Layout) crossExtent(g Geometry) float64 {
	if l == LayoutVertical {
		return g.Height
	}
	return g.Width
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

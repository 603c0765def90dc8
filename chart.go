package bars

import (
	"bufio"
	"io"

	"github.com/midbel/svg"
)

const FontSize = 12.0

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Chart is the hosting container. It decides once per render pass,
// from its own kind, whether bar series render at all: a kind outside
// the allow list drops every serie silently, legend included.
type Chart struct {
	Title  string
	Kind   ChartKind
	Width  float64
	Height float64

	Padding

	Legend struct {
		Title  string
		Orient Orientation
	}
}

func (c Chart) DrawingWidth() float64 {
	return c.Width - c.Padding.Horizontal()
}

func (c Chart) DrawingHeight() float64 {
	return c.Height - c.Padding.Vertical()
}

// PlotArea is the rectangle series draw into, in drawing coordinates.
func (c Chart) PlotArea() Geometry {
	return Geometry{
		Width:  c.DrawingWidth(),
		Height: c.DrawingHeight(),
	}
}

func (c Chart) Render(w io.Writer, set ...Data) {
	el := svg.NewSVG()
	el.Dim = svg.NewDim(c.Width, c.Height)
	el.OmitProlog = true

	if CanHost(c.kind()) {
		var entries []LegendEntry
		for _, s := range set {
			ar := c.getArea()
			ar.Append(s.Render())
			el.Append(ar.AsElement())
			if e, ok := s.LegendEntry(); ok {
				entries = append(entries, e)
			}
		}
		if lg := c.drawLegend(entries); lg != nil {
			el.Append(lg)
		}
	}

	bw := bufio.NewWriter(w)
	defer bw.Flush()
	el.Render(bw)
}

func (c Chart) kind() ChartKind {
	if c.Kind == "" {
		return KindBar
	}
	return c.Kind
}

func (c Chart) getArea() svg.Group {
	var g svg.Group
	g.Class = append(g.Class, "area")
	g.Transform = svg.Translate(c.Padding.Left, c.Padding.Top)
	return g
}

func (c Chart) drawLegend(entries []LegendEntry) svg.Element {
	if len(entries) == 0 {
		return nil
	}
	var (
		offset = FontSize * 1.4
		height = float64(len(entries)) * offset
		width  float64
		grp    svg.Group
	)
	if c.Legend.Title != "" {
		height += offset
	}
	for i, e := range entries {
		if n := float64(len(e.Value)); i == 0 || n > width {
			width = n
		}
		var g svg.Group
		g.Transform = svg.Translate(0, float64(i)*offset)
		g.Append(e.AsElement())
		grp.Append(g.AsElement())
	}
	width *= FontSize * 0.4

	var left, top float64
	switch c.Legend.Orient {
	case OrientRight:
		left = c.Width - c.Padding.Left - width
		top = (c.Height - c.Padding.Top - height) / 2
	case OrientRight | OrientBottom:
		left = c.Width - c.Padding.Left - width
		top = c.Height - c.Padding.Top - height
	case OrientBottom:
		left = (c.Width - width) / 2
		top = c.Height - c.Padding.Top - height
	case OrientLeft | OrientBottom:
		left = c.Padding.Left
		top = c.Height - c.Padding.Top - height
	case OrientLeft:
		left = c.Padding.Left
		top = (c.Height - c.Padding.Vertical() - height) / 2
	case OrientLeft | OrientTop:
		top = c.Padding.Top
		left = c.Padding.Left
	case OrientTop:
		left = (c.Width - width) / 2
		top = c.Padding.Top
	case OrientRight | OrientTop:
		top = c.Padding.Top
		left = c.Width - c.Padding.Left - width
	default:
		top = c.Padding.Top
		left = c.Padding.Left
	}
	grp.Transform = svg.Translate(left, top)
	return grp.AsElement()
}

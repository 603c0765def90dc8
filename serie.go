package bars

import (
	"github.com/midbel/svg"
)

const currentColour = "currentColour"

// Data is anything a chart can host: a renderable series contributing
// at most one legend registration.
type Data interface {
	Render() svg.Element
	LegendEntry() (LegendEntry, bool)
}

// BarSerie is one data bound set of rectangles rendered under one
// configuration. Items are owned by the caller and read only here;
// everything a render pass produces is derived and recomputed, the
// per item index being the only stable identity.
type BarSerie struct {
	Title   string
	DataKey string
	Layout  Layout
	Items   []DataItem
	Fill    []string

	Background BackgroundSpec
	Label      LabelSpec
	LegendType LegendType

	IsAnimationActive bool
	Animation         AnimationState
	OnAnimationStart  func()
	OnAnimationEnd    func()
	TextBreakAll      bool

	// PlotArea is the drawing rectangle of the hosting chart, used to
	// synthesize full extent backgrounds and as parent view box for
	// label render functions.
	PlotArea Geometry
}

// Rectangles gives the main bar of every item, in item order.
func (s BarSerie) Rectangles() []RectNode {
	geoms := ResolveGeometry(s.Items)
	if len(geoms) == 0 {
		return nil
	}
	all := make([]RectNode, 0, len(geoms))
	for i, g := range geoms {
		all = append(all, RectNode{
			Geometry: g,
			Fill:     s.fill(i),
			Class:    []string{ClassBarRectangle},
		})
	}
	return all
}

func (s BarSerie) LegendEntry() (LegendEntry, bool) {
	t := s.LegendType
	if t == "" {
		t = LegendRect
	}
	if t == LegendNone || !t.Valid() {
		return LegendEntry{}, false
	}
	e := LegendEntry{
		Value: s.legendValue(),
		Type:  t,
		Color: s.fill(0),
	}
	return e, true
}

func (s BarSerie) legendValue() string {
	if s.Title != "" {
		return s.Title
	}
	return s.DataKey
}

// Render is one pass: a pure function of the serie configuration. An
// interrupted pass leaves nothing to roll back, labels of an animated
// serie only ever exist once the animation settled.
func (s BarSerie) Render() svg.Element {
	grp := getBaseGroup("", "recharts-bar")
	if bgs := s.Backgrounds(); len(bgs) > 0 {
		sub := getBaseGroup("", "recharts-bar-background")
		for _, d := range bgs {
			sub.Append(d.AsElement())
		}
		grp.Append(sub.AsElement())
	}
	if rects := s.Rectangles(); len(rects) > 0 {
		sub := getBaseGroup("", "recharts-bar-rectangles")
		for _, n := range rects {
			sub.Append(n.AsElement())
		}
		grp.Append(sub.AsElement())
	}
	if labels := s.Labels(); len(labels) > 0 {
		sub := getBaseGroup("", "recharts-label-list")
		for _, d := range labels {
			sub.Append(d.AsElement())
		}
		grp.Append(sub.AsElement())
	}
	return grp.AsElement()
}

func (s BarSerie) fill(i int) string {
	if len(s.Fill) == 0 {
		return Tableau10.At(i)
	}
	return s.Fill[i%len(s.Fill)]
}

func getBaseGroup(color string, class ...string) svg.Group {
	var g svg.Group
	if color != "" {
		g.Fill = svg.NewFill(color)
		g.Stroke = svg.NewStroke(color, 1)
	}
	g.Class = class
	return g
}

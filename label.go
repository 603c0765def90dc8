package bars

import (
	"strconv"

	"github.com/midbel/svg"
)

// LabelOffset is the fixed distance between a bar's far value axis
// edge and its default label.
const LabelOffset = 5.0

// LabelSpec selects how bars are labelled. The active variant is
// resolved once per serie per render pass, not per item: a render
// function wins over a pre-built element, which wins over a style
// map, which wins over the plain flag.
type LabelSpec struct {
	Show    bool
	Style   map[string]string
	Render  LabelFunc
	Element *TextNode

	// Context is passed as second argument to Render, never
	// interpreted by the engine.
	Context any
}

type labelVariant int

const (
	labelNone labelVariant = iota
	labelDefault
	labelStyle
	labelFunc
	labelElement
)

func (l LabelSpec) variant() labelVariant {
	switch {
	case l.Render != nil:
		return labelFunc
	case l.Element != nil:
		return labelElement
	case len(l.Style) > 0:
		return labelStyle
	case l.Show:
		return labelDefault
	}
	return labelNone
}

type LabelFunc func(LabelProps, any) svg.Element

// LabelProps is the bag handed to a label render function, one call
// per item. ViewBox is the item's own rectangle, ParentViewBox the
// serie's plot area.
type LabelProps struct {
	Content       LabelFunc
	Height        float64
	Index         int
	Offset        float64
	ParentViewBox Geometry
	TextBreakAll  bool
	Value         float64
	ViewBox       Geometry
	Width         float64
	X             float64
	Y             float64
}

// Labels gives zero or one decoration per item. Nothing is emitted
// while an animated serie has not settled: labels never animate into
// position, they appear once geometry is final.
func (s BarSerie) Labels() []Decoration {
	variant := s.Label.variant()
	if variant == labelNone || len(s.Items) == 0 {
		return nil
	}
	if s.IsAnimationActive && !s.Animation.Settled() {
		return nil
	}
	var (
		geoms = ResolveGeometry(s.Items)
		all   = make([]Decoration, 0, len(geoms))
	)
	for i, g := range geoms {
		switch variant {
		case labelDefault:
			all = append(all, s.defaultLabel(s.Items[i], g))
		case labelStyle:
			node := s.defaultLabel(s.Items[i], g)
			all = append(all, node.override(s.Label.Style))
		case labelFunc:
			el := s.Label.Render(s.labelProps(s.Items[i], g, i), s.Label.Context)
			if el == nil {
				continue
			}
			all = append(all, raw{el: el})
		case labelElement:
			all = append(all, s.cloneLabel(g))
		}
	}
	return all
}

// defaultLabel anchors the text at the cross axis midpoint of the
// bar, on the far value axis edge, offset by LabelOffset. Width and
// height both carry the cross axis extent.
func (s BarSerie) defaultLabel(it DataItem, g Geometry) TextNode {
	var (
		x, y  = s.Layout.labelAnchor(g)
		cross = s.Layout.crossExtent(g)
	)
	return TextNode{
		X:        x,
		Y:        y,
		Width:    cross,
		Height:   cross,
		Offset:   LabelOffset,
		Anchor:   "middle",
		Fill:     "#808080",
		Text:     labelText(it),
		Class:    []string{ClassText, ClassLabel},
		vertical: s.Layout == LayoutVertical,
	}
}

// cloneLabel injects only x, y, height, offset and width on the
// template, never text-anchor or fill. The injected y is the near
// value axis edge, not the far edge used by the default variant; the
// asymmetry is kept on purpose for compatibility.
func (s BarSerie) cloneLabel(g Geometry) TextNode {
	var (
		node  = s.Label.Element.Clone()
		x, y  = s.Layout.nearAnchor(g)
		cross = s.Layout.crossExtent(g)
	)
	node.X = x
	node.Y = y
	node.Width = cross
	node.Height = cross
	node.Offset = LabelOffset
	node.vertical = s.Layout == LayoutVertical
	return node
}

func (s BarSerie) labelProps(it DataItem, g Geometry, index int) LabelProps {
	return LabelProps{
		Content:       s.Label.Render,
		Height:        g.Height,
		Index:         index,
		Offset:        LabelOffset,
		ParentViewBox: s.PlotArea,
		TextBreakAll:  s.TextBreakAll,
		Value:         it.Value,
		ViewBox:       g,
		Width:         g.Width,
		X:             g.X,
		Y:             g.Y,
	}
}

func labelText(it DataItem) string {
	if it.Label != "" {
		return it.Label
	}
	return strconv.FormatFloat(it.Value, 'f', -1, 64)
}

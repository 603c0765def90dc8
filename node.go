package bars

import (
	"strconv"

	"github.com/midbel/svg"
)

// Class tokens shared with the painting layer. They are part of the
// rendered node contract and must not drift.
const (
	ClassBarRectangle   = "recharts-bar-rectangle"
	ClassBarBackground  = "recharts-bar-background-rectangle"
	ClassText           = "recharts-text"
	ClassLabel          = "recharts-label"
	ClassLegendItemText = "recharts-legend-item-text"
)

// Decoration is any node derived from a bar that the painting layer
// can turn into an SVG element.
type Decoration interface {
	AsElement() svg.Element
}

// RectNode describes one rectangle node, either a bar or its
// background companion.
type RectNode struct {
	Geometry
	Fill  string
	Class []string
	Attrs map[string]string
}

func (n RectNode) AsElement() svg.Element {
	grp := getBaseGroup("", n.Class...)
	var el svg.Rect
	el.Pos = svg.NewPos(n.X, n.Y)
	el.Dim = svg.NewDim(n.Width, n.Height)
	if n.Fill != "" {
		el.Fill = svg.NewFill(n.Fill)
	}
	grp.Append(el.AsElement())
	return grp.AsElement()
}

// underlay merges style attributes under the node: known keys fill
// holes, the computed values of the node always win.
func (n RectNode) underlay(style map[string]string) RectNode {
	for k, v := range style {
		switch k {
		case "fill":
			if n.Fill == "" {
				n.Fill = v
			}
		case "x", "y", "width", "height":
			// computed geometry wins
		default:
			n = n.attr(k, v)
		}
	}
	return n
}

func (n RectNode) attr(key, value string) RectNode {
	attrs := make(map[string]string, len(n.Attrs)+1)
	for k, v := range n.Attrs {
		attrs[k] = v
	}
	attrs[key] = value
	n.Attrs = attrs
	return n
}

// TextNode describes one label node.
type TextNode struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Offset float64
	Anchor string
	Fill   string
	Text   string
	Class  []string
	Attrs  map[string]string

	// vertical flips the painted displacement of Offset: past the bar
	// end along X instead of above the anchor.
	vertical bool
}

func (n TextNode) AsElement() svg.Element {
	grp := getBaseGroup(n.Fill, n.Class...)
	txt := svg.NewText(n.Text)
	if n.vertical {
		txt.Pos = svg.NewPos(n.X+n.Offset, n.Y)
	} else {
		txt.Pos = svg.NewPos(n.X, n.Y-n.Offset)
	}
	txt.Font = svg.NewFont(FontSize)
	txt.Anchor = n.Anchor
	grp.Append(txt.AsElement())
	return grp.AsElement()
}

// Clone detaches the node from its template so that per item
// injection never leaks between items.
func (n TextNode) Clone() TextNode {
	n.Class = append([]string(nil), n.Class...)
	if len(n.Attrs) > 0 {
		attrs := make(map[string]string, len(n.Attrs))
		for k, v := range n.Attrs {
			attrs[k] = v
		}
		n.Attrs = attrs
	}
	return n
}

// override merges style attributes over the node: every key of the
// map wins over the computed defaults. A className key replaces the
// label class token, the base text token is always retained.
func (n TextNode) override(style map[string]string) TextNode {
	n = n.Clone()
	for k, v := range style {
		switch k {
		case "className":
			n.Class = []string{ClassText, v}
		case "x":
			n.X = parseFloat(v, n.X)
		case "y":
			n.Y = parseFloat(v, n.Y)
		case "width":
			n.Width = parseFloat(v, n.Width)
		case "height":
			n.Height = parseFloat(v, n.Height)
		case "offset":
			n.Offset = parseFloat(v, n.Offset)
		case "fill":
			n.Fill = v
		case "text-anchor":
			n.Anchor = v
		default:
			if n.Attrs == nil {
				n.Attrs = make(map[string]string)
			}
			n.Attrs[k] = v
		}
	}
	return n
}

// raw wraps an element produced by a caller supplied render function.
// It is rendered verbatim, no class or attribute is forced onto it.
type raw struct {
	el svg.Element
}

func (r raw) AsElement() svg.Element {
	return r.el
}

func parseFloat(str string, alt float64) float64 {
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return alt
	}
	return f
}

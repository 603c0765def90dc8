package bars

import (
	"github.com/midbel/svg"
)

// BackgroundSpec enables the companion rectangle behind each bar. At
// most one of the three forms is active: the shorthand flag, a style
// attribute map, or a render function.
type BackgroundSpec struct {
	Enabled bool
	Style   map[string]string
	Render  BackgroundFunc
}

func (b BackgroundSpec) enabled() bool {
	return b.Enabled || len(b.Style) > 0 || b.Render != nil
}

type BackgroundFunc func(BackgroundProps) svg.Element

// BackgroundProps is the bag handed to a background render function,
// one call per item.
type BackgroundProps struct {
	ClassName        string
	DataKey          string
	Fill             string
	Height           float64
	Index            int
	Label            string
	OnAnimationStart func()
	OnAnimationEnd   func()
	Width            float64
	X                float64
	Y                float64
}

// Backgrounds gives the companion rectangle of every item, or nothing
// when the serie does not configure a background.
func (s BarSerie) Backgrounds() []Decoration {
	if !s.Background.enabled() || len(s.Items) == 0 {
		return nil
	}
	all := make([]Decoration, 0, len(s.Items))
	for i, it := range s.Items {
		rect := s.backgroundRect(it)
		if fn := s.Background.Render; fn != nil {
			el := fn(s.backgroundProps(it, rect, i))
			if el == nil {
				continue
			}
			all = append(all, raw{el: el})
			continue
		}
		node := RectNode{
			Geometry: rect,
			Class:    []string{ClassBarBackground},
		}
		node = node.underlay(s.Background.Style)
		all = append(all, node)
	}
	return all
}

// backgroundRect takes the per item descriptor verbatim when present
// and well formed; otherwise it synthesizes a rectangle spanning the
// full value axis extent of the plot area, whatever the value driven
// extent of the bar itself.
func (s BarSerie) backgroundRect(it DataItem) Geometry {
	if bg := it.Background; bg != nil && bg.wellformed() {
		return *bg
	}
	g := resolveItem(it)
	if s.Layout == LayoutVertical {
		return Geometry{
			X:      s.PlotArea.X,
			Y:      g.Y,
			Width:  s.PlotArea.Width,
			Height: g.Height,
		}
	}
	return Geometry{
		X:      g.X,
		Y:      s.PlotArea.Y,
		Width:  g.Width,
		Height: s.PlotArea.Height,
	}
}

func (s BarSerie) backgroundProps(it DataItem, rect Geometry, index int) BackgroundProps {
	return BackgroundProps{
		ClassName:        ClassBarBackground,
		DataKey:          s.DataKey,
		Fill:             s.Background.Style["fill"],
		Height:           rect.Height,
		Index:            index,
		Label:            it.Label,
		OnAnimationStart: s.OnAnimationStart,
		OnAnimationEnd:   s.OnAnimationEnd,
		Width:            rect.Width,
		X:                rect.X,
		Y:                rect.Y,
	}
}

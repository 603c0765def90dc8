package bars

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanHost(t *testing.T) {
	assert.True(t, CanHost(KindBar))
	assert.True(t, CanHost(KindComposed))

	for _, kind := range []ChartKind{
		KindArea,
		KindLine,
		KindScatter,
		KindPie,
		KindRadar,
		KindRadialBar,
		KindFunnel,
		ChartKind("sunburst"),
	} {
		assert.False(t, CanHost(kind), kind)
	}
}

func TestChart_Gate(t *testing.T) {
	ser := BarSerie{
		Title:      "sales",
		Layout:     LayoutHorizontal,
		Label:      LabelSpec{Show: true},
		Background: BackgroundSpec{Enabled: true},
		LegendType: LegendSquare,
		Items: []DataItem{
			{X: 0, Y: 40, Width: 20, Height: 60, Value: 6},
			{X: 30, Y: 10, Width: 20, Height: 90, Value: 9},
		},
		PlotArea: Geometry{Width: 100, Height: 100},
	}
	ch := Chart{
		Kind:   KindPie,
		Width:  200,
		Height: 200,
	}

	var out strings.Builder
	ch.Render(&out, ser)
	doc := out.String()
	assert.NotContains(t, doc, "recharts-bar-rectangle")
	assert.NotContains(t, doc, "recharts-bar-background-rectangle")
	assert.NotContains(t, doc, "recharts-label")
	assert.NotContains(t, doc, "recharts-legend-item-text")

	ch.Kind = KindComposed
	out.Reset()
	ch.Render(&out, ser)
	doc = out.String()
	assert.Contains(t, doc, "recharts-bar-rectangle")
	assert.Contains(t, doc, "recharts-legend-item-text")
}

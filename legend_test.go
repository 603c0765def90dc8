package bars

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var legendTypes = []LegendType{
	LegendCircle,
	LegendCross,
	LegendDiamond,
	LegendLine,
	LegendPlainline,
	LegendRect,
	LegendSquare,
	LegendStar,
	LegendTriangle,
	LegendWye,
}

func TestLegendEntry(t *testing.T) {
	for _, lt := range legendTypes {
		ser := BarSerie{
			Title:      "sales",
			Fill:       []string{"steelblue"},
			LegendType: lt,
		}
		e, ok := ser.LegendEntry()
		require.True(t, ok, lt)
		assert.Equal(t, lt, e.Type)
		assert.Equal(t, "sales", e.Value)
		assert.Equal(t, "steelblue", e.Color)
	}
}

func TestLegendEntry_None(t *testing.T) {
	ser := BarSerie{Title: "sales", LegendType: LegendNone}
	_, ok := ser.LegendEntry()
	assert.False(t, ok)

	ser.LegendType = "blob"
	_, ok = ser.LegendEntry()
	assert.False(t, ok)
}

func TestLegendEntry_Default(t *testing.T) {
	ser := BarSerie{DataKey: "value"}
	e, ok := ser.LegendEntry()
	require.True(t, ok)
	assert.Equal(t, LegendRect, e.Type)
	assert.Equal(t, "value", e.Value)
}

func TestGlyph(t *testing.T) {
	for _, lt := range legendTypes {
		point := Glyph(lt)
		require.NotNil(t, point, lt)
	}
	assert.Nil(t, Glyph(LegendNone))
	assert.Nil(t, Glyph("blob"))
}

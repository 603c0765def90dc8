package bars

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectangles(t *testing.T) {
	ser := testSerie(LabelSpec{})
	ser.Fill = []string{"red", "green"}
	rects := ser.Rectangles()
	require.Len(t, rects, len(ser.Items))
	for i, n := range rects {
		assert.Equal(t, []string{"recharts-bar-rectangle"}, n.Class)
		assert.Equal(t, resolveItem(ser.Items[i]), n.Geometry)
	}
	assert.Equal(t, "red", rects[0].Fill)
	assert.Equal(t, "green", rects[1].Fill)
	assert.Equal(t, "red", rects[2].Fill)
}

func TestRectangles_DefaultPalette(t *testing.T) {
	ser := testSerie(LabelSpec{})
	rects := ser.Rectangles()
	require.NotEmpty(t, rects)
	assert.Equal(t, Tableau10.At(0), rects[0].Fill)
}

func TestSerie_Empty(t *testing.T) {
	ser := BarSerie{
		Label:      LabelSpec{Show: true},
		Background: BackgroundSpec{Enabled: true},
	}
	assert.Nil(t, ser.Rectangles())
	assert.Nil(t, ser.Backgrounds())
	assert.Nil(t, ser.Labels())
}

func TestScaleItems(t *testing.T) {
	var (
		plot = Geometry{Width: 100, Height: 100}
		cats = []string{"a", "b"}
		vals = []float64{100, 50}
		xs   = StringScaler(cats, NewRange(0, plot.Width))
		ys   = NumberScaler(100, 0, NewRange(0, plot.Height))
	)
	items := ScaleItems(LayoutHorizontal, cats, vals, xs, ys, plot, 0.5)
	require.Len(t, items, 2)

	fst := items[0]
	assert.Equal(t, 12.5, fst.X)
	assert.Equal(t, 25.0, fst.Width)
	assert.Equal(t, 0.0, fst.Y)
	assert.Equal(t, 100.0, fst.Height)

	lst := items[1]
	assert.Equal(t, 62.5, lst.X)
	assert.Equal(t, 50.0, lst.Y)
	assert.Equal(t, 50.0, lst.Height)
}

func TestScaleItems_Vertical(t *testing.T) {
	var (
		plot = Geometry{Width: 100, Height: 100}
		cats = []string{"a", "b"}
		vals = []float64{100, 50}
		cs   = StringScaler(cats, NewRange(0, plot.Height))
		vs   = NumberScaler(0, 100, NewRange(0, plot.Width))
	)
	items := ScaleItems(LayoutVertical, cats, vals, cs, vs, plot, 0.5)
	require.Len(t, items, 2)

	fst := items[0]
	assert.Equal(t, 0.0, fst.X)
	assert.Equal(t, 12.5, fst.Y)
	assert.Equal(t, 100.0, fst.Width)
	assert.Equal(t, 25.0, fst.Height)

	lst := items[1]
	assert.Equal(t, 62.5, lst.Y)
	assert.Equal(t, 50.0, lst.Width)
	assert.Equal(t, 25.0, lst.Height)
}

func TestAnimationState(t *testing.T) {
	state := StateIdle
	assert.False(t, state.Settled())
	state = state.Next()
	assert.Equal(t, StateAnimating, state)
	assert.False(t, state.Settled())
	state = state.Next()
	assert.Equal(t, StateSettled, state)
	assert.True(t, state.Settled())
	assert.Equal(t, StateSettled, state.Next())
}

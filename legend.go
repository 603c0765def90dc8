package bars

import (
	"math"

	"github.com/midbel/svg"
)

// LegendType selects the icon registered for a serie. LegendNone is
// the sentinel suppressing registration.
type LegendType string

const (
	LegendCircle    LegendType = "circle"
	LegendCross     LegendType = "cross"
	LegendDiamond   LegendType = "diamond"
	LegendLine      LegendType = "line"
	LegendPlainline LegendType = "plainline"
	LegendRect      LegendType = "rect"
	LegendSquare    LegendType = "square"
	LegendStar      LegendType = "star"
	LegendTriangle  LegendType = "triangle"
	LegendWye       LegendType = "wye"
	LegendNone      LegendType = "none"
)

func (t LegendType) Valid() bool {
	switch t {
	case LegendCircle, LegendCross, LegendDiamond, LegendLine, LegendPlainline,
		LegendRect, LegendSquare, LegendStar, LegendTriangle, LegendWye, LegendNone:
		return true
	}
	return false
}

// LegendEntry is the single registration a serie contributes to the
// legend of its hosting chart.
type LegendEntry struct {
	Value string
	Type  LegendType
	Color string
}

func (e LegendEntry) AsElement() svg.Element {
	var grp svg.Group
	grp.Class = append(grp.Class, "legend-item")
	if e.Color != "" {
		grp.Fill = svg.NewFill(e.Color)
		grp.Stroke = svg.NewStroke(e.Color, 1)
	}
	if point := Glyph(e.Type); point != nil {
		grp.Append(point(svg.NewPos(DefaultSize, 0)))
	}
	txt := svg.NewText(e.Value)
	txt.Pos = svg.NewPos(DefaultSize*4, 0)
	txt.Font = svg.NewFont(FontSize)
	txt.Baseline = "middle"
	tg := getBaseGroup("", ClassLegendItemText)
	tg.Append(txt.AsElement())
	grp.Append(tg.AsElement())
	return grp.AsElement()
}

var DefaultSize float64 = 4

type PointFunc func(svg.Pos) svg.Element

// Glyph maps a legend type to its icon constructor, one per symbol.
// LegendNone and unknown values give nil.
func Glyph(t LegendType) PointFunc {
	switch t {
	case LegendCircle:
		return GetCircle
	case LegendCross:
		return GetCross
	case LegendDiamond:
		return GetDiamond
	case LegendLine:
		return GetLine
	case LegendPlainline:
		return GetPlainline
	case LegendRect:
		return GetRect
	case LegendSquare:
		return GetSquare
	case LegendStar:
		return GetStar
	case LegendTriangle:
		return GetTriangle
	case LegendWye:
		return GetWye
	}
	return nil
}

func GetCircle(pos svg.Pos) svg.Element {
	var el svg.Circle
	el.Pos = pos
	el.Fill = svg.NewFill(currentColour)
	el.Radius = DefaultSize / 2
	return el.AsElement()
}

func GetSquare(pos svg.Pos) svg.Element {
	half := DefaultSize / 2
	pos.X -= half
	pos.Y -= half

	var el svg.Rect
	el.Pos = pos
	el.Dim = svg.NewDim(DefaultSize, DefaultSize)
	el.Fill = svg.NewFill(currentColour)

	return el.AsElement()
}

func GetRect(pos svg.Pos) svg.Element {
	half := DefaultSize / 2
	pos.X -= DefaultSize
	pos.Y -= half / 2

	var el svg.Rect
	el.Pos = pos
	el.Dim = svg.NewDim(DefaultSize*2, half)
	el.Fill = svg.NewFill(currentColour)

	return el.AsElement()
}

func GetDiamond(pos svg.Pos) svg.Element {
	half := DefaultSize / 2
	pos.X -= half
	pos.Y -= half

	var el svg.Rect
	el.Pos = pos
	el.Dim = svg.NewDim(DefaultSize, DefaultSize)
	el.Fill = svg.NewFill(currentColour)
	el.Transform.RA = 45
	el.Transform.RX = pos.X + half
	el.Transform.RY = pos.Y + half

	return el.AsElement()
}

func GetCross(pos svg.Pos) svg.Element {
	var (
		third = DefaultSize / 3
		half  = DefaultSize / 2
		pat   svg.Path
	)
	pat.Fill = svg.NewFill(currentColour)
	pat.AbsMoveTo(svg.NewPos(pos.X-third/2, pos.Y-half))
	pat.AbsLineTo(svg.NewPos(pos.X+third/2, pos.Y-half))
	pat.AbsLineTo(svg.NewPos(pos.X+third/2, pos.Y-third/2))
	pat.AbsLineTo(svg.NewPos(pos.X+half, pos.Y-third/2))
	pat.AbsLineTo(svg.NewPos(pos.X+half, pos.Y+third/2))
	pat.AbsLineTo(svg.NewPos(pos.X+third/2, pos.Y+third/2))
	pat.AbsLineTo(svg.NewPos(pos.X+third/2, pos.Y+half))
	pat.AbsLineTo(svg.NewPos(pos.X-third/2, pos.Y+half))
	pat.AbsLineTo(svg.NewPos(pos.X-third/2, pos.Y+third/2))
	pat.AbsLineTo(svg.NewPos(pos.X-half, pos.Y+third/2))
	pat.AbsLineTo(svg.NewPos(pos.X-half, pos.Y-third/2))
	pat.AbsLineTo(svg.NewPos(pos.X-third/2, pos.Y-third/2))
	pat.ClosePath()
	return pat.AsElement()
}

func GetLine(pos svg.Pos) svg.Element {
	li := svg.NewLine(svg.NewPos(pos.X-DefaultSize, pos.Y), svg.NewPos(pos.X+DefaultSize, pos.Y))
	li.Stroke = svg.NewStroke(currentColour, 2)
	return li.AsElement()
}

func GetPlainline(pos svg.Pos) svg.Element {
	li := svg.NewLine(svg.NewPos(pos.X-DefaultSize, pos.Y), svg.NewPos(pos.X+DefaultSize, pos.Y))
	li.Stroke = svg.NewStroke(currentColour, 1)
	li.Stroke.DashArray = []int{2}
	return li.AsElement()
}

func GetTriangle(pos svg.Pos) svg.Element {
	half := DefaultSize / 2

	var pat svg.Path
	pat.Fill = svg.NewFill(currentColour)
	pat.AbsMoveTo(svg.NewPos(pos.X, pos.Y-half))
	pat.AbsLineTo(svg.NewPos(pos.X+half, pos.Y+half))
	pat.AbsLineTo(svg.NewPos(pos.X-half, pos.Y+half))
	pat.ClosePath()
	return pat.AsElement()
}

func GetStar(pos svg.Pos) svg.Element {
	var (
		outer = DefaultSize / 2
		inner = outer / 2
		step  = math.Pi / 5
		pat   svg.Path
	)
	pat.Fill = svg.NewFill(currentColour)
	for i := 0; i < 10; i++ {
		var (
			radius = outer
			angle  = float64(i)*step - math.Pi/2
		)
		if i%2 != 0 {
			radius = inner
		}
		at := svg.NewPos(pos.X+radius*math.Cos(angle), pos.Y+radius*math.Sin(angle))
		if i == 0 {
			pat.AbsMoveTo(at)
		} else {
			pat.AbsLineTo(at)
		}
	}
	pat.ClosePath()
	return pat.AsElement()
}

func GetWye(pos svg.Pos) svg.Element {
	var (
		half = DefaultSize / 2
		step = 2 * math.Pi / 3
		pat  svg.Path
	)
	pat.Fill = svg.NewFill("none")
	pat.Stroke = svg.NewStroke(currentColour, 1)
	for i := 0; i < 3; i++ {
		angle := float64(i)*step - math.Pi/2
		pat.AbsMoveTo(pos)
		pat.AbsLineTo(svg.NewPos(pos.X+half*math.Cos(angle), pos.Y+half*math.Sin(angle)))
	}
	return pat.AsElement()
}

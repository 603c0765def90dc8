package bars

type ScalerConstraint interface {
	~float64 | ~string
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return r.T
}

func (r Range) Min() float64 {
	return r.F
}

// Scaler maps raw values onto the drawing range. Series consume
// already scaled items, so scalers only matter to callers preparing
// the data.
type Scaler[T ScalerConstraint] interface {
	Scale(T) float64
	Space() float64
	Max() float64
	Min() float64
}

type numberScaler struct {
	Range
	fst float64
	lst float64
}

func NumberScaler(from, to float64, rg Range) Scaler[float64] {
	return numberScaler{
		Range: rg,
		fst:   from,
		lst:   to,
	}
}

func (n numberScaler) Scale(v float64) float64 {
	return (v - n.fst) * n.Space()
}

func (n numberScaler) Space() float64 {
	return n.Len() / (n.lst - n.fst)
}

type stringScaler struct {
	Range
	Strings []string
}

func StringScaler(str []string, rg Range) Scaler[string] {
	return stringScaler{
		Range:   rg,
		Strings: str,
	}
}

func (s stringScaler) Scale(v string) float64 {
	var x int
	for i := range s.Strings {
		if s.Strings[i] == v {
			x = i
			break
		}
	}
	return float64(x) * s.Space()
}

func (s stringScaler) Space() float64 {
	if len(s.Strings) == 0 {
		return 0
	}
	return s.Len() / float64(len(s.Strings))
}

// ScaleItems turns category/value pairs into scaled items drawn in
// plot. The category scaler cs runs along the cross axis of layout,
// the value scaler vs along its value axis. barWidth is the fraction
// of the category slot taken by the bar.
func ScaleItems(layout Layout, categories []string, values []float64, cs Scaler[string], vs Scaler[float64], plot Geometry, barWidth float64) []DataItem {
	if barWidth <= 0 || barWidth > 1 {
		barWidth = 1
	}
	count := len(categories)
	if len(values) < count {
		count = len(values)
	}
	all := make([]DataItem, 0, count)
	for i := 0; i < count; i++ {
		var (
			w = cs.Space() * barWidth
			o = (cs.Space() - w) / 2
			c = cs.Scale(categories[i]) + o
			v = vs.Scale(values[i])
		)
		it := DataItem{Value: values[i]}
		if layout == LayoutVertical {
			it.Y = c
			it.Height = w
			it.Width = v
		} else {
			it.X = c
			it.Width = w
			it.Y = v
			it.Height = plot.Height - v
		}
		all = append(all, it)
	}
	return all
}

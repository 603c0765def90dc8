package bars

// ChartKind identifies the hosting chart of a serie.
type ChartKind string

const (
	KindBar       ChartKind = "bar"
	KindComposed  ChartKind = "composed"
	KindArea      ChartKind = "area"
	KindLine      ChartKind = "line"
	KindScatter   ChartKind = "scatter"
	KindPie       ChartKind = "pie"
	KindRadar     ChartKind = "radar"
	KindRadialBar ChartKind = "radialbar"
	KindFunnel    ChartKind = "funnel"
)

// barHosts is the closed list of chart kinds whose geometry model can
// host discrete category rectangles. Everything else drops the serie
// silently.
var barHosts = map[ChartKind]struct{}{
	KindBar:      {},
	KindComposed: {},
}

func CanHost(kind ChartKind) bool {
	_, ok := barHosts[kind]
	return ok
}

package bars

// AnimationState tracks the enter transition of a serie. Geometry is
// animation agnostic; only label emission consults the state.
type AnimationState int

const (
	StateIdle AnimationState = iota
	StateAnimating
	StateSettled
)

func (a AnimationState) Next() AnimationState {
	switch a {
	case StateIdle:
		return StateAnimating
	case StateAnimating:
		return StateSettled
	default:
		return StateSettled
	}
}

func (a AnimationState) Settled() bool {
	return a == StateSettled
}

func (a AnimationState) String() string {
	switch a {
	case StateIdle:
		return "idle"
	case StateAnimating:
		return "animating"
	case StateSettled:
		return "settled"
	default:
		return "unknown"
	}
}

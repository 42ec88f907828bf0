package patrol

// Verdict is how a patrol ended.
type Verdict int

const (
	Exited Verdict = iota
	Looped
)

func (v Verdict) String() string {
	if v == Looped {
		return "looped"
	}
	return "exited"
}

// Run steps until the guard leaves the grid or re-enters a cell with a
// heading it already had there. The latter is a cycle since movement is
// deterministic, so Run returns at the first repeat. A guard boxed in on all
// four sides only ever turns and is reported as looped too.
func (p *Patrol) Run() Verdict {
	verdict := Exited
	for {
		_, repeat, ok := p.Step()
		if !ok {
			break
		}
		if repeat || p.Boxed() {
			verdict = Looped
			break
		}
	}
	runSteps.WithLabelValues(verdict.String()).Observe(float64(p.steps))
	return verdict
}

package rasteredit

// Step is one atomic, replayable manipulation of a Session's content tree.
// Every concrete step (LayerCreateEmpty, DrawLine, ...) implements it, and
// every Moment in a Session's history holds one.
type Step interface {
	// StepTag identifies the step's wire type, e.g. "layer/create/empty".
	// It's also what Moment and DESIGN-level logging use to name a step
	// without reflecting on its concrete Go type.
	StepTag() string

	// PerformOn applies the step to s, mutating its content tree and
	// recompositing whatever changed.
	PerformOn(s *Session) error
}

// IncrementalStep is a Step that can also be built up in pieces: Start
// begins it, Extend feeds it one more data point, and Finish commits it.
// DrawLine and LayerMoveRelative are incremental so a UI can drive them
// straight from pointer-down/move/up without buffering the whole gesture
// first.
//
// A finished IncrementalStep still satisfies Step on its own — PerformOn
// replays Start, every increment from BreakUp, then Finish — so it can be
// stored in history and replayed during undo/redo exactly like any other
// step.
type IncrementalStep interface {
	Step

	Start(s *Session) error
	Extend(s *Session, data Position) error
	Finish(s *Session) error

	// BreakUp returns the sequence of increments that reproduces this
	// step's already-recorded effect, for replay.
	BreakUp() []Position
}

// performIncrementalAsStep replays a finished IncrementalStep as a single
// unit: Start, then every increment from BreakUp, then Finish. It's the Go
// equivalent of the blanket "every IncrementalStep is also a Step"
// implementation — each incremental step's PerformOn simply calls this.
func performIncrementalAsStep(step IncrementalStep, s *Session) error {
	if err := step.Start(s); err != nil {
		return err
	}
	for _, increment := range step.BreakUp() {
		if err := step.Extend(s, increment); err != nil {
			return err
		}
	}
	return step.Finish(s)
}

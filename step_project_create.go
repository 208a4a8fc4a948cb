package rasteredit

// ProjectCreate initializes a new project at a given canvas size. It is
// always the first Moment in a session's history, recorded directly by
// NewSession/Reconstruct rather than dispatched through Session.Perform;
// PerformOn only exists so it satisfies Step for storage in Moment.Data,
// and reports an application error if anything ever does try to replay it
// as an ordinary step.
type ProjectCreate struct {
	Size Size `json:"size"`
}

func (s *ProjectCreate) StepTag() string { return "project/create" }

func (s *ProjectCreate) PerformOn(*Session) error {
	return applicationError("ProjectCreate can't be performed as a step")
}

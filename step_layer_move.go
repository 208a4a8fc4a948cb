package rasteredit

// LayerMove relocates the layer Id to the spot MoveIdx names (see
// tree.Tree.MoveNode for the encoding), recompositing both the moved
// layer's new position and its former parent.
type LayerMove struct {
	Id      int `json:"id"`
	MoveIdx int `json:"move_idx"`
}

func (s *LayerMove) StepTag() string { return "layer/move" }

func (s *LayerMove) PerformOn(session *Session) error {
	parentIdx, err := session.content.GetParent(s.Id)
	if err != nil {
		return fromTreeError(err)
	}
	if err := moveLayer(session, s.Id, s.MoveIdx); err != nil {
		return err
	}
	if err := propagateChangesUp(session.blender, &session.content, s.Id); err != nil {
		return err
	}
	return propagateChangesUp(session.blender, &session.content, parentIdx)
}

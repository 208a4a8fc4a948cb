package rasteredit

// LayerRemove deletes each of Ids from the content tree, recompositing
// from each removed node's former parent up.
type LayerRemove struct {
	Ids []int `json:"ids"`
}

func (s *LayerRemove) StepTag() string { return "layer/remove" }

func (s *LayerRemove) PerformOn(session *Session) error {
	for _, id := range s.Ids {
		parent, err := session.content.GetParent(id)
		if err != nil {
			return fromTreeError(err)
		}
		if err := session.content.RemoveEntry(id); err != nil {
			return fromTreeError(err)
		}
		if err := propagateChangesUp(session.blender, &session.content, parent); err != nil {
			return err
		}
	}
	return nil
}

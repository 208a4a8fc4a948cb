package rasteredit

import "github.com/gogpu/rasteredit/internal/tree"

// LayerDuplicate clones the layer Id as a new last sibling under the same
// parent, named the same with " (2)" appended.
type LayerDuplicate struct {
	Id int `json:"id"`
}

func (s *LayerDuplicate) StepTag() string { return "layer/duplicate" }

func (s *LayerDuplicate) PerformOn(session *Session) error {
	cursor, err := tree.NewCursor(&session.content, s.Id)
	if err != nil {
		return fromTreeError(err)
	}
	duplicate := cursor.Value()
	duplicate.Img = duplicate.Img.Clone()
	if duplicate.Ghost != nil {
		ghostCopy := *duplicate.Ghost
		ghostCopy.Img = ghostCopy.Img.Clone()
		duplicate.Ghost = &ghostCopy
	}
	if duplicate.Zombie != nil {
		duplicate.Zombie = duplicate.Zombie.Clone()
	}
	duplicate.Name += " (2)"
	cursor.GoUp()
	cursor.AddChild(duplicate)
	return propagateChangesUp(session.blender, &session.content, s.Id)
}

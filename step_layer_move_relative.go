package rasteredit

import "github.com/gogpu/rasteredit/internal/tree"

// LayerMoveRelative nudges a layer's position by Delta. It's incremental so
// a drag gesture can call Extend once per pointer-move event: Start preloads
// every sibling layer the drag will pass beneath into the blender's cache
// (everything except the layer just walked up from at each ancestor level,
// since that one is about to move anyway), and each Extend both updates the
// layer's own position and accumulates Delta for the eventual recorded
// step.
type LayerMoveRelative struct {
	Id    int      `json:"id"`
	Delta Position `json:"delta"`
}

func (s *LayerMoveRelative) StepTag() string { return "layer/move_relative" }

func (s *LayerMoveRelative) PerformOn(session *Session) error {
	return performIncrementalAsStep(s, session)
}

func (s *LayerMoveRelative) Start(session *Session) error {
	cursor, err := tree.NewCursor(&session.content, s.Id)
	if err != nil {
		return fromTreeError(err)
	}
	if cursor.Value().Flag.Kind == FlagGroup {
		return applicationError("Can't move group")
	}

	pending := &LayerMoveRelative{Id: s.Id, Delta: Position{}}
	session.context.PendingStep = pending

	start := s.Id
	ignore := &start
	for !cursor.IsOnRoot() {
		cursor.GoUp()
		for _, entry := range cursor.Children() {
			child := entry.Index
			if ignore == nil || *ignore != child {
				session.blender.Load(uint64(child), entry.Value.Img)
			}
		}
		idx := cursor.Index()
		ignore = &idx
	}
	return nil
}

func (s *LayerMoveRelative) Extend(session *Session, data Position) error {
	pending, ok := session.context.PendingStep.(*LayerMoveRelative)
	if !ok {
		return userError("Can't extend witout previous matching")
	}
	layer, err := session.content.ValueMut(s.Id)
	if err != nil {
		return fromTreeError(err)
	}
	layer.Attr.Pos = layer.Attr.Pos.Add(data)
	pending.Delta = pending.Delta.Add(data)
	return propagateChangesUp(session.blender, &session.content, s.Id)
}

func (s *LayerMoveRelative) Finish(session *Session) error {
	session.context.PendingStep = nil
	return nil
}

func (s *LayerMoveRelative) BreakUp() []Position {
	return []Position{s.Delta}
}

package rasteredit

import "github.com/gogpu/rasteredit/internal/pixel"

// LayerCreateEmpty adds a new Pixel layer filled with a single color
// (Transparent by default) under the content root, then spawns it at
// MoveIdx (the root, if unset).
type LayerCreateEmpty struct {
	MoveIdx  *int      `json:"move_idx"`
	Size     *Size     `json:"size"`
	Position *Position `json:"position"`
	Color    *Color    `json:"color"`
	Name     *string   `json:"name"`
}

func (s *LayerCreateEmpty) StepTag() string { return "layer/create/empty" }

func (s *LayerCreateEmpty) PerformOn(session *Session) error {
	size := session.Size()
	if s.Size != nil {
		size = *s.Size
	}
	color := Transparent
	if s.Color != nil {
		color = *s.Color
	}
	content := pixel.NewFromColor(size.Width, size.Height, color)

	idx, err := addLayer(session, session.RootIndex(), s.Position, content, s.Name)
	if err != nil {
		return err
	}
	if err := propagateChangesUp(session.blender, &session.content, idx); err != nil {
		return err
	}
	moveIdx := session.RootIndex()
	if s.MoveIdx != nil {
		moveIdx = *s.MoveIdx
	}
	if err := spawnLayer(session, idx, moveIdx); err != nil {
		return err
	}
	session.context.Idx = &idx
	return nil
}

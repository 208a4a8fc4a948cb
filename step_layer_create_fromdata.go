package rasteredit

// LayerCreateFromData adds a new Pixel layer wrapping an already-rendered
// image (decoded from its ImageDto) under the given Parent.
type LayerCreateFromData struct {
	Parent   int       `json:"parent"`
	Img      ImageDto  `json:"img"`
	Position *Position `json:"position"`
	Name     *string   `json:"name"`
}

func (s *LayerCreateFromData) StepTag() string { return "layer/create/from_data" }

func (s *LayerCreateFromData) PerformOn(session *Session) error {
	content, err := s.Img.ToImage(session.context.Images)
	if err != nil {
		return userError("%s", err.Error())
	}
	idx, err := addLayer(session, s.Parent, s.Position, content, s.Name)
	if err != nil {
		return err
	}
	if err := propagateChangesUp(session.blender, &session.content, idx); err != nil {
		return err
	}
	session.context.Idx = &idx
	return nil
}

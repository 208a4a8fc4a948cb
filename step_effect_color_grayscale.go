package rasteredit

// EffectColorGrayscale desaturates a layer's image in place.
type EffectColorGrayscale struct {
	Id int `json:"id"`
}

func (s *EffectColorGrayscale) StepTag() string { return "effect/color/grayscale" }

func (s *EffectColorGrayscale) PerformOn(session *Session) error {
	layer, err := session.content.ValueMut(s.Id)
	if err != nil {
		return fromTreeError(err)
	}
	layer.Img.Grayscale()
	return propagateChangesUp(session.blender, &session.content, s.Id)
}

package rasteredit

import "github.com/gogpu/rasteredit/internal/tree"

// EffectNoiseGaussian adds seeded Gaussian noise to a layer's image.
type EffectNoiseGaussian struct {
	Id     int     `json:"id"`
	Mean   float64 `json:"mean"`
	Stddev float64 `json:"stddev"`
	Seed   uint64  `json:"seed"`
}

func (s *EffectNoiseGaussian) StepTag() string { return "effect/noise/gaussian" }

func (s *EffectNoiseGaussian) PerformOn(session *Session) error {
	cursor, err := tree.NewCursor(&session.content, s.Id)
	if err != nil {
		return fromTreeError(err)
	}
	layer := cursor.ValueMut()
	layer.Img.GaussianNoise(s.Mean, s.Stddev, s.Seed)
	return propagateChangesUp(session.blender, &session.content, s.Id)
}

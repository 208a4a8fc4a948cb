package rasteredit

import (
	"encoding/json"
	"fmt"

	"github.com/gogpu/rasteredit/internal/tree"
)

// LayerAttributesStep partially updates a layer's position, alpha, blend
// mode, visibility and/or name: only the fields that are set are changed.
// It's named with a Step suffix to avoid colliding with LayerAttributes,
// the attribute struct it's partially updating.
type LayerAttributesStep struct {
	Id      int       `json:"id"`
	Pos     *Position `json:"pos"`
	Alpha   *float64  `json:"alpha"`
	Mode    *BlendMode
	Visible *bool   `json:"visible"`
	Name    *string `json:"name"`
}

type layerAttributesStepWire struct {
	Id      int       `json:"id"`
	Pos     *Position `json:"pos"`
	Alpha   *float64  `json:"alpha"`
	Mode    *string   `json:"mode"`
	Visible *bool     `json:"visible"`
	Name    *string   `json:"name"`
}

func (s LayerAttributesStep) MarshalJSON() ([]byte, error) {
	var mode *string
	if s.Mode != nil {
		name, ok := blendModeNames[*s.Mode]
		if !ok {
			return nil, fmt.Errorf("rasteredit: unknown blend mode %d", *s.Mode)
		}
		mode = &name
	}
	return json.Marshal(layerAttributesStepWire{
		Id: s.Id, Pos: s.Pos, Alpha: s.Alpha, Mode: mode, Visible: s.Visible, Name: s.Name,
	})
}

func (s *LayerAttributesStep) UnmarshalJSON(data []byte) error {
	var wire layerAttributesStepWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	s.Id, s.Pos, s.Alpha, s.Visible, s.Name = wire.Id, wire.Pos, wire.Alpha, wire.Visible, wire.Name
	if wire.Mode != nil {
		mode, ok := blendModeValues[*wire.Mode]
		if !ok {
			return fmt.Errorf("rasteredit: unknown blend mode %q", *wire.Mode)
		}
		s.Mode = &mode
	}
	return nil
}

func (s *LayerAttributesStep) StepTag() string { return "layer/attr" }

func (s *LayerAttributesStep) PerformOn(session *Session) error {
	cursor, err := tree.NewCursor(&session.content, s.Id)
	if err != nil {
		return fromTreeError(err)
	}
	layer := cursor.ValueMut()
	if s.Pos != nil {
		layer.Attr.Pos = *s.Pos
	}
	if s.Alpha != nil {
		layer.Attr.Alpha = *s.Alpha
	}
	if s.Mode != nil {
		layer.Attr.Mode = *s.Mode
	}
	if s.Visible != nil {
		layer.Visible = *s.Visible
	}
	if s.Name != nil {
		layer.Name = *s.Name
	}
	return propagateChangesUp(session.blender, &session.content, s.Id)
}

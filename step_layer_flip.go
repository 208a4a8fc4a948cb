package rasteredit

import (
	"encoding/json"
	"fmt"
)

// FlipDirection names which axis LayerFlip mirrors a layer across.
type FlipDirection int

const (
	FlipHorizontally FlipDirection = iota
	FlipVertically
)

func (d FlipDirection) MarshalJSON() ([]byte, error) {
	switch d {
	case FlipHorizontally:
		return json.Marshal("horizontally")
	case FlipVertically:
		return json.Marshal("vertically")
	default:
		return nil, fmt.Errorf("rasteredit: unknown flip direction %d", d)
	}
}

func (d *FlipDirection) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "horizontally":
		*d = FlipHorizontally
	case "vertically":
		*d = FlipVertically
	default:
		return fmt.Errorf("rasteredit: unknown flip direction %q", s)
	}
	return nil
}

// LayerFlip mirrors a layer's image in place, horizontally or vertically.
type LayerFlip struct {
	Id        int           `json:"id"`
	Direction FlipDirection `json:"direction"`
}

func (s *LayerFlip) StepTag() string { return "layer/flip" }

func (s *LayerFlip) PerformOn(session *Session) error {
	layer, err := session.content.ValueMut(s.Id)
	if err != nil {
		return fromTreeError(err)
	}
	switch s.Direction {
	case FlipHorizontally:
		layer.Img.FlipHorizontally()
	case FlipVertically:
		layer.Img.FlipVertically()
	}
	return propagateChangesUp(session.blender, &session.content, s.Id)
}

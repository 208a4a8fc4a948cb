package rasteredit

import (
	"encoding/json"

	"github.com/gogpu/rasteredit/internal/pixel"
)

// DrawLine strokes a brush along a pointer track onto a layer. It's
// incremental: Start primes a ghost/zombie pair so the in-progress stroke
// previews without touching the layer's committed pixels, and each Extend
// call feeds one more tracked point, interpolating the gap from the
// previous point and sub-sampling every Distance-th interpolated point so
// the stamp doesn't redraw every single pixel of a fast stroke.
type DrawLine struct {
	Id       int        `json:"id"`
	Radius   float64    `json:"radius"`
	Color    Color      `json:"color"`
	Mode     BlendMode  `json:"-"`
	Hardness float64    `json:"hardness"`
	Track    []Position `json:"track"`
	Distance int        `json:"distance"`
	Skip     *int       `json:"skip"`
}

type drawLineWire struct {
	Id       int        `json:"id"`
	Radius   float64    `json:"radius"`
	Color    Color      `json:"color"`
	Mode     string     `json:"mode"`
	Hardness float64    `json:"hardness"`
	Track    []Position `json:"track"`
	Distance int        `json:"distance"`
	Skip     *int       `json:"skip"`
}

func (s DrawLine) MarshalJSON() ([]byte, error) {
	name, ok := blendModeNames[s.Mode]
	if !ok {
		return nil, applicationError("unknown blend mode %d", s.Mode)
	}
	return json.Marshal(drawLineWire{
		Id: s.Id, Radius: s.Radius, Color: s.Color, Mode: name,
		Hardness: s.Hardness, Track: s.Track, Distance: s.Distance, Skip: s.Skip,
	})
}

func (s *DrawLine) UnmarshalJSON(data []byte) error {
	var wire drawLineWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	mode, ok := blendModeValues[wire.Mode]
	if !ok {
		return userError("unknown blend mode %q", wire.Mode)
	}
	*s = DrawLine{
		Id: wire.Id, Radius: wire.Radius, Color: wire.Color, Mode: mode,
		Hardness: wire.Hardness, Track: wire.Track, Distance: wire.Distance, Skip: wire.Skip,
	}
	return nil
}

func (s *DrawLine) StepTag() string { return "draw/line" }

func (s *DrawLine) PerformOn(session *Session) error {
	return performIncrementalAsStep(s, session)
}

func (s *DrawLine) Start(session *Session) error {
	pending := &DrawLine{
		Id: s.Id, Radius: s.Radius, Color: s.Color, Mode: s.Mode,
		Hardness: s.Hardness, Distance: s.Distance, Skip: s.Skip,
	}
	session.context.PendingStep = pending

	layer, err := session.content.ValueMut(s.Id)
	if err != nil {
		return fromTreeError(err)
	}
	size := layer.Img.Size()
	layer.Ghost = &GhostImage{
		Img:   pixel.New(size.Width, size.Height),
		Mode:  s.Mode,
		Alpha: float64(s.Color.A) / 255,
	}
	layer.Zombie = layer.Img.Clone()
	return nil
}

func (s *DrawLine) Extend(session *Session, data Position) error {
	pending, ok := session.context.PendingStep.(*DrawLine)
	if !ok {
		return userError("Can't call expand without having initialized")
	}

	rootRect := session.content.RootValue().Rectangle()
	layer, err := session.content.ValueMut(pending.Id)
	if err != nil {
		return applicationError("Invalid ID in pending step")
	}

	var track []Position
	if len(pending.Track) > 0 {
		last := pending.Track[len(pending.Track)-1]
		if last == data {
			return nil
		}
		track = pixel.Interpolate(last, data)
	} else {
		track = []Position{data, data}
	}
	pending.Track = append(pending.Track, data)

	trackLen := len(track) - 1
	stillToSkip := 0
	if pending.Skip != nil {
		stillToSkip = *pending.Skip
	}
	if stillToSkip >= trackLen {
		remaining := stillToSkip - trackLen
		pending.Skip = &remaining
		return nil
	}
	nextSkip := s.Distance - ((trackLen - stillToSkip) % s.Distance)
	pending.Skip = &nextSkip

	var trackToDraw []Position
	for i := stillToSkip; i < len(track); i += s.Distance {
		trackToDraw = append(trackToDraw, track[i].Sub(layer.Attr.Pos))
	}

	if layer.Ghost == nil {
		return userError("Can't call expand without previous step matching up")
	}
	damage := layer.Ghost.Img.DrawLine(pixel.NewStamp(s.Color, s.Hardness, s.Radius), trackToDraw)
	damage = pixel.RectOf(damage.Position.Add(layer.Attr.Pos), damage.Size)
	damage = pixel.Intersect(damage, rootRect)
	return propagateDamage(session.blender, &session.content, pending.Id, damage)
}

func (s *DrawLine) Finish(session *Session) error {
	if err := mergeGhost(session.blender, &session.content, s.Id); err != nil {
		return err
	}
	if err := propagateChangesUp(session.blender, &session.content, s.Id); err != nil {
		return err
	}
	session.context.PendingStep = nil
	return nil
}

func (s *DrawLine) BreakUp() []Position {
	return s.Track
}

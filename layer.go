package rasteredit

import (
	"encoding/json"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/rasteredit/internal/pixel"
)

// BlendMode identifies one of the five ways a layer can be composited onto
// what's beneath it. It's an alias of pixel.Mode; rasteredit exposes it
// under the engine's own vocabulary since "blend mode" is the term the
// wire protocol and the editing steps use.
type BlendMode = pixel.Mode

const (
	BlendAlpha   = pixel.ModeAlpha
	BlendRemove  = pixel.ModeRemove
	BlendDarken  = pixel.ModeDarken
	BlendLighten = pixel.ModeLighten
	BlendScreen  = pixel.ModeScreen
)

var blendModeNames = map[BlendMode]string{
	BlendAlpha:   "alpha",
	BlendRemove:  "remove",
	BlendDarken:  "darken",
	BlendLighten: "lighten",
	BlendScreen:  "screen",
}

var blendModeValues = map[string]BlendMode{
	"alpha":   BlendAlpha,
	"remove":  BlendRemove,
	"darken":  BlendDarken,
	"lighten": BlendLighten,
	"screen":  BlendScreen,
}

// blendModeMarshalJSON and blendModeUnmarshalJSON encode a BlendMode as its
// wire name (BlendMode itself is a plain int alias, so it can't carry
// methods). Nothing in the package calls them; the step codecs look modes
// up in blendModeNames and blendModeValues directly.
func blendModeMarshalJSON(m BlendMode) ([]byte, error) {
	name, ok := blendModeNames[m]
	if !ok {
		return nil, fmt.Errorf("rasteredit: unknown blend mode %d", m)
	}
	return json.Marshal(name)
}

func blendModeUnmarshalJSON(data []byte) (BlendMode, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return 0, err
	}
	m, ok := blendModeValues[s]
	if !ok {
		return 0, fmt.Errorf("rasteredit: unknown blend mode %q", s)
	}
	return m, nil
}

// LayerAttributes describes a layer's placement and compositing settings.
type LayerAttributes struct {
	Pos   Position  `json:"pos"`
	Mode  BlendMode `json:"-"`
	Alpha float64   `json:"alpha"`
}

type layerAttributesWire struct {
	Pos   Position `json:"pos"`
	Mode  string   `json:"mode"`
	Alpha float64  `json:"alpha"`
}

func (a LayerAttributes) MarshalJSON() ([]byte, error) {
	name, ok := blendModeNames[a.Mode]
	if !ok {
		return nil, fmt.Errorf("rasteredit: unknown blend mode %d", a.Mode)
	}
	return json.Marshal(layerAttributesWire{Pos: a.Pos, Mode: name, Alpha: a.Alpha})
}

func (a *LayerAttributes) UnmarshalJSON(data []byte) error {
	var wire layerAttributesWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	mode, ok := blendModeValues[wire.Mode]
	if !ok {
		return fmt.Errorf("rasteredit: unknown blend mode %q", wire.Mode)
	}
	a.Pos, a.Mode, a.Alpha = wire.Pos, mode, wire.Alpha
	return nil
}

// LayerFlagKind distinguishes the four roles a layer can play in the tree.
type LayerFlagKind int

const (
	// FlagRoot marks the single, un-removable root of the content tree.
	FlagRoot LayerFlagKind = iota
	// FlagGroup marks a layer whose image is always a recomposite of its
	// children rather than directly painted content.
	FlagGroup
	// FlagPixel marks an ordinary paintable layer.
	FlagPixel
	// FlagText marks a layer whose content was generated from text (the
	// associated string is the source text).
	FlagText
)

// LayerFlag is the closed "is-a" tag on a Layer: Root, Group, Pixel, or
// Text(content).
type LayerFlag struct {
	Kind LayerFlagKind
	Text string // only meaningful when Kind == FlagText
}

func (f LayerFlag) MarshalJSON() ([]byte, error) {
	switch f.Kind {
	case FlagRoot:
		return json.Marshal(map[string]string{"type": "Root"})
	case FlagGroup:
		return json.Marshal(map[string]string{"type": "Group"})
	case FlagPixel:
		return json.Marshal(map[string]string{"type": "Pixel"})
	case FlagText:
		return json.Marshal(map[string]string{"type": "Text", "content": f.Text})
	default:
		return nil, fmt.Errorf("rasteredit: unknown layer flag %d", f.Kind)
	}
}

func (f *LayerFlag) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type    string `json:"type"`
		Content string `json:"content"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Type {
	case "Root":
		*f = LayerFlag{Kind: FlagRoot}
	case "Group":
		*f = LayerFlag{Kind: FlagGroup}
	case "Pixel":
		*f = LayerFlag{Kind: FlagPixel}
	case "Text":
		// Clients on different platforms compose the same glyphs with
		// different combining-character sequences; normalize to NFC so
		// two text layers with visually identical content compare equal.
		*f = LayerFlag{Kind: FlagText, Text: norm.NFC.String(raw.Content)}
	default:
		return fmt.Errorf("rasteredit: unknown layer flag %q", raw.Type)
	}
	return nil
}

// GhostImage is a layer's in-progress, not-yet-merged manipulation: the
// image being painted or the top layer of a pending merge-down, rendered
// with its own blend mode and alpha on top of the layer's Zombie (its
// pre-manipulation image).
type GhostImage struct {
	Img   *pixel.Image
	Mode  BlendMode
	Alpha float64
}

// Layer is a single node's value in the content tree.
type Layer struct {
	// Img is the actual, displayed result.
	Img *pixel.Image

	// Ghost and Zombie are both set, or both nil: an in-progress edit
	// renders Ghost over Zombie to produce the preview shown in Img,
	// without losing the pre-edit pixels until the edit finishes.
	Ghost  *GhostImage
	Zombie *pixel.Image

	Attr    LayerAttributes
	Flag    LayerFlag
	Visible bool
	Name    string
}

// DefaultLayer creates an empty, visible Pixel layer of the given size at
// (0, 0), with Alpha blending at full opacity.
func DefaultLayer(width, height int) Layer {
	return Layer{
		Img: pixel.New(width, height),
		Attr: LayerAttributes{
			Pos:   Position{X: 0, Y: 0},
			Mode:  BlendAlpha,
			Alpha: 1.0,
		},
		Flag:    LayerFlag{Kind: FlagPixel},
		Visible: true,
		Name:    "New Layer",
	}
}

// LayerFromContent creates a default layer wrapping an already-rendered
// image.
func LayerFromContent(content *pixel.Image) Layer {
	l := DefaultLayer(content.Width(), content.Height())
	l.Img = content
	return l
}

// Rectangle returns the layer's bounding rectangle in its parent's
// coordinate space.
func (l Layer) Rectangle() Rectangle {
	return pixel.NewRectangle(l.Attr.Pos.X, l.Attr.Pos.Y, l.Img.Width(), l.Img.Height())
}

// IsHit reports whether pos (in the layer's parent's coordinate space)
// lands on a non-transparent, visible pixel of the layer.
func (l Layer) IsHit(pos Position) bool {
	if !l.Visible {
		return false
	}
	xImage := pos.X - l.Attr.Pos.X
	yImage := pos.Y - l.Attr.Pos.Y
	if xImage < 0 || yImage < 0 {
		return false
	}
	if xImage >= l.Img.Width() || yImage >= l.Img.Height() {
		return false
	}
	return l.Img.Pixel(xImage, yImage).A != 0
}

// layerWire is the JSON shape a Layer serializes to: metadata only, never
// the pixel buffers. The original engine emitted a raw memory "pointer" so
// a WASM host could peek at live pixels without copying; this port has no
// such host, so Marker carries the layer's stable tree-node id instead — a
// value a client can use to correlate a layer across separate image fetches
// without it meaning anything in Go's own address space.
type layerWire struct {
	Attr    LayerAttributes `json:"attr"`
	Visible bool            `json:"visible"`
	Name    string          `json:"name"`
	Flag    LayerFlag       `json:"flag"`
	Size    [2]int          `json:"size"`
	Marker  int             `json:"pointer"`
}

// MarshalLayer encodes a layer's metadata (never its pixels) as JSON, using
// marker as the stable handle a client can reference it by.
func MarshalLayer(l Layer, marker int) ([]byte, error) {
	return json.Marshal(layerWire{
		Attr:    l.Attr,
		Visible: l.Visible,
		Name:    l.Name,
		Flag:    l.Flag,
		Size:    [2]int{l.Img.Width(), l.Img.Height()},
		Marker:  marker,
	})
}

package rasteredit

import (
	"encoding/json"
	"fmt"

	"github.com/gogpu/rasteredit/internal/pixel"
)

// ImageSource identifies where an ImageDto's Data should be read from.
type ImageSource int

const (
	// ImageSourceBase64PNG means Data is a base64-encoded PNG.
	ImageSourceBase64PNG ImageSource = iota
	// ImageSourceMultipart means Data is a key into the Session's context
	// image map, populated out of band via SetContextEntry (e.g. from a
	// multipart upload the wire transport handled separately).
	ImageSourceMultipart
)

func (s ImageSource) MarshalJSON() ([]byte, error) {
	switch s {
	case ImageSourceBase64PNG:
		return json.Marshal("encode/png")
	case ImageSourceMultipart:
		return json.Marshal("multipart")
	default:
		return nil, fmt.Errorf("rasteredit: unknown image source %d", s)
	}
}

func (s *ImageSource) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	switch str {
	case "encode/png":
		*s = ImageSourceBase64PNG
	case "multipart":
		*s = ImageSourceMultipart
	default:
		return fmt.Errorf("rasteredit: unknown image source %q", str)
	}
	return nil
}

// ImageDto is the wire representation of an image attached to a step: a
// LayerCreateFromData step can either carry a base64 PNG inline, or name a
// key the caller already deposited in the session's context via
// SetContextEntry (for transports that ship pixel data out of band, e.g. a
// multipart upload alongside the JSON step).
type ImageDto struct {
	Src  ImageSource `json:"src"`
	Data string      `json:"data"`
}

// ToImage resolves the DTO against a session's context image map.
func (d ImageDto) ToImage(context map[string]*pixel.Image) (*pixel.Image, error) {
	switch d.Src {
	case ImageSourceBase64PNG:
		img, err := pixel.FromBase64(d.Data)
		if err != nil {
			return nil, fmt.Errorf("rasteredit: decoding base64 PNG: %w", err)
		}
		return img, nil
	case ImageSourceMultipart:
		img, ok := context[d.Data]
		if !ok {
			return nil, fmt.Errorf("rasteredit: no such context image %q", d.Data)
		}
		return img, nil
	default:
		return nil, fmt.Errorf("rasteredit: unknown image source %d", d.Src)
	}
}

// stepEnvelope is the shared wire shape every Step decodes through: a
// discriminating "type" tag plus the rest of the step's own fields inlined
// alongside it.
type stepEnvelope struct {
	Type string `json:"type"`
}

// UnmarshalStep decodes a JSON-encoded step by its "type" tag into the
// concrete Step implementation it names.
func UnmarshalStep(data []byte) (Step, error) {
	var env stepEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	var step Step
	switch env.Type {
	case "project/create":
		var s ProjectCreate
		step = &s
	case "compound":
		var s Compound
		step = &s
	case "layer/create/empty":
		var s LayerCreateEmpty
		step = &s
	case "layer/create/from_data":
		var s LayerCreateFromData
		step = &s
	case "layer/create/group":
		var s LayerCreateGroup
		step = &s
	case "layer/remove":
		var s LayerRemove
		step = &s
	case "layer/move_relative":
		var s LayerMoveRelative
		step = &s
	case "layer/move":
		var s LayerMove
		step = &s
	case "layer/flip":
		var s LayerFlip
		step = &s
	case "layer/merge_down":
		var s LayerMergeDown
		step = &s
	case "layer/duplicate":
		var s LayerDuplicate
		step = &s
	case "layer/attr":
		var s LayerAttributesStep
		step = &s
	case "effect/noise/gaussian":
		var s EffectNoiseGaussian
		step = &s
	case "effect/color/grayscale":
		var s EffectColorGrayscale
		step = &s
	case "draw/line":
		var s DrawLine
		step = &s
	default:
		return nil, fmt.Errorf("rasteredit: unknown step type %q", env.Type)
	}
	if err := json.Unmarshal(data, step); err != nil {
		return nil, err
	}
	return step, nil
}

// MarshalStep encodes a step as JSON, inlining its "type" discriminator
// tag next to its own fields the way UnmarshalStep expects to read it back.
func MarshalStep(step Step) ([]byte, error) {
	body, err := json.Marshal(step)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	tag, err := json.Marshal(step.StepTag())
	if err != nil {
		return nil, err
	}
	fields["type"] = tag
	return json.Marshal(fields)
}

func decodeCompoundSteps(data []byte) ([]Step, error) {
	var wrapped struct {
		Steps []json.RawMessage `json:"steps"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, err
	}
	out := make([]Step, len(wrapped.Steps))
	for i, r := range wrapped.Steps {
		step, err := UnmarshalStep(r)
		if err != nil {
			return nil, err
		}
		out[i] = step
	}
	return out, nil
}

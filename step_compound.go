package rasteredit

import "encoding/json"

// Compound bundles several steps so they're performed, and recorded in
// history, as a single unit. There's no rollback if a later step in the
// bundle fails — earlier steps' effects stick.
type Compound struct {
	Steps []Step `json:"steps"`
}

func (c *Compound) StepTag() string { return "compound" }

func (c *Compound) PerformOn(s *Session) error {
	for _, step := range c.Steps {
		if err := step.PerformOn(s); err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON encodes Compound's steps, each with its own "type" tag, under
// the "steps" field.
func (c Compound) MarshalJSON() ([]byte, error) {
	raw := make([]json.RawMessage, len(c.Steps))
	for i, step := range c.Steps {
		encoded, err := MarshalStep(step)
		if err != nil {
			return nil, err
		}
		raw[i] = encoded
	}
	return json.Marshal(struct {
		Steps []json.RawMessage `json:"steps"`
	}{Steps: raw})
}

// UnmarshalJSON decodes Compound from its "steps" field, each entry
// dispatched by its own "type" tag.
func (c *Compound) UnmarshalJSON(data []byte) error {
	steps, err := decodeCompoundSteps(data)
	if err != nil {
		return err
	}
	c.Steps = steps
	return nil
}

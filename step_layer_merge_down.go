package rasteredit

// LayerMergeDown merges the layer Id into whichever layer sits immediately
// beneath it in paint order, as a GhostImage on top of the lower layer's
// pre-merge pixels. If no layer exists beneath Id at all, that's an
// application error: there's nothing to merge into. If a layer does exist
// beneath Id but either layer isn't a Pixel layer (e.g. merging into or out
// of a Group), the merge is silently skipped instead.
type LayerMergeDown struct {
	Id int `json:"id"`
}

func (s *LayerMergeDown) StepTag() string { return "layer/merge_down" }

func (s *LayerMergeDown) PerformOn(session *Session) error {
	order := session.content.Traverse()
	reversed := make([]int, len(order))
	for i, idx := range order {
		reversed[len(order)-1-i] = idx
	}
	beneathPos := -1
	for i, idx := range reversed {
		if idx == s.Id {
			beneathPos = i + 1
			break
		}
	}
	if beneathPos < 0 || beneathPos >= len(reversed) {
		return applicationError("No pixel layer beneath")
	}
	beneathIdx := reversed[beneathPos]

	top, err := session.content.GetValue(s.Id)
	if err != nil {
		return fromTreeError(err)
	}
	if top.Flag.Kind != FlagPixel {
		return nil
	}

	bottom, err := session.content.ValueMut(beneathIdx)
	if err != nil {
		return fromTreeError(err)
	}
	if bottom.Flag.Kind != FlagPixel {
		return nil
	}

	bottom.Ghost = &GhostImage{Img: top.Img, Mode: top.Attr.Mode, Alpha: top.Attr.Alpha}
	bottom.Zombie = bottom.Img.Clone()

	if err := mergeGhost(session.blender, &session.content, beneathIdx); err != nil {
		return err
	}
	if err := removeLayer(session.blender, &session.content, s.Id); err != nil {
		return err
	}
	session.context.Idx = &beneathIdx
	return nil
}

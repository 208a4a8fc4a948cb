package rasteredit

import (
	"strconv"

	"github.com/gogpu/rasteredit/internal/pixel"
	"github.com/gogpu/rasteredit/internal/tree"
)

// LayerCreateGroup adds a new, empty Group layer under the content root and
// spawns it at MoveIdx (the root, if unset).
type LayerCreateGroup struct {
	MoveIdx *int `json:"move_idx"`
}

func (s *LayerCreateGroup) StepTag() string { return "layer/create/group" }

func (s *LayerCreateGroup) PerformOn(session *Session) error {
	size := session.Size()
	layer := Layer{
		Img: pixel.New(size.Width, size.Height),
		Attr: LayerAttributes{
			Pos:   Position{X: 0, Y: 0},
			Mode:  BlendAlpha,
			Alpha: 1.0,
		},
		Flag:    LayerFlag{Kind: FlagGroup},
		Visible: true,
	}

	rootIdx := session.RootIndex()
	cursor, err := tree.NewCursor(&session.content, rootIdx)
	if err != nil {
		return fromTreeError(err)
	}
	idx := cursor.AddChildAndGoDown(layer)
	added := cursor.ValueMut()
	added.Name = "Group #" + strconv.Itoa(idx)

	moveIdx := rootIdx
	if s.MoveIdx != nil {
		moveIdx = *s.MoveIdx
	}
	if err := moveLayer(session, idx, moveIdx); err != nil {
		return err
	}
	session.context.Idx = &idx
	return nil
}

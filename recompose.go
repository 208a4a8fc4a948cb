package rasteredit

import (
	"strconv"

	"github.com/gogpu/rasteredit/internal/pixel"
	"github.com/gogpu/rasteredit/internal/tree"
)

// removeLayer deletes the node at idx from the content tree and
// recomposites from its former parent up.
func removeLayer(blender pixel.Blender, content *tree.Tree[Layer], idx int) error {
	parent, err := content.GetParent(idx)
	if err != nil {
		return fromTreeError(err)
	}
	if err := content.RemoveEntry(idx); err != nil {
		return fromTreeError(err)
	}
	return propagateChangesUp(blender, content, parent)
}

// mergeGhost blends the layer's ghost over its zombie into its own image,
// then clears both, committing whatever in-progress preview was pending.
func mergeGhost(blender pixel.Blender, content *tree.Tree[Layer], idx int) error {
	cursor, err := tree.NewCursor(content, idx)
	if err != nil {
		return fromTreeError(err)
	}
	layer := cursor.ValueMut()
	if layer.Ghost == nil || layer.Zombie == nil {
		return applicationError("Can't merge non-existing ghost")
	}
	logger().Debug("merging ghost", "layer", layer.Name)
	layer.Img = blender.Blend(
		layer.Ghost.Mode,
		layer.Rectangle(),
		pixel.Layer{Img: layer.Ghost.Img, Pos: layer.Attr.Pos, Alpha: layer.Ghost.Alpha},
		pixel.Layer{Img: layer.Zombie, Pos: layer.Attr.Pos, Alpha: 1.0},
	)
	layer.Ghost = nil
	layer.Zombie = nil
	return nil
}

// propagateChangesUp recomposites changed and every one of its ancestors,
// bottom-up: a Pixel layer with an active ghost re-blends its preview, a
// Group or Root layer re-blends all of its children, and the result keeps
// climbing until it reaches the root.
func propagateChangesUp(blender pixel.Blender, content *tree.Tree[Layer], changed int) error {
	cursor, err := tree.NewCursor(content, changed)
	if err != nil {
		return fromTreeError(err)
	}
	layer := cursor.ValueMut()

	if layer.Flag.Kind == FlagPixel {
		logger().Debug("propagate changes", "layer", layer.Name)
		if layer.Ghost != nil && layer.Zombie != nil {
			layer.Img = blender.Blend(
				layer.Ghost.Mode,
				layer.Rectangle(),
				pixel.Layer{Img: layer.Ghost.Img, Pos: layer.Attr.Pos, Alpha: layer.Ghost.Alpha},
				pixel.Layer{Img: layer.Zombie, Pos: layer.Attr.Pos, Alpha: layer.Attr.Alpha},
			)
		}
		cursor.GoUp()
		return propagateChangesUp(blender, content, cursor.Index())
	}

	rectangle := layer.Rectangle()
	children := cursor.Children()
	args := make([]pixel.BlendChild, len(children))
	for i, entry := range children {
		args[i] = pixel.BlendChild{
			Mode:    entry.Value.Attr.Mode,
			Img:     entry.Value.Img,
			Pos:     entry.Value.Attr.Pos,
			Alpha:   entry.Value.Attr.Alpha,
			Visible: entry.Value.Visible,
			Marker:  uint64(entry.Index),
		}
	}
	result := blender.BlendAll(rectangle, args)
	layer = cursor.ValueMut()
	layer.Img = result

	if cursor.IsOnRoot() {
		return nil
	}
	cursor.GoUp()
	return propagateChangesUp(blender, content, cursor.Index())
}

// propagateDamage re-renders only the given rectangle of changed and its
// ancestors, rather than the whole subtree: it cleans the damaged area,
// re-blends every visible child's overlap with it, re-blends any active
// ghost-over-zombie overlap, then climbs to the parent.
func propagateDamage(blender pixel.Blender, content *tree.Tree[Layer], changed int, damage Rectangle) error {
	layer, err := content.ValueMut(changed)
	if err != nil {
		return fromTreeError(err)
	}
	childIdxs, err := content.GetChildren(changed)
	if err != nil {
		return fromTreeError(err)
	}

	relativeDamage := pixel.RectOf(damage.Position.Sub(layer.Attr.Pos), damage.Size)
	layer.Img.Clean(relativeDamage)

	for _, childIdx := range childIdxs {
		child, err := content.GetValue(childIdx)
		if err != nil {
			return fromTreeError(err)
		}
		if !child.Visible {
			continue
		}
		blender.BlendDamaged(
			child.Attr.Mode,
			pixel.Layer{Img: layer.Img, Pos: layer.Attr.Pos, Alpha: layer.Attr.Alpha},
			pixel.Layer{Img: child.Img, Pos: child.Attr.Pos, Alpha: child.Attr.Alpha},
			damage,
		)
	}

	if layer.Ghost != nil && layer.Zombie != nil {
		blender.BlendDamagedInto(
			layer.Ghost.Mode,
			damage,
			pixel.Positioned{Img: layer.Img, Pos: layer.Attr.Pos},
			pixel.Layer{Img: layer.Ghost.Img, Pos: layer.Attr.Pos, Alpha: layer.Ghost.Alpha},
			pixel.Layer{Img: layer.Zombie, Pos: layer.Attr.Pos, Alpha: 1.0},
		)
	}

	if changed == content.GetRoot() {
		return nil
	}
	parentIdx, err := content.GetParent(changed)
	if err != nil {
		return fromTreeError(err)
	}
	return propagateDamage(blender, content, parentIdx, damage)
}

// addLayer creates a new Pixel layer wrapping content under parent, naming
// it name if given or "Layer # {idx}" otherwise, and returns its new index.
func addLayer(s *Session, parent int, position *Position, content *pixel.Image, name *string) (int, error) {
	pos := Position{X: 0, Y: 0}
	if position != nil {
		pos = *position
	}
	layer := LayerFromContent(content)
	layer.Attr.Pos = pos

	cursor, err := tree.NewCursor(&s.content, parent)
	if err != nil {
		return 0, fromTreeError(err)
	}
	if cursor.Value().Flag.Kind == FlagPixel {
		return 0, userError("Can't create sub layer on pixel layer")
	}
	idx := cursor.AddChildAndGoDown(layer)
	added := cursor.ValueMut()
	if name != nil {
		added.Name = *name
	} else {
		added.Name = layerDefaultName(idx)
	}
	return idx, nil
}

// spawnLayer moves the layer id into place at referenceIdx, redirecting a
// positive reference that happens to name a Group layer to become that
// group's first child instead of a sibling inserted before it.
func spawnLayer(s *Session, id int, referenceIdx int) error {
	if referenceIdx > 0 {
		if layer, err := s.content.GetValue(referenceIdx); err == nil {
			if layer.Flag.Kind == FlagGroup {
				return moveLayer(s, id, -referenceIdx)
			}
		}
	}
	return moveLayer(s, id, referenceIdx)
}

// moveLayer relocates the content-tree node id to the spot moveIdx names.
func moveLayer(s *Session, id int, moveIdx int) error {
	if err := s.content.MoveNode(id, moveIdx); err != nil {
		return fromTreeError(err)
	}
	return nil
}

func layerDefaultName(idx int) string {
	return "Layer # " + strconv.Itoa(idx)
}

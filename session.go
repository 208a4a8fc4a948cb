package rasteredit

import (
	"fmt"

	"github.com/gogpu/rasteredit/internal/pixel"
	"github.com/gogpu/rasteredit/internal/tree"
)

// EngineContext holds the parts of a Session's state that exist only to
// serve in-flight, multi-call API usage: images attached out of band by
// SetContextEntry, the step currently being built incrementally, and the
// index of the layer that the last Perform call's step created or selected
// (nil when that step set none).
type EngineContext struct {
	Images      map[string]*pixel.Image
	PendingStep Step
	Idx         *int
}

// Session is a single image editing session: a content tree of Layers, a
// history tree of Moments recording every step ever performed (with a
// movable current position so undo/redo can branch non-linearly), and the
// Blender used to recomposite layers as they change.
type Session struct {
	Name    string
	Version string

	history   tree.Tree[Moment]
	current   int
	redoStack []int
	content   tree.Tree[Layer]
	context   EngineContext
	blender   pixel.Blender
	clock     Clock
}

// NewSession creates a session with a single, empty root layer of the
// given size.
func NewSession(width, height int, opts ...SessionOption) *Session {
	logger().Info("initializing session", "width", width, "height", height)
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	blender := options.blender
	if blender == nil {
		blender = pixel.NewSoftwareBlender()
	}
	clock := options.clock
	if clock == nil {
		clock = realClock{}
	}

	rootLayer := DefaultLayer(width, height)
	rootLayer.Flag = LayerFlag{Kind: FlagRoot}

	initStep := &ProjectCreate{Size: Size{Width: width, Height: height}}
	initMoment := Moment{
		Meta: Meta{Timestamp: clock.Now(), User: "default"},
		Data: initStep,
	}

	return &Session{
		Name:    "default",
		Version: "v1",
		history: *tree.New(initMoment),
		current: 0,
		content: *tree.New(rootLayer),
		context: EngineContext{Images: map[string]*pixel.Image{}},
		blender: blender,
		clock:   clock,
	}
}

// Size returns the canvas size, i.e. the root layer's image size.
func (s *Session) Size() Size {
	return s.content.RootValue().Img.Size()
}

// Content returns the root layer's currently composited image.
func (s *Session) Content() *pixel.Image {
	return s.content.RootValue().Img
}

// Undoable reports whether Undo has anything to undo.
func (s *Session) Undoable() bool {
	return s.current != s.history.GetRoot()
}

// Redoable reports whether Redo has anything to redo.
func (s *Session) Redoable() bool {
	return len(s.redoStack) > 0
}

// SetContextEntry attaches an image to the session under key, for a
// LayerCreateFromData step whose ImageDto references it by key instead of
// carrying the pixels inline.
func (s *Session) SetContextEntry(key string, img *pixel.Image) {
	s.context.Images[key] = img
}

// Layer returns the layer at idx, or an error if there is no such layer.
func (s *Session) Layer(idx int) (Layer, error) {
	l, err := s.content.GetValue(idx)
	if err != nil {
		return Layer{}, fromTreeError(err)
	}
	return l, nil
}

// Children returns the content-tree indices of idx's children, in order.
func (s *Session) Children(idx int) ([]int, error) {
	out, err := s.content.GetChildren(idx)
	if err != nil {
		return nil, fromTreeError(err)
	}
	return out, nil
}

// RootIndex returns the content tree's root index.
func (s *Session) RootIndex() int {
	return s.content.GetRoot()
}

// Perform applies a single step as one atomic unit (an IncrementalStep
// performs its whole Start/Extend*/Finish sequence in one call), records it
// as a new Moment, and clears the redo stack. It returns the index the
// step most recently touched, if any.
func (s *Session) Perform(step Step) (*int, error) {
	debugStep("Performing", step)
	s.context.Idx = nil
	if err := step.PerformOn(s); err != nil {
		return nil, err
	}
	idx, err := s.pushMoment(step)
	if err != nil {
		return nil, err
	}
	s.current = idx
	s.redoStack = nil
	return s.context.Idx, nil
}

func (s *Session) pushMoment(step Step) (int, error) {
	moment := Moment{Meta: Meta{Timestamp: s.clock.Now(), User: "default"}, Data: step}
	cursor, err := tree.NewCursor(&s.history, s.current)
	if err != nil {
		return 0, fromTreeError(err)
	}
	idx := cursor.AddChildAndGoDown(moment)
	return idx, nil
}

// FirstHitLayer returns the topmost Pixel layer whose non-transparent
// pixels cover (x, y), or nil if none does.
func (s *Session) FirstHitLayer(x, y int) *int {
	order := s.content.Traverse()
	for i := len(order) - 1; i >= 0; i-- {
		idx := order[i]
		layer, err := s.content.GetValue(idx)
		if err != nil {
			continue
		}
		if layer.Flag.Kind == FlagPixel && layer.IsHit(Position{X: x, Y: y}) {
			return &idx
		}
	}
	return nil
}

// Undo moves current to its parent moment and rebuilds the content tree
// from scratch by replaying every step from the history root up to the new
// current position. The history's first moment must always be a
// ProjectCreate.
func (s *Session) Undo() error {
	if !s.Undoable() {
		return userError("Can't undo without anything to undo")
	}
	s.redoStack = append(s.redoStack, s.current)
	parentIdx, err := s.history.GetParent(s.current)
	if err != nil {
		s.redoStack = s.redoStack[:len(s.redoStack)-1]
		return fromTreeError(err)
	}
	s.current = parentIdx

	path := []int{parentIdx}
	temp := parentIdx
	for temp != s.history.GetRoot() {
		temp, err = s.history.GetParent(temp)
		if err != nil {
			return fromTreeError(err)
		}
		path = append(path, temp)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	initialized := false
	for _, idx := range path {
		moment, err := s.history.GetValue(idx)
		if err != nil {
			return fromTreeError(err)
		}
		if pc, ok := moment.Data.(*ProjectCreate); ok {
			rootLayer := DefaultLayer(pc.Size.Width, pc.Size.Height)
			rootLayer.Flag = LayerFlag{Kind: FlagRoot}
			s.content = *tree.New(rootLayer)
			initialized = true
			continue
		}
		if !initialized {
			return applicationError("Uninitialized undoing")
		}
		debugStep("Redoing", moment.Data)
		if err := moment.Data.PerformOn(s); err != nil {
			return err
		}
	}
	return nil
}

// Redo pops the most recently undone moment and replays just that one step
// against the current content tree.
func (s *Session) Redo() error {
	if len(s.redoStack) == 0 {
		return userError("Nothing to redo")
	}
	idx := s.redoStack[len(s.redoStack)-1]
	s.redoStack = s.redoStack[:len(s.redoStack)-1]

	parent, err := s.history.GetParent(idx)
	if err != nil {
		return fromTreeError(err)
	}
	if parent != s.current {
		return applicationError("Inconsistent redo")
	}
	moment, err := s.history.GetValue(idx)
	if err != nil {
		return fromTreeError(err)
	}
	s.current = idx
	return moment.Data.PerformOn(s)
}

// Reconstruct replays steps (whose first element must be a ProjectCreate)
// against a fresh Session pre-loaded with context, producing the resulting
// session from scratch.
func Reconstruct(steps []Step, context map[string]*pixel.Image, opts ...SessionOption) (*Session, error) {
	if len(steps) == 0 {
		return nil, userError("No step provided")
	}
	pc, ok := steps[0].(*ProjectCreate)
	if !ok {
		return nil, userError("Create project has to be first step")
	}
	s := NewSession(pc.Size.Width, pc.Size.Height, opts...)
	s.context = EngineContext{Images: context}
	for _, step := range steps[1:] {
		if _, err := s.Perform(step); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// StartStep begins an incremental step, stashing it as the session's
// pending step.
func (s *Session) StartStep(step IncrementalStep) error {
	return step.Start(s)
}

// ExtendStep feeds one more point to whichever incremental step is
// currently pending.
func (s *Session) ExtendStep(x, y int) error {
	pending, ok := s.context.PendingStep.(IncrementalStep)
	if !ok {
		return userError("Can't extend without starting")
	}
	return pending.Extend(s, Position{X: x, Y: y})
}

// FinishStep commits whichever incremental step is currently pending: it
// records the pending step as a single Moment (so undo/redo sees the whole
// gesture as one unit, not one Moment per increment), then lets the step
// itself clean up (merge its ghost, clear the pending marker).
func (s *Session) FinishStep() error {
	pending := s.context.PendingStep
	if pending == nil {
		return userError("Can't finish without starting")
	}
	incr, ok := pending.(IncrementalStep)
	if !ok {
		return userError("Can't finish without starting")
	}
	idx, err := s.pushMoment(pending)
	if err != nil {
		return err
	}
	s.current = idx
	s.context.PendingStep = nil
	if err := incr.Finish(s); err != nil {
		return err
	}
	s.blender.Clean()
	return nil
}

// MoveLayerUp moves the layer one spot up the paint order: into the layer
// above it if that's a group, otherwise above it, or up out of its own
// group if it's already at the top of one.
func (s *Session) MoveLayerUp(idx int) error {
	parentIdx, err := s.content.GetParent(idx)
	if err != nil {
		return fromTreeError(err)
	}
	siblings, err := s.content.GetChildren(parentIdx)
	if err != nil {
		return fromTreeError(err)
	}
	listIdx, found := indexOf(siblings, idx)
	if !found {
		return userError("No such node")
	}

	if listIdx+1 < len(siblings) {
		neighborIdx := siblings[listIdx+1]
		neighbor, err := s.content.GetValue(neighborIdx)
		if err != nil {
			return applicationError("Inconsistent")
		}
		var moveIdx int
		if neighbor.Flag.Kind == FlagGroup {
			children, _ := s.content.GetChildren(neighborIdx)
			if len(children) > 0 {
				moveIdx = children[0]
			} else {
				moveIdx = -neighborIdx
			}
		} else if listIdx+2 < len(siblings) {
			moveIdx = siblings[listIdx+2]
		} else {
			moveIdx = -parentIdx
		}
		if err := moveLayer(s, idx, moveIdx); err != nil {
			return err
		}
	} else {
		if parentIdx == s.content.GetRoot() {
			return nil
		}
		grandparentIdx, err := s.content.GetParent(parentIdx)
		if err != nil {
			return fromTreeError(err)
		}
		parentSiblings, err := s.content.GetChildren(grandparentIdx)
		if err != nil {
			return fromTreeError(err)
		}
		parentListIdx, found := indexOf(parentSiblings, parentIdx)
		if !found {
			return userError("No such node")
		}
		var moveIdx int
		if parentListIdx+1 < len(parentSiblings) {
			moveIdx = parentSiblings[parentListIdx+1]
		} else {
			moveIdx = -grandparentIdx
		}
		if err := moveLayer(s, idx, moveIdx); err != nil {
			return err
		}
	}

	if err := propagateChangesUp(s.blender, &s.content, idx); err != nil {
		return err
	}
	return propagateChangesUp(s.blender, &s.content, parentIdx)
}

// MoveLayerDown is MoveLayerUp's mirror image: one spot down the paint
// order.
func (s *Session) MoveLayerDown(idx int) error {
	parentIdx, err := s.content.GetParent(idx)
	if err != nil {
		return fromTreeError(err)
	}
	siblings, err := s.content.GetChildren(parentIdx)
	if err != nil {
		return fromTreeError(err)
	}
	listIdx, found := indexOf(siblings, idx)
	if !found {
		return userError("No such node")
	}

	if listIdx-1 >= 0 {
		neighborIdx := siblings[listIdx-1]
		neighbor, err := s.content.GetValue(neighborIdx)
		if err != nil {
			return applicationError("Inconsistent")
		}
		moveIdx := neighborIdx
		if neighbor.Flag.Kind == FlagGroup {
			moveIdx = -neighborIdx
		}
		if err := moveLayer(s, idx, moveIdx); err != nil {
			return err
		}
	} else {
		if parentIdx == s.content.GetRoot() {
			return nil
		}
		grandparentIdx, err := s.content.GetParent(parentIdx)
		if err != nil {
			return fromTreeError(err)
		}
		parentSiblings, err := s.content.GetChildren(grandparentIdx)
		if err != nil {
			return fromTreeError(err)
		}
		parentListIdx, found := indexOf(parentSiblings, parentIdx)
		if !found {
			return userError("No such node")
		}
		moveIdx := grandparentIdx
		if parentListIdx < len(parentSiblings) {
			moveIdx = parentSiblings[parentListIdx]
		}
		if err := moveLayer(s, idx, moveIdx); err != nil {
			return err
		}
	}

	if err := propagateChangesUp(s.blender, &s.content, idx); err != nil {
		return err
	}
	return propagateChangesUp(s.blender, &s.content, parentIdx)
}

func indexOf(haystack []int, needle int) (int, bool) {
	for i, v := range haystack {
		if v == needle {
			return i, true
		}
	}
	return 0, false
}

// debugStep renders step as JSON for a debug log line, mirroring the
// original engine's log_debug helper.
func debugStep(message string, step Step) {
	encoded, err := MarshalStep(step)
	if err != nil {
		logger().Debug(message, "error", err)
		return
	}
	logger().Debug(fmt.Sprintf("%s: %s", message, encoded))
}

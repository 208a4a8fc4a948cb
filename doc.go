// Package rasteredit provides the core of a layered raster image editor:
// a layer tree, a non-linear undo/redo history tree, and a recomposition
// engine that keeps ancestor layers in sync as edits are applied.
//
// # Overview
//
// A Session holds two trees: content (the layer tree being edited) and
// history (every Step ever performed, with a movable current position so
// undo/redo can branch non-linearly). Performing a Step mutates the layer
// tree and recomposites the affected region bottom-up via Blender.
//
// # Quick Start
//
//	import "github.com/gogpu/rasteredit"
//
//	s := rasteredit.NewSession(512, 512)
//	idx, err := s.Perform(&rasteredit.LayerCreateEmpty{})
//
//	// Draw a stroke incrementally (mouse-down / mouse-move / mouse-up)
//	line := &rasteredit.DrawLine{Id: *idx, Radius: 12, Color: rasteredit.Color{A: 255}, Distance: 1}
//	s.StartStep(line)
//	s.ExtendStep(10, 10)
//	s.ExtendStep(40, 40)
//	s.FinishStep()
//
//	png, _ := s.Content().EncodeBase64PNG()
//
// # Architecture
//
// The module is organized into:
//   - Public API: Session, Layer, Step (and the fifteen concrete steps)
//   - internal/tree: the generic arena tree and cursor shared by both the
//     content and history trees
//   - internal/pixel: the straight-alpha Image buffer and the Blender
//     capability (SoftwareBlender, AcceleratedBlender)
//
// # Coordinate System
//
// Uses standard raster-graphics coordinates: origin (0,0) at top-left, x
// increases right, y increases down. Layer positions are offsets of a
// layer's image within its parent's coordinate space.
//
// # Concurrency
//
// A Session is not safe for concurrent use. Callers serialize access the
// same way a UI event loop serializes pointer-down/move/up handling.
package rasteredit

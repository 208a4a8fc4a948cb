package rasteredit

import "github.com/gogpu/rasteredit/internal/pixel"

// Color, RGBA and the geometry types are defined in internal/pixel because
// the Image and Blender types there need them natively; rasteredit re-
// exports them as aliases so callers never need to import internal/pixel
// themselves.
type (
	Color     = pixel.Color
	RGBA      = pixel.RGBA
	Position  = pixel.Position
	Size      = pixel.Size
	Rectangle = pixel.Rectangle
)

var (
	Transparent = pixel.Transparent
	Black       = pixel.Black
	Red         = pixel.Red
)

// ColorFromRGBA converts a straight-alpha float RGBA back to an 8-bit Color.
func ColorFromRGBA(c RGBA) Color { return pixel.ColorFromRGBA(c) }

package pixel

import (
	"fmt"
	"math"
)

// Position is an integer 2D point in layer or canvas coordinates.
type Position struct {
	X, Y int
}

// Size is an integer width/height pair.
type Size struct {
	Width, Height int
}

func (p Position) String() string { return fmt.Sprintf("pos[%d,%d]", p.X, p.Y) }
func (s Size) String() string     { return fmt.Sprintf("size[%d,%d]", s.Width, s.Height) }

// Add returns p+q.
func (p Position) Add(q Position) Position { return Position{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Position) Sub(q Position) Position { return Position{p.X - q.X, p.Y - q.Y} }

// DistanceTo returns the Euclidean distance between p and q.
func (p Position) DistanceTo(q Position) float64 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Interpolate returns every integer position on the line from a to b,
// including both endpoints, using the symmetric, all-octant form of
// Bresenham's algorithm: two independent threshold checks per step (rather
// than an either/or "steep vs. shallow" branch) so the walked path depends
// only on the line's geometry, not on which endpoint is named first.
// Interpolate(b, a) is therefore always the exact reverse of Interpolate(a,
// b), which the incremental draw/line step relies on when a stroke track
// is replayed starting from either end.
func Interpolate(a, b Position) []Position {
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	x, y := a.X, a.Y
	err := dx - dy
	var result []Position
	for {
		result = append(result, Position{x, y})
		if x == b.X && y == b.Y {
			return result
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Rectangle is an axis-aligned integer rectangle.
type Rectangle struct {
	Position Position
	Size     Size
}

// NewRectangle builds a rectangle from raw coordinates.
func NewRectangle(x, y, width, height int) Rectangle {
	return Rectangle{Position: Position{x, y}, Size: Size{width, height}}
}

// RectOf builds a rectangle from a position and size.
func RectOf(pos Position, size Size) Rectangle {
	return Rectangle{Position: pos, Size: size}
}

func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle<x=%d, y=%d, w=%d, h=%d>", r.Position.X, r.Position.Y, r.Size.Width, r.Size.Height)
}

// Intersect returns the overlapping region of a and b. If the rectangles
// don't overlap, the result has a non-positive width or height rather than
// wrapping to a huge unsigned value (a quirk of the original's u32 cast that
// this port deliberately avoids).
func Intersect(a, b Rectangle) Rectangle {
	upperX := max(a.Position.X, b.Position.X)
	upperY := max(a.Position.Y, b.Position.Y)
	lowerX := min(a.Position.X+a.Size.Width, b.Position.X+b.Size.Width)
	lowerY := min(a.Position.Y+a.Size.Height, b.Position.Y+b.Size.Height)
	return Rectangle{
		Position: Position{upperX, upperY},
		Size:     Size{max(lowerX-upperX, 0), max(lowerY-upperY, 0)},
	}
}

// Intersectn intersects a whole slice of rectangles in sequence.
func Intersectn(rectangles []Rectangle) Rectangle {
	result := Intersect(rectangles[0], rectangles[1])
	for _, r := range rectangles {
		result = Intersect(result, r)
	}
	return result
}

// Points returns every integer position covered by r, in global coordinates.
func (r Rectangle) Points() []Position {
	result := make([]Position, 0, r.Size.Width*r.Size.Height)
	for x := 0; x < r.Size.Width; x++ {
		for y := 0; y < r.Size.Height; y++ {
			result = append(result, Position{x + r.Position.X, y + r.Position.Y})
		}
	}
	return result
}

// Bounding returns the smallest rectangle containing both a and b.
func Bounding(a, b Rectangle) Rectangle {
	upperX := min(a.Position.X, b.Position.X)
	upperY := min(a.Position.Y, b.Position.Y)
	lowerX := max(a.Position.X+a.Size.Width, b.Position.X+b.Size.Width)
	lowerY := max(a.Position.Y+a.Size.Height, b.Position.Y+b.Size.Height)
	return Rectangle{
		Position: Position{upperX, upperY},
		Size:     Size{lowerX - upperX, lowerY - upperY},
	}
}

// BoundingAll reduces a slice of rectangles to the smallest rectangle
// containing all of them, or a zero rectangle if the slice is empty.
func BoundingAll(list []Rectangle) Rectangle {
	if len(list) == 0 {
		return Rectangle{}
	}
	result := list[0]
	for _, r := range list[1:] {
		result = Bounding(result, r)
	}
	return result
}

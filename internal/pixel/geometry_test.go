package pixel

import "testing"

// TestIntersectIsCommutative checks the law: Intersect(a, b) == Intersect(b, a).
func TestIntersectIsCommutative(t *testing.T) {
	a := NewRectangle(0, 0, 10, 10)
	b := NewRectangle(5, 5, 10, 10)
	if got, want := Intersect(a, b), Intersect(b, a); got != want {
		t.Fatalf("Intersect(a,b) = %v, Intersect(b,a) = %v", got, want)
	}
}

func TestIntersectIsIdempotent(t *testing.T) {
	a := NewRectangle(2, 3, 4, 5)
	if got := Intersect(a, a); got != a {
		t.Fatalf("Intersect(a,a) = %v, want %v", got, a)
	}
}

// TestIntersectOfDisjointRectanglesHasNoNegativeSize checks that a
// non-overlapping pair clamps to a non-positive, not wrapped-around, size.
func TestIntersectOfDisjointRectanglesHasNoNegativeSize(t *testing.T) {
	a := NewRectangle(0, 0, 2, 2)
	b := NewRectangle(10, 10, 2, 2)
	got := Intersect(a, b)
	if got.Size.Width < 0 || got.Size.Height < 0 {
		t.Fatalf("Intersect(disjoint) = %v, want non-negative size", got)
	}
	if got.Size.Width != 0 || got.Size.Height != 0 {
		t.Fatalf("Intersect(disjoint) = %v, want zero size", got)
	}
}

// TestBoundingIsCommutative checks the law: Bounding(a, b) == Bounding(b, a).
func TestBoundingIsCommutative(t *testing.T) {
	a := NewRectangle(0, 0, 4, 4)
	b := NewRectangle(-2, 6, 3, 3)
	if got, want := Bounding(a, b), Bounding(b, a); got != want {
		t.Fatalf("Bounding(a,b) = %v, Bounding(b,a) = %v", got, want)
	}
}

func TestBoundingAllReducesToTheSmallestContainer(t *testing.T) {
	rects := []Rectangle{
		NewRectangle(0, 0, 2, 2),
		NewRectangle(5, 5, 2, 2),
		NewRectangle(-3, 1, 1, 1),
	}
	got := BoundingAll(rects)
	want := NewRectangle(-3, 0, 10, 7)
	if got != want {
		t.Fatalf("BoundingAll = %v, want %v", got, want)
	}
}

func TestBoundingAllOfEmptySliceIsZeroRectangle(t *testing.T) {
	if got := BoundingAll(nil); got != (Rectangle{}) {
		t.Fatalf("BoundingAll(nil) = %v, want zero rectangle", got)
	}
}

func TestRectanglePointsCoversEveryCell(t *testing.T) {
	r := NewRectangle(1, 1, 2, 3)
	points := r.Points()
	if len(points) != 6 {
		t.Fatalf("len(Points()) = %d, want 6", len(points))
	}
	seen := map[Position]bool{}
	for _, p := range points {
		seen[p] = true
	}
	for x := 1; x < 3; x++ {
		for y := 1; y < 4; y++ {
			if !seen[Position{X: x, Y: y}] {
				t.Fatalf("Points() missing (%d,%d)", x, y)
			}
		}
	}
}

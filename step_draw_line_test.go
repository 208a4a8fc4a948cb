package rasteredit

import (
	"testing"

	"github.com/gogpu/rasteredit/internal/pixel"
)

// TestDrawLineStampsEndpointOfTrack covers the "a pointer drags a brush
// stroke across an empty layer" scenario: a two-point track sampled every
// 5th interpolated position still lands squarely on the track's final
// point. The first point leaves 4 positions to skip; the 20 interpolated
// positions from (1,2) to (20,10) are then sampled at indices 4, 9, 14 and
// 19, and index 19 is (20,10).
func TestDrawLineStampsEndpointOfTrack(t *testing.T) {
	s := fixedSession(100, 100)
	idx, err := s.Perform(&LayerCreateEmpty{})
	if err != nil {
		t.Fatal(err)
	}

	line := &DrawLine{
		Id:       *idx,
		Radius:   10,
		Color:    Red,
		Mode:     BlendAlpha,
		Hardness: 1,
		Track:    []Position{{X: 1, Y: 2}, {X: 20, Y: 10}},
		Distance: 5,
	}
	if _, err := s.Perform(line); err != nil {
		t.Fatal(err)
	}

	if got := s.Content().Pixel(20, 10); got != Red {
		t.Fatalf("pixel(20,10) = %v, want %v", got, Red)
	}
}

// TestDrawLineUsesLayerLocalCoordinatesAfterMove checks that a stroke's
// track, given in global canvas coordinates, lands in the right place on a
// layer that has been moved away from the origin: moving the layer to
// (10,10) and then drawing a track that ends at global (20,10) must stamp
// the layer's own local (10,0), which composites back to global (20,10).
func TestDrawLineUsesLayerLocalCoordinatesAfterMove(t *testing.T) {
	s := fixedSession(100, 100)
	idx, err := s.Perform(&LayerCreateEmpty{})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.Perform(&LayerMoveRelative{Id: *idx, Delta: Position{X: 10, Y: 10}}); err != nil {
		t.Fatal(err)
	}

	line := &DrawLine{
		Id:       *idx,
		Radius:   10,
		Color:    Red,
		Mode:     BlendAlpha,
		Hardness: 1,
		Track:    []Position{{X: -20, Y: -20}, {X: 20, Y: 10}},
		Distance: 1,
	}
	if _, err := s.Perform(line); err != nil {
		t.Fatal(err)
	}

	if got := s.Content().Pixel(20, 10); got != Red {
		t.Fatalf("pixel(20,10) = %v, want %v", got, Red)
	}
}

// TestDrawLineRejectsMissingLayer checks that targeting a nonexistent
// layer id surfaces as an *EngineError rather than a panic: Start looks the
// id up in the content tree, and the failed lookup is reported as a user
// error.
func TestDrawLineRejectsMissingLayer(t *testing.T) {
	s := fixedSession(20, 20)
	line := &DrawLine{
		Id:       99,
		Radius:   5,
		Color:    Red,
		Mode:     BlendAlpha,
		Hardness: 1,
		Track:    []Position{{X: 1, Y: 1}},
		Distance: 1,
	}
	_, err := s.Perform(line)
	if err == nil {
		t.Fatal("want error drawing onto a nonexistent layer")
	}
	if _, ok := err.(*EngineError); !ok {
		t.Fatalf("got %T, want *EngineError", err)
	}
}

// TestInterpolateIsReversalSymmetric is the law: Interpolate(b, a) is the
// exact reverse of Interpolate(a, b), which the incremental draw/line step
// relies on to sample a track consistently regardless of which end a
// stroke replay starts from.
func TestInterpolateIsReversalSymmetric(t *testing.T) {
	a, b := Position{X: 1, Y: 2}, Position{X: 20, Y: 10}
	forward := pixel.Interpolate(a, b)
	backward := pixel.Interpolate(b, a)

	if len(forward) != len(backward) {
		t.Fatalf("len(forward)=%d, len(backward)=%d, want equal", len(forward), len(backward))
	}
	for i := range forward {
		if forward[i] != backward[len(backward)-1-i] {
			t.Fatalf("forward[%d]=%v, want backward[%d]=%v", i, forward[i], i, backward[len(backward)-1-i])
		}
	}
}

func TestInterpolateStraightLine(t *testing.T) {
	a, b := Position{X: 0, Y: 0}, Position{X: 3, Y: 0}
	want := []Position{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	got := pixel.Interpolate(a, b)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

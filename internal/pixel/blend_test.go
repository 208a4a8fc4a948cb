package pixel

import "testing"

func TestAlphaBlendingEmptyPixelsStayEmpty(t *testing.T) {
	res1 := blendPixel(ModeAlpha, Transparent, Transparent, 1.0, 1.0)
	res2 := blendPixel(ModeAlpha, Transparent, Transparent, 1.0, 1.0)
	if res1 != res2 || res1 != Transparent {
		t.Fatalf("got %v and %v, want both transparent", res1, res2)
	}
}

func TestAlphaBlendingCompletelyOpaqueOverlay(t *testing.T) {
	overlay := Color{R: 10, G: 20, B: 42, A: 255}
	got := blendPixel(ModeAlpha, Transparent, overlay, 1.0, 1.0)
	if got != overlay {
		t.Fatalf("got %v, want %v", got, overlay)
	}
}

func TestAlphaBlendingCompletelyTransparentOverlay(t *testing.T) {
	base := Color{R: 10, G: 20, B: 42, A: 255}
	got := blendPixel(ModeAlpha, base, Transparent, 1.0, 1.0)
	if got != base {
		t.Fatalf("got %v, want %v", got, base)
	}
}

func TestAlphaBlendingFourPixels(t *testing.T) {
	base := NewFourPixels(
		Color{R: 255, G: 255, B: 255, A: 255},
		Color{R: 255, G: 255, B: 255, A: 255},
		Color{R: 255, G: 255, B: 255, A: 0},
		Color{R: 255, G: 255, B: 255, A: 255},
	)
	overlay := NewFourPixels(
		Color{G: 255, B: 255, A: 0},
		Color{G: 255, B: 255, A: 0},
		Color{G: 255, B: 255, A: 0},
		Color{G: 255, B: 255, A: 255},
	)
	dest := New(2, 2)
	blender := NewSoftwareBlender()
	blender.BlendDamagedInto(
		ModeAlpha,
		NewRectangle(0, 0, 2, 2),
		Positioned{Img: dest, Pos: Position{}},
		Layer{Img: overlay, Pos: Position{}, Alpha: 1.0},
		Layer{Img: base, Pos: Position{}, Alpha: 1.0},
	)

	want := NewFourPixels(
		Color{R: 255, G: 255, B: 255, A: 255},
		Color{R: 255, G: 255, B: 255, A: 255},
		Transparent,
		Color{G: 255, B: 255, A: 255},
	)
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			if got, w := dest.Pixel(x, y), want.Pixel(x, y); got != w {
				t.Fatalf("pixel(%d,%d) = %v, want %v", x, y, got, w)
			}
		}
	}
}

func TestBlendAllSkipsInvisibleChildren(t *testing.T) {
	blender := NewSoftwareBlender()
	hidden := NewFromColor(2, 2, Red)
	visible := NewFromColor(2, 2, Black)
	out := blender.BlendAll(NewRectangle(0, 0, 2, 2), []BlendChild{
		{Mode: ModeAlpha, Img: hidden, Alpha: 1.0, Visible: false},
		{Mode: ModeAlpha, Img: visible, Alpha: 1.0, Visible: true},
	})
	if got := out.Pixel(0, 0); got != Black {
		t.Fatalf("pixel(0,0) = %v, want Black (hidden layer must be skipped)", got)
	}
}

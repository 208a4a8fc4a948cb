package pixel

import "testing"

func TestNewFromColorFillsEveryPixel(t *testing.T) {
	img := NewFromColor(4, 4, Red)
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			if got := img.Pixel(x, y); got != Red {
				t.Fatalf("pixel(%d,%d) = %v, want %v", x, y, got, Red)
			}
		}
	}
}

func TestPixelOutOfBoundsIsTransparent(t *testing.T) {
	img := New(2, 2)
	if got := img.Pixel(-1, 0); got != Transparent {
		t.Fatalf("pixel(-1,0) = %v, want transparent", got)
	}
	if got := img.Pixel(5, 5); got != Transparent {
		t.Fatalf("pixel(5,5) = %v, want transparent", got)
	}
}

func TestCleanExcludesZeroRowAndColumn(t *testing.T) {
	img := NewFromColor(3, 3, Red)
	img.Clean(NewRectangle(0, 0, 3, 3))

	if got := img.Pixel(0, 0); got != Red {
		t.Fatalf("pixel(0,0) = %v, want untouched Red", got)
	}
	if got := img.Pixel(1, 0); got != Red {
		t.Fatalf("pixel(1,0) = %v, want untouched Red (y==0)", got)
	}
	if got := img.Pixel(0, 1); got != Red {
		t.Fatalf("pixel(0,1) = %v, want untouched Red (x==0)", got)
	}
	if got := img.Pixel(1, 1); got != Transparent {
		t.Fatalf("pixel(1,1) = %v, want cleared", got)
	}
	if got := img.Pixel(2, 2); got != Transparent {
		t.Fatalf("pixel(2,2) = %v, want cleared", got)
	}
}

func TestFlipHorizontally(t *testing.T) {
	img := NewFourPixels(Color{R: 1}, Color{R: 2}, Color{R: 3}, Color{R: 4})
	img.FlipHorizontally()
	if img.Pixel(0, 0).R != 2 || img.Pixel(1, 0).R != 1 {
		t.Fatalf("unexpected row after horizontal flip: %v %v", img.Pixel(0, 0), img.Pixel(1, 0))
	}
}

func TestFlipVertically(t *testing.T) {
	img := NewFourPixels(Color{R: 1}, Color{R: 2}, Color{R: 3}, Color{R: 4})
	img.FlipVertically()
	if img.Pixel(0, 0).R != 4 || img.Pixel(0, 1).R != 1 {
		t.Fatalf("unexpected column after vertical flip: %v %v", img.Pixel(0, 0), img.Pixel(0, 1))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	img := NewFromColor(2, 2, Red)
	clone := img.Clone()
	clone.PutPixel(0, 0, Black)
	if img.Pixel(0, 0) != Red {
		t.Fatalf("original mutated through clone")
	}
	if clone.Pixel(0, 0) != Black {
		t.Fatalf("clone not mutated")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	img := NewFourPixels(Color{R: 10, G: 20, B: 30, A: 255}, Red, Black, Transparent)
	encoded, err := img.EncodeBase64PNG()
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := FromBase64(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Width() != 2 || decoded.Height() != 2 {
		t.Fatalf("decoded size = %dx%d, want 2x2", decoded.Width(), decoded.Height())
	}
	if got := decoded.Pixel(0, 0); got.R != 10 || got.G != 20 || got.B != 30 || got.A != 255 {
		t.Fatalf("decoded pixel(0,0) = %v, want rgb(10,20,30,255)", got)
	}
}

func TestGrayscaleDesaturates(t *testing.T) {
	img := NewFromColor(1, 1, Color{R: 200, G: 10, B: 10, A: 255})
	img.Grayscale()
	p := img.Pixel(0, 0)
	if p.R != p.G || p.G != p.B {
		t.Fatalf("grayscale pixel not desaturated: %v", p)
	}
	if p.A != 255 {
		t.Fatalf("grayscale changed alpha: %v", p)
	}
}

func TestDrawLineReturnsDamageRect(t *testing.T) {
	img := New(40, 40)
	stamp := NewStamp(Black, 0.5, 5)
	damage := img.DrawLine(stamp, []Position{{X: 10, Y: 10}, {X: 20, Y: 20}})
	if damage.Size.Width <= 0 || damage.Size.Height <= 0 {
		t.Fatalf("expected non-empty damage rect, got %v", damage)
	}
}

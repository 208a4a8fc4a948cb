package pixel

import (
	"bytes"
	"encoding/base64"
	stdimage "image"
	"image/png"
	"math"

	// Blank-imported so stdimage.Decode in FromBytes recognizes uploads in
	// these formats too, not just PNG. golang.org/x/image carries the
	// decoders the standard library doesn't ship.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Image is a straight-alpha RGBA8 pixel buffer: the unit a Layer, a
// GhostImage and a brush stamp are all made of.
//
// Every creation or clone of an Image is logged at debug level because
// allocating pixel buffers is a potential bottleneck on large canvases.
type Image struct {
	buf    []byte // RGBA8, row-major, straight alpha
	width  int
	height int
}

// New creates a new, fully transparent image of the given size.
func New(width, height int) *Image {
	logger().Debug("creating image", "width", width, "height", height)
	return &Image{buf: make([]byte, width*height*4), width: width, height: height}
}

// NewFromColor creates an image of the given size filled uniformly with c.
func NewFromColor(width, height int, c Color) *Image {
	logger().Debug("creating image", "width", width, "height", height)
	img := &Image{buf: make([]byte, width*height*4), width: width, height: height}
	for i := 0; i < width*height; i++ {
		off := i * 4
		img.buf[off+0] = c.R
		img.buf[off+1] = c.G
		img.buf[off+2] = c.B
		img.buf[off+3] = c.A
	}
	return img
}

// NewStamp builds a circular soft brush of the given color, hardness and
// radius. Pixels within radius*hardness of the center are fully opaque;
// pixels beyond that fall off to transparent over a cubic curve by the time
// they reach radius.
func NewStamp(color Color, hardness, radius float64) *Image {
	size := int(2 * radius)
	stamp := New(size, size)
	middle := Position{X: int(radius), Y: int(radius)}
	innerRadius := radius * hardness
	stamp.Clean(NewRectangle(0, 0, stamp.width, stamp.height))
	for x := 0; x < stamp.width; x++ {
		for y := 0; y < stamp.height; y++ {
			dist := middle.DistanceTo(Position{X: x, Y: y})
			switch {
			case dist <= innerRadius:
				stamp.PutPixel(x, y, color.WithAlpha(255))
			case dist <= radius:
				alpha := math.Pow(1.0-((dist-innerRadius)/(radius-innerRadius)), 3)
				stamp.PutPixel(x, y, color.WithAlpha(uint8(alpha*255)))
			}
		}
	}
	return stamp
}

// NewFourPixels builds a 2x2 image from four "#rrggbbaa" colors, arranged
//
//	a b
//	d c
//
// It exists purely to make tiny blend-math test fixtures easy to write.
func NewFourPixels(a, b, c, d Color) *Image {
	img := New(2, 2)
	img.PutPixel(0, 0, a)
	img.PutPixel(1, 0, b)
	img.PutPixel(1, 1, c)
	img.PutPixel(0, 1, d)
	return img
}

// Width returns the image's width in pixels.
func (img *Image) Width() int { return img.width }

// Height returns the image's height in pixels.
func (img *Image) Height() int { return img.height }

// Size returns the image's size.
func (img *Image) Size() Size { return Size{Width: img.width, Height: img.height} }

// Rect returns a rectangle of img's size at the origin.
func (img *Image) Rect() Rectangle { return NewRectangle(0, 0, img.width, img.height) }

func (img *Image) inBounds(x, y int) bool {
	return x >= 0 && x < img.width && y >= 0 && y < img.height
}

// Pixel returns the color at (x, y), or Transparent if out of bounds.
func (img *Image) Pixel(x, y int) Color {
	if !img.inBounds(x, y) {
		return Transparent
	}
	off := (y*img.width + x) * 4
	return Color{R: img.buf[off], G: img.buf[off+1], B: img.buf[off+2], A: img.buf[off+3]}
}

// PutPixel sets the color at (x, y). Out-of-bounds writes are ignored.
func (img *Image) PutPixel(x, y int, c Color) {
	if !img.inBounds(x, y) {
		return
	}
	off := (y*img.width + x) * 4
	img.buf[off+0] = c.R
	img.buf[off+1] = c.G
	img.buf[off+2] = c.B
	img.buf[off+3] = c.A
}

// Clean zeroes every pixel of area, strictly inside the image — matching
// the original engine's clear semantics where the leftmost column and
// topmost row of the image (x == 0 or y == 0) are never cleared.
func (img *Image) Clean(area Rectangle) {
	for _, p := range area.Points() {
		if p.X > 0 && p.X < img.width && p.Y > 0 && p.Y < img.height {
			off := (p.Y*img.width + p.X) * 4
			img.buf[off+0] = 0
			img.buf[off+1] = 0
			img.buf[off+2] = 0
			img.buf[off+3] = 0
		}
	}
}

// Clone returns a deep copy of img.
func (img *Image) Clone() *Image {
	logger().Debug("cloning image", "width", img.width, "height", img.height)
	buf := make([]byte, len(img.buf))
	copy(buf, img.buf)
	return &Image{buf: buf, width: img.width, height: img.height}
}

// FlipHorizontally mirrors the image left-right in place.
func (img *Image) FlipHorizontally() {
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width/2; x++ {
			mirror := img.width - 1 - x
			img.swapPixels(x, y, mirror, y)
		}
	}
}

// FlipVertically mirrors the image top-bottom in place.
func (img *Image) FlipVertically() {
	for y := 0; y < img.height/2; y++ {
		mirror := img.height - 1 - y
		for x := 0; x < img.width; x++ {
			img.swapPixels(x, y, x, mirror)
		}
	}
}

func (img *Image) swapPixels(x1, y1, x2, y2 int) {
	a := img.Pixel(x1, y1)
	b := img.Pixel(x2, y2)
	img.PutPixel(x1, y1, b)
	img.PutPixel(x2, y2, a)
}

// toStdImage converts img to a standard library image.RGBA for codec use.
func (img *Image) toStdImage() *stdimage.RGBA {
	out := stdimage.NewRGBA(stdimage.Rect(0, 0, img.width, img.height))
	copy(out.Pix, img.buf)
	return out
}

// fromStdImage converts a decoded image.Image into an Image, normalizing to
// straight-alpha RGBA8 regardless of the source's native color model.
func fromStdImage(src stdimage.Image) *Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	img := New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if a == 0 {
				img.PutPixel(x, y, Transparent)
				continue
			}
			// image.Image.At returns alpha-premultiplied 16-bit channels;
			// undo the premultiplication before truncating to 8 bits.
			img.PutPixel(x, y, Color{
				R: uint8(r * 0xff / a),
				G: uint8(g * 0xff / a),
				B: uint8(b * 0xff / a),
				A: uint8(a >> 8),
			})
		}
	}
	return img
}

// FromBytes decodes an encoded image (PNG, etc.) from raw bytes.
func FromBytes(data []byte) (*Image, error) {
	decoded, _, err := stdimage.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return fromStdImage(decoded), nil
}

// FromBase64 decodes a base64-encoded, PNG-encoded image.
func FromBase64(encoded string) (*Image, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}
	return FromBytes(raw)
}

// Bytes returns the raw RGBA8 pixel buffer, row-major.
func (img *Image) Bytes() []byte {
	out := make([]byte, len(img.buf))
	copy(out, img.buf)
	return out
}

// EncodePNG encodes the image as PNG bytes.
func (img *Image) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img.toStdImage()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeBase64PNG encodes the image as a base64-encoded PNG.
func (img *Image) EncodeBase64PNG() (string, error) {
	raw, err := img.EncodePNG()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

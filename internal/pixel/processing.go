package pixel

import (
	"math"
	"math/rand/v2"
)

// Grayscale desaturates every pixel in place using perceptual luminance
// weights, leaving alpha untouched.
//
// The original engine left this as an unimplemented stub; full
// compositing support for it is part of this port's scope, so it's
// implemented for real here rather than carried over as a no-op.
func (img *Image) Grayscale() {
	for i := 0; i < len(img.buf); i += 4 {
		r := float64(img.buf[i+0])
		g := float64(img.buf[i+1])
		b := float64(img.buf[i+2])
		lum := 0.299*r + 0.587*g + 0.114*b
		v := clampByte(lum)
		img.buf[i+0] = v
		img.buf[i+1] = v
		img.buf[i+2] = v
	}
}

// GaussianNoise adds pixel noise drawn from a normal distribution with the
// given mean and standard deviation to the red, green and blue channels
// (alpha is left unchanged), seeded so the same (mean, stddev, seed) triple
// always produces the same result.
func (img *Image) GaussianNoise(mean, stddev float64, seed uint64) {
	r := rand.New(rand.NewChaCha8(seedBytes(seed)))
	for i := 0; i < len(img.buf); i += 4 {
		for c := 0; c < 3; c++ {
			noise := mean + stddev*gaussian(r)
			v := float64(img.buf[i+c]) + noise
			img.buf[i+c] = clampByte(v)
		}
	}
}

func seedBytes(seed uint64) [32]byte {
	var out [32]byte
	for i := 0; i < 4; i++ {
		shift := uint(i * 8)
		b := byte(seed >> shift)
		out[i] = b
		out[i+8] = b
		out[i+16] = b
		out[i+24] = b
	}
	return out
}

// gaussian draws one standard-normal sample via the Box-Muller transform.
func gaussian(r *rand.Rand) float64 {
	var u1 float64
	for u1 == 0 {
		u1 = r.Float64()
	}
	u2 := r.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// DrawLine stamps a brush image along every position of track onto img,
// using standard alpha compositing, and returns the bounding rectangle (in
// img's own coordinates) of everything it touched.
func (img *Image) DrawLine(stamp *Image, track []Position) Rectangle {
	logger().Debug("drawing line", "points", len(track))
	width, height := img.width, img.height
	stampW, stampH := stamp.width, stamp.height

	for _, p := range track {
		x0, y0 := p.X, p.Y
		for x := x0 - stampW; x < x0+stampW; x++ {
			if x < 0 || x >= width {
				continue
			}
			if !(y0-stampH < height && y0+stampH > 0) {
				continue
			}
			for y := y0 - stampH; y < y0+stampH; y++ {
				if y < 0 || y >= height {
					continue
				}
				xStamp := x - (x0 - stampW/2)
				yStamp := y - (y0 - stampH/2)
				if xStamp < 0 || xStamp >= stampW || yStamp < 0 || yStamp >= stampH {
					continue
				}
				stampPixel := stamp.Pixel(xStamp, yStamp)
				existing := img.Pixel(x, y)
				img.PutPixel(x, y, blendPixel(ModeAlpha, existing, stampPixel, 1.0, 1.0))
			}
		}
	}

	half := Position{X: stampW / 2, Y: stampH / 2}
	rects := make([]Rectangle, len(track))
	for i, p := range track {
		rects[i] = RectOf(p.Sub(half), Size{Width: stampW, Height: stampH})
	}
	return BoundingAll(rects)
}

package pixel

// Mode identifies one of the five ways a layer (or a ghost stroke) can be
// composited onto what's beneath it.
type Mode int

const (
	// ModeAlpha is standard source-over alpha compositing.
	ModeAlpha Mode = iota
	// ModeRemove erases the base wherever the overlay is opaque
	// (equivalent to destination-out), keeping the base's own color.
	ModeRemove
	// ModeDarken keeps the darker of the two colors per channel.
	ModeDarken
	// ModeLighten keeps the lighter of the two colors per channel.
	ModeLighten
	// ModeScreen combines colors with the "screen" formula (inverse of
	// multiplying the inverses).
	ModeScreen
)

// Blender composites layer images together. SoftwareBlender is the
// reference, always-correct implementation; AcceleratedBlender wraps it
// with a marker-keyed cache of loaded layer images and delegates every
// composite to it.
type Blender interface {
	// Name identifies the blender implementation, for diagnostics.
	Name() string

	// Load marks that the image for the given marker won't change until
	// the next Clean call, letting a caching blender safely cache it.
	Load(marker uint64, img *Image)
	// Clean forgets every image loaded through Load.
	Clean()

	// Blend composites overlay on top of base into a newly allocated
	// image sized to destination.
	Blend(mode Mode, destination Rectangle, overlay Layer, base Layer) *Image
	// BlendDamagedInto composites overlay over base, but only within
	// damage, writing the result into dest in place.
	BlendDamagedInto(mode Mode, damage Rectangle, dest Positioned, overlay Layer, base Layer)
	// BlendDamaged composites overlay onto base in place, but only within
	// damage.
	BlendDamaged(mode Mode, base Layer, overlay Layer, damage Rectangle)
	// BlendAll left-folds every child in order into a single image sized
	// to destination, skipping children marked invisible.
	BlendAll(destination Rectangle, children []BlendChild) *Image
}

// Layer is the (image, position, alpha) triple a Blender operates on. It
// intentionally mirrors the engine's own Layer fields rather than wrapping
// the full Layer type, so this package never needs to import the root
// package.
type Layer struct {
	Img   *Image
	Pos   Position
	Alpha float64
	// Marker identifies the source layer for cache invalidation. Zero
	// means "don't cache this one".
	Marker uint64
}

// Positioned is an (image, position) pair with no alpha — the destination
// of BlendDamagedInto, which is always fully opaque.
type Positioned struct {
	Img *Image
	Pos Position
}

// BlendChild is one entry in the list BlendAll composites, in paint order
// (first entry painted first, i.e. lowest in the stack).
type BlendChild struct {
	Mode    Mode
	Img     *Image
	Pos     Position
	Alpha   float64
	Visible bool
	Marker  uint64
}

// SoftwareBlender is the reference Blender: correct, unaccelerated, and
// holding no cache (Load/Clean are no-ops).
type SoftwareBlender struct{}

// NewSoftwareBlender constructs a SoftwareBlender.
func NewSoftwareBlender() *SoftwareBlender { return &SoftwareBlender{} }

func (b *SoftwareBlender) Name() string { return "Software" }

func (b *SoftwareBlender) Load(uint64, *Image) {}
func (b *SoftwareBlender) Clean()              {}

func (b *SoftwareBlender) Blend(mode Mode, destination Rectangle, overlay, base Layer) *Image {
	out := New(destination.Size.Width, destination.Size.Height)
	for _, pos := range destination.Points() {
		basePixel := base.Img.Pixel(pos.X-base.Pos.X, pos.Y-base.Pos.Y)
		overlayPixel := overlay.Img.Pixel(pos.X-overlay.Pos.X, pos.Y-overlay.Pos.Y)
		blended := blendPixel(mode, basePixel, overlayPixel, base.Alpha, overlay.Alpha)
		out.PutPixel(pos.X-destination.Position.X, pos.Y-destination.Position.Y, blended)
	}
	return out
}

func (b *SoftwareBlender) BlendDamagedInto(mode Mode, damage Rectangle, dest Positioned, overlay, base Layer) {
	activeArea := RectOf(overlay.Pos, overlay.Img.Size())
	baseArea := RectOf(base.Pos, base.Img.Size())
	destArea := RectOf(dest.Pos, dest.Img.Size())
	clipped := Intersectn([]Rectangle{damage, baseArea, activeArea, destArea})

	for _, pos := range clipped.Points() {
		basePixel := base.Img.Pixel(pos.X-base.Pos.X, pos.Y-base.Pos.Y)
		overlayPixel := overlay.Img.Pixel(pos.X-overlay.Pos.X, pos.Y-overlay.Pos.Y)
		blended := blendPixel(mode, basePixel, overlayPixel, base.Alpha, overlay.Alpha)
		dest.Img.PutPixel(pos.X-dest.Pos.X, pos.Y-dest.Pos.Y, blended)
	}
}

func (b *SoftwareBlender) BlendDamaged(mode Mode, base, overlay Layer, damage Rectangle) {
	for _, pos := range damage.Points() {
		bx, by := pos.X-base.Pos.X, pos.Y-base.Pos.Y
		basePixel := base.Img.Pixel(bx, by)
		overlayPixel := overlay.Img.Pixel(pos.X-overlay.Pos.X, pos.Y-overlay.Pos.Y)
		blended := blendPixel(mode, basePixel, overlayPixel, base.Alpha, overlay.Alpha)
		base.Img.PutPixel(bx, by, blended)
	}
}

func (b *SoftwareBlender) BlendAll(destination Rectangle, children []BlendChild) *Image {
	result := New(destination.Size.Width, destination.Size.Height)
	for _, child := range children {
		if !child.Visible {
			continue
		}
		result = b.Blend(
			child.Mode,
			destination,
			Layer{Img: child.Img, Pos: child.Pos, Alpha: child.Alpha, Marker: child.Marker},
			Layer{Img: result, Pos: destination.Position, Alpha: 1.0},
		)
	}
	return result
}

// blendPixel is the per-pixel compositing kernel all five modes share.
// The other four are ported directly from the original engine since their
// premultiplied-byte teacher counterparts would need an unjustified
// premultiply/unpremultiply round trip to reuse here.
func blendPixel(mode Mode, base, overlay Color, baseAlpha, overlayAlpha float64) Color {
	switch mode {
	case ModeAlpha:
		return ColorFromRGBA(sourceOver(overlay.ToRGBA(overlayAlpha), base.ToRGBA(baseAlpha)))

	case ModeRemove:
		alphaA := float64(overlay.A) / 255 * overlayAlpha
		alphaB := float64(base.A) / 255 * baseAlpha
		out := base
		if alphaB < alphaA {
			out.A = 0
		} else {
			out.A = clampByte((alphaB - alphaA) * 255)
		}
		return out

	case ModeDarken:
		return minMaxBlend(base, overlay, baseAlpha, overlayAlpha, minFloat)

	case ModeLighten:
		return minMaxBlend(base, overlay, baseAlpha, overlayAlpha, maxFloat)

	case ModeScreen:
		sa := overlayAlpha
		da := baseAlpha
		out := Color{}
		chans := [3]*uint8{&out.R, &out.G, &out.B}
		baseChans := [3]uint8{base.R, base.G, base.B}
		overlayChans := [3]uint8{overlay.R, overlay.G, overlay.B}
		for i := 0; i < 3; i++ {
			sc := float64(overlayChans[i]) / 255
			dc := float64(baseChans[i]) / 255
			sca := sc * sa
			dca := dc * da
			*chans[i] = clampByte((sca + dca - sca*dca) * 255)
		}
		out.A = clampByte((sa + da - sa*da) * 255)
		return out

	default:
		return ColorFromRGBA(sourceOver(overlay.ToRGBA(overlayAlpha), base.ToRGBA(baseAlpha)))
	}
}

// sourceOver alpha-composites src over dst, both straight-alpha floats in
// [0, 1]. This is the Porter-Duff source-over formula ModeAlpha uses
// directly; it's the same formula the teacher's internal/blend package
// documents, reproduced here against pixel's own RGBA type rather than
// kept as a separate package, since nothing else in this module needs a
// blend kernel independent of Color.
func sourceOver(src, dst RGBA) RGBA {
	invSrcA := 1.0 - src.A
	outA := src.A + dst.A*invSrcA
	if outA == 0 {
		return RGBA{}
	}
	return RGBA{
		R: (src.R*src.A + dst.R*dst.A*invSrcA) / outA,
		G: (src.G*src.A + dst.G*dst.A*invSrcA) / outA,
		B: (src.B*src.A + dst.B*dst.A*invSrcA) / outA,
		A: outA,
	}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minMaxBlend(base, overlay Color, baseAlpha, overlayAlpha float64, pick func(float64, float64) float64) Color {
	alphaA := float64(overlay.A) / 255 * overlayAlpha
	alphaB := float64(base.A) / 255 * baseAlpha
	out := Color{}
	chans := [3]*uint8{&out.R, &out.G, &out.B}
	baseChans := [3]uint8{base.R, base.G, base.B}
	overlayChans := [3]uint8{overlay.R, overlay.G, overlay.B}
	for i := 0; i < 3; i++ {
		ca := float64(overlayChans[i]) / 255
		cb := float64(baseChans[i]) / 255
		factor := pick(ca*alphaB*alphaA, cb*alphaA*alphaB) + alphaA*ca*(1-alphaB) + alphaB*cb*(1-alphaA)
		*chans[i] = clampByte(factor * 255)
	}
	out.A = clampByte((alphaA + alphaB - alphaA*alphaB) * 255)
	return out
}

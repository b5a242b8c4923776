package generator

import "image"
import "image/draw"

import "golang.org/x/image/vector"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

// A thin wrapper over [vector.Rasterizer] that turns glyph outlines into
// alpha masks. The vector rasterizer expects coordinates in the positive
// quadrant, so outlines are shifted by the floored min corner of their
// bounds and the resulting mask rect is translated back afterwards.
type rasterizer struct {
	vector vector.Rasterizer
	offsetX float32
	offsetY float32
}

// Rasterizes the given outline drawn at dot (0, 0). The returned mask
// bounds are relative to the dot, so bounds.Min.Y is negative for the
// ascending parts of the glyph. Returns nil when the outline has nothing
// to draw (e.g. spaces).
func (self *rasterizer) Rasterize(outline sfnt.Segments) *image.Alpha {
	if !hasDrawableSegments(outline) { return nil }

	bounds := outline.Bounds()
	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	width  := bounds.Max.X.Ceil() - minX
	height := bounds.Max.Y.Ceil() - minY
	if width <= 0 || height <= 0 { return nil }

	self.offsetX = float32(-minX)
	self.offsetY = float32(-minY)
	self.vector.Reset(width, height)
	self.vector.DrawOp = draw.Src

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	for _, segment := range outline {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			self.vector.MoveTo(self.x(segment.Args[0]), self.y(segment.Args[0]))
		case sfnt.SegmentOpLineTo:
			self.vector.LineTo(self.x(segment.Args[0]), self.y(segment.Args[0]))
		case sfnt.SegmentOpQuadTo:
			self.vector.QuadTo(
				self.x(segment.Args[0]), self.y(segment.Args[0]),
				self.x(segment.Args[1]), self.y(segment.Args[1]),
			)
		case sfnt.SegmentOpCubeTo:
			self.vector.CubeTo(
				self.x(segment.Args[0]), self.y(segment.Args[0]),
				self.x(segment.Args[1]), self.y(segment.Args[1]),
				self.x(segment.Args[2]), self.y(segment.Args[2]),
			)
		default:
			panic("unexpected segment.Op case")
		}
	}

	// the source is uniform, so the sampling point doesn't matter
	self.vector.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	mask.Rect = mask.Rect.Add(image.Pt(minX, minY))
	return mask
}

func (self *rasterizer) x(point fixed.Point26_6) float32 {
	return float32(point.X)/64 + self.offsetX
}

func (self *rasterizer) y(point fixed.Point26_6) float32 {
	return float32(point.Y)/64 + self.offsetY
}

func hasDrawableSegments(outline sfnt.Segments) bool {
	for _, segment := range outline {
		if segment.Op != sfnt.SegmentOpMoveTo { return true }
	}
	return false
}

// Returns a copy of the mask with its rows in reverse order. The
// bounds are preserved.
func flipVertically(mask *image.Alpha) *image.Alpha {
	flipped := image.NewAlpha(mask.Rect)
	width := mask.Rect.Dx()
	height := mask.Rect.Dy()
	for row := 0; row < height; row++ {
		src := mask.Pix[row*mask.Stride : row*mask.Stride + width]
		dst := (height - 1 - row)*flipped.Stride
		copy(flipped.Pix[dst : dst + width], src)
	}
	return flipped
}

package generator

import "image"
import "errors"
import "image/draw"

import "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

var ErrInvalidSize = errors.New("font size must be positive")
var ErrDisposed = errors.New("generator already disposed")

// A Generator holds a parsed font and produces bitmap fonts out of it.
// Generators must be released with [Generator.Dispose]() when no longer
// needed.
type Generator struct {
	font   *sfnt.Font
	buffer *sfnt.Buffer
	name   string
}

// Opens the given handle, reads the font file and parses it.
// Supported formats are the ones supported by [sfnt.Parse]().
// Errors from the handle and the parser are returned unchanged.
func Open(handle Opener) (*Generator, error) {
	fontBytes, err := readAllAndClose(handle)
	if err != nil { return nil, err }
	return OpenBytes(fontBytes)
}

// The equivalent of [Open]() for raw font bytes. The bytes must
// not be modified while the generator is in use.
func OpenBytes(fontBytes []byte) (*Generator, error) {
	parsed, err := sfnt.Parse(fontBytes)
	if err != nil { return nil, err }

	generator := &Generator{ font: parsed, buffer: &sfnt.Buffer{} }
	generator.name, err = fontProperty(parsed, generator.buffer, sfnt.NameIDFull)
	if err != nil && err != ErrNotFound { return nil, err }
	return generator, nil
}

// Returns the full name of the parsed font. May be empty.
func (self *Generator) Name() string { return self.name }

// Releases the parsed font. Further calls to [Generator.GenerateFont]()
// will return [ErrDisposed]. Disposing multiple times is allowed.
func (self *Generator) Dispose() {
	if self.font == nil { return }
	tracer().Debugf("generator: disposing '%s'", self.name)
	self.font = nil
	self.buffer = nil
}

// Returns whether [Generator.Dispose]() has already been called.
func (self *Generator) Disposed() bool { return self.font == nil }

// Rasterizes the given characters at the given size in pixels and packs
// them into a [BitmapFont]. Repeated characters are ignored, '\x00' maps
// to the font's .notdef glyph and characters missing from the font are
// skipped and reported through [BitmapFont.Missing]().
//
// When flip is true, glyphs are mirrored vertically and offsets are given
// with the y axis pointing up. See [Glyph].Offset.
func (self *Generator) GenerateFont(size int, characters string, flip bool) (*BitmapFont, error) {
	if self.font == nil { return nil, ErrDisposed }
	if size <= 0 { return nil, ErrInvalidSize }

	ppem := fixed.I(size)
	metrics, err := self.font.Metrics(self.buffer, ppem, font.HintingNone)
	if err != nil { return nil, err }

	bitmapFont := &BitmapFont{
		name: self.name,
		size: size,
		characters: characters,
		flipped: flip,
		ascent: metrics.Ascent,
		descent: metrics.Descent,
		lineHeight: metrics.Height,
		glyphs: make(map[rune]*Glyph),
		kerning: make(map[[2]rune]fixed.Int26_6),
	}

	// rasterize all glyphs
	var rast rasterizer
	var masks []*image.Alpha
	var glyphs []*Glyph
	for _, codePoint := range uniqueRunes(characters) {
		index, err := self.font.GlyphIndex(self.buffer, codePoint)
		if err != nil { return nil, err }
		if index == 0 && codePoint != 0 {
			bitmapFont.missing = append(bitmapFont.missing, codePoint)
			continue
		}

		advance, err := self.font.GlyphAdvance(self.buffer, index, ppem, font.HintingNone)
		if err != nil { return nil, err }
		outline, err := self.font.LoadGlyph(self.buffer, index, ppem, nil)
		if err != nil { return nil, err }

		mask := rast.Rasterize(outline)
		if mask != nil && flip { mask = flipVertically(mask) }
		glyphs = append(glyphs, &Glyph{ Rune: codePoint, Index: index, Advance: advance })
		masks = append(masks, mask)
	}
	if len(bitmapFont.missing) > 0 {
		tracer().Debugf("generator: %d runes missing from '%s'", len(bitmapFont.missing), self.name)
	}

	// pack the masks and copy them to the atlas
	sizes := make([]image.Point, len(masks))
	for i, mask := range masks {
		if mask != nil { sizes[i] = mask.Rect.Size() }
	}
	regions, atlasSize := packShelves(sizes, atlasPadding)
	bitmapFont.atlas = image.NewAlpha(image.Rectangle{ Max: atlasSize })
	for i, glyph := range glyphs {
		mask := masks[i]
		if mask != nil {
			glyph.Region = regions[i]
			draw.Draw(bitmapFont.atlas, glyph.Region, mask, mask.Rect.Min, draw.Src)
			if flip {
				glyph.Offset = image.Pt(mask.Rect.Min.X, -mask.Rect.Max.Y)
			} else {
				glyph.Offset = mask.Rect.Min
			}
		}
		bitmapFont.glyphs[glyph.Rune] = glyph
		bitmapFont.runes = append(bitmapFont.runes, glyph.Rune)
	}

	err = self.computeKerning(bitmapFont, glyphs, ppem)
	if err != nil { return nil, err }

	tracer().Debugf("generator: '%s' at %dpx, %d glyphs, %dx%d atlas",
		self.name, size, len(glyphs), atlasSize.X, atlasSize.Y)
	return bitmapFont, nil
}

func (self *Generator) computeKerning(bitmapFont *BitmapFont, glyphs []*Glyph, ppem fixed.Int26_6) error {
	for _, prev := range glyphs {
		for _, next := range glyphs {
			kern, err := self.font.Kern(self.buffer, prev.Index, next.Index, ppem, font.HintingNone)
			if err == sfnt.ErrNotFound { continue } // pair not covered by GPOS
			if err != nil { return err }
			if kern != 0 {
				bitmapFont.kerning[[2]rune{prev.Rune, next.Rune}] = kern
			}
		}
	}
	return nil
}

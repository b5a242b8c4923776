package generator

import "image"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

// A glyph rasterized into a [BitmapFont] atlas.
type Glyph struct {
	Rune  rune
	Index sfnt.GlyphIndex

	// Glyph area within the atlas. Empty for glyphs without
	// a visible shape, like spaces.
	Region image.Rectangle

	// Position of the region's first row and column relative to the
	// drawing dot. On regular fonts this is the top-left corner in
	// image space (y grows downwards, so it's negative above the
	// baseline). On flipped fonts this is the bottom-left corner
	// with the y axis pointing up.
	Offset image.Point

	Advance fixed.Int26_6
}

// Returns whether the glyph has no visible pixels.
func (self *Glyph) Blank() bool { return self.Region.Empty() }

// A font pre-rendered at a fixed size into a single alpha atlas.
// Bitmap fonts are not modified after generation.
type BitmapFont struct {
	name       string
	size       int
	characters string
	flipped    bool

	ascent     fixed.Int26_6
	descent    fixed.Int26_6
	lineHeight fixed.Int26_6

	atlas   *image.Alpha
	runes   []rune
	glyphs  map[rune]*Glyph
	kerning map[[2]rune]fixed.Int26_6
	missing []rune
}

// Returns the full name of the source font, if available.
func (self *BitmapFont) Name() string { return self.name }

// Returns the size in pixels the font was rasterized at.
func (self *BitmapFont) Size() int { return self.size }

// Returns the character set requested at generation time.
func (self *BitmapFont) Characters() string { return self.characters }

// Returns whether the font was generated for y-up targets.
func (self *BitmapFont) Flipped() bool { return self.flipped }

func (self *BitmapFont) Ascent() fixed.Int26_6 { return self.ascent }
func (self *BitmapFont) Descent() fixed.Int26_6 { return self.descent }
func (self *BitmapFont) LineHeight() fixed.Int26_6 { return self.lineHeight }

// Returns the alpha atlas with all the rasterized glyphs.
// The image must not be modified.
func (self *BitmapFont) Atlas() *image.Alpha { return self.atlas }

// Returns the glyph for the given rune, if present.
func (self *BitmapFont) Glyph(codePoint rune) (Glyph, bool) {
	glyph, found := self.glyphs[codePoint]
	if !found { return Glyph{}, false }
	return *glyph, true
}

// Returns the glyph pixels as a sub image of the atlas, or nil
// if the rune is not present or the glyph is blank.
func (self *BitmapFont) GlyphImage(codePoint rune) *image.Alpha {
	glyph, found := self.glyphs[codePoint]
	if !found || glyph.Blank() { return nil }
	return self.atlas.SubImage(glyph.Region).(*image.Alpha)
}

// Returns the kerning adjustment to apply between the two given runes.
func (self *BitmapFont) Kern(prev, next rune) fixed.Int26_6 {
	return self.kerning[[2]rune{prev, next}]
}

// Returns the number of glyphs in the font.
func (self *BitmapFont) NumGlyphs() int { return len(self.runes) }

// Returns the runes with a glyph in the font, in the order they
// appeared in the requested character set.
func (self *BitmapFont) Runes() []rune {
	return append([]rune(nil), self.runes...)
}

// Returns the requested runes that the source font couldn't represent.
func (self *BitmapFont) Missing() []rune {
	return append([]rune(nil), self.missing...)
}

// Position of the glyph's top row relative to the baseline in image
// space, independently of the font being flipped or not.
func (self *BitmapFont) imageTop(glyph *Glyph) int {
	if self.flipped { return -glyph.Offset.Y - glyph.Region.Dy() }
	return glyph.Offset.Y
}

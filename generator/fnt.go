package generator

import "io"
import "fmt"
import "sort"
import "bufio"

// Writes the font metrics and glyph table in the AngelCode BMFont text
// format, referencing the atlas as a single page with the given file name.
// The atlas itself must be stored separately (e.g. with image/png).
//
// BMFont descriptors always use image space, so flipped fonts are written
// with the same offsets as their regular counterparts.
func (self *BitmapFont) WriteFNT(w io.Writer, pageName string) error {
	out := bufio.NewWriter(w)
	base := self.ascent.Round()
	atlasSize := self.atlas.Rect.Size()

	fmt.Fprintf(out, "info face=%q size=%d bold=0 italic=0 charset=\"\" unicode=1 " +
		"stretchH=100 smooth=1 aa=1 padding=0,0,0,0 spacing=%d,%d\n",
		self.name, self.size, atlasPadding, atlasPadding)
	fmt.Fprintf(out, "common lineHeight=%d base=%d scaleW=%d scaleH=%d pages=1 packed=0\n",
		self.lineHeight.Round(), base, atlasSize.X, atlasSize.Y)
	fmt.Fprintf(out, "page id=0 file=%q\n", pageName)

	fmt.Fprintf(out, "chars count=%d\n", len(self.runes))
	for _, codePoint := range self.runes {
		glyph := self.glyphs[codePoint]
		yOffset := 0
		if !glyph.Blank() { yOffset = base + self.imageTop(glyph) }
		fmt.Fprintf(out, "char id=%d x=%d y=%d width=%d height=%d xoffset=%d yoffset=%d xadvance=%d page=0 chnl=15\n",
			codePoint, glyph.Region.Min.X, glyph.Region.Min.Y, glyph.Region.Dx(), glyph.Region.Dy(),
			glyph.Offset.X, yOffset, glyph.Advance.Round())
	}

	// kerning pairs sorted for stable output
	pairs := make([][2]rune, 0, len(self.kerning))
	for pair, amount := range self.kerning {
		if amount.Round() == 0 { continue }
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] { return pairs[i][0] < pairs[j][0] }
		return pairs[i][1] < pairs[j][1]
	})
	fmt.Fprintf(out, "kernings count=%d\n", len(pairs))
	for _, pair := range pairs {
		fmt.Fprintf(out, "kerning first=%d second=%d amount=%d\n",
			pair[0], pair[1], self.kerning[pair].Round())
	}

	return out.Flush()
}

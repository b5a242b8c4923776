//go:build !gtxt

package generator

import "image"

import "github.com/hajimehoshi/ebiten/v2"

// Alias to allow compiling the package without Ebitengine (gtxt tag).
//
// With Ebitengine, Texture is *ebiten.Image. Without it, Texture
// defaults to the [*image.Alpha] atlas.
type Texture = *ebiten.Image

// Returns the atlas as a texture ready to be drawn. Each call creates
// a new texture, so callers should keep the result around.
func (self *BitmapFont) Texture() Texture {
	return ebiten.NewImageFromImage(alphaToRGBA(self.atlas))
}

// Ebitengine doesn't have good support for alpha images, so we expand
// the atlas to premultiplied white.
func alphaToRGBA(alpha *image.Alpha) *image.RGBA {
	rgba := image.NewRGBA(alpha.Rect)
	width := alpha.Rect.Dx()
	for y := 0; y < alpha.Rect.Dy(); y++ {
		src := alpha.Pix[y*alpha.Stride : y*alpha.Stride + width]
		dst := rgba.Pix[y*rgba.Stride : y*rgba.Stride + width*4]
		for x, value := range src {
			dst[x*4 + 0] = value
			dst[x*4 + 1] = value
			dst[x*4 + 2] = value
			dst[x*4 + 3] = value
		}
	}
	return rgba
}

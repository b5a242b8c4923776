//go:build gtxt

package generator

import "image"

type Texture = *image.Alpha

// Without Ebitengine the texture is the atlas itself.
func (self *BitmapFont) Texture() Texture { return self.atlas }

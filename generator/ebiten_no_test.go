//go:build gtxt

package generator

import "testing"

func TestTextureIsAtlas(t *testing.T) {
	generator := newTestGenerator(t)
	font, err := generator.GenerateFont(12, "abc", false)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if font.Texture() != font.Atlas() {
		t.Fatal("expected the texture to be the atlas itself without Ebitengine")
	}
}

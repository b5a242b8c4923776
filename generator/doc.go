// The generator subpackage converts TrueType and OpenType font files into
// rasterized bitmap fonts: a single alpha atlas with all the requested glyphs
// pre-rendered at a fixed size, plus the metrics required to lay them out.
//
// The lifecycle mirrors what asset loaders expect from an external font
// generator:
//   - [Open]() parses the font from a file handle.
//   - [Generator.GenerateFont]() rasterizes a [BitmapFont] for a given size,
//     character set and flip configuration. It can be called multiple times.
//   - [Generator.Dispose]() releases the parsed font.
//
// Generators can't be used concurrently. Bitmap fonts are immutable once
// generated and can be shared freely.
package generator

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'ttfasset'
func tracer() tracing.Trace {
	return tracing.Select("ttfasset")
}

// Package ttfasset provides asset loading pieces for TrueType and OpenType
// fonts: a [TrueTypeLoader] that rasterizes font files into bitmap fonts
// at a requested size, and a [SizedResolver] that lets the same font file
// be requested multiple times under different names.
//
// The sized naming convention embeds the desired size in the asset path:
//   fonts/arial_s18.ttf -> fonts/arial.ttf
// This allows registering multiple assets (one per size) that all resolve
// to the same base file. The size itself is not deduced by the loader: it
// must be passed through [Parameters], or derived from the name with
// [ParametersFromFilename]().
//
// A minimal [Manager] is included to associate loaders with file extensions
// and run them synchronously. It doesn't cache, reference count or track
// dependencies between assets.
package ttfasset

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'ttfasset'
func tracer() tracing.Trace {
	return tracing.Select("ttfasset")
}

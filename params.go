package ttfasset

import "errors"

import "github.com/tinne26/ttfasset/generator"

// The font size used when no size is specified.
const DefaultFontSize = 12

// Returned by [TrueTypeLoader.Load]() when the parameters specify
// a negative font size.
var ErrInvalidFontSize = errors.New("font size must not be negative")

// Parameters configure how a font file is converted into a bitmap font.
// A nil *Parameters is valid and means "use the defaults":
//  - FontSize: [DefaultFontSize] (12).
//  - Characters: [generator.DefaultChars].
//  - Flip: false.
//
// Zero values inside a non-nil Parameters also fall back to the
// defaults, so Parameters{ FontSize: 24 } only changes the size.
type Parameters struct {
	FontSize   int    // size in pixels
	Characters string // characters the font should contain
	Flip       bool   // whether to generate the font for y-up targets
}

// Creates parameters with all the values set explicitly.
func NewParameters(fontSize int, characters string, flip bool) *Parameters {
	return &Parameters{ FontSize: fontSize, Characters: characters, Flip: flip }
}

// Creates parameters with the given size and default values
// for the rest of fields.
func SizedParameters(fontSize int) *Parameters {
	return &Parameters{ FontSize: fontSize }
}

// Returns the parameters used when none are given.
func DefaultParameters() Parameters {
	return Parameters{
		FontSize: DefaultFontSize,
		Characters: generator.DefaultChars,
		Flip: false,
	}
}

// Returns parameters with the size embedded in the filename (see
// [SizeFromFilename]()), or nil if the name doesn't carry a usable
// size.
func ParametersFromFilename(filename string) *Parameters {
	size, found := SizeFromFilename(filename)
	if !found || size == 0 { return nil }
	return SizedParameters(size)
}

// Returns the effective configuration, with the defaults applied.
func (self *Parameters) resolve() (Parameters, error) {
	config := DefaultParameters()
	if self == nil { return config, nil }
	if self.FontSize < 0 { return config, ErrInvalidFontSize }

	if self.FontSize > 0 { config.FontSize = self.FontSize }
	if self.Characters != "" { config.Characters = self.Characters }
	config.Flip = self.Flip
	return config, nil
}

package ttfasset

import "errors"

import "github.com/tinne26/ttfasset/generator"

// Returned by [TrueTypeLoader.Load]() when given a zero [FileHandle],
// which doesn't refer to any file.
var ErrZeroHandle = errors.New("zero file handle")

// Describes an asset to be loaded: its name, the handle it resolves
// to and the parameters to load it with.
type AssetDescriptor struct {
	Name   string
	Handle FileHandle
	Params *Parameters
}

// A SyncLoader loads assets of a given kind within the calling
// goroutine. Loaders are registered on a [Manager] by file extension.
type SyncLoader interface {
	// Maps the asset name to the file to load.
	Resolve(filename string) (FileHandle, error)

	// Loads the asset from the resolved file. The parameters may be nil.
	Load(manager *Manager, filename string, file FileHandle, params *Parameters) (*generator.BitmapFont, error)

	// Returns the assets that must be loaded before this one.
	Dependencies(filename string, file FileHandle, params *Parameters) []AssetDescriptor
}

// The subset of [*generator.Generator] used by [TrueTypeLoader].
type FontGenerator interface {
	GenerateFont(size int, characters string, flip bool) (*generator.BitmapFont, error)
	Dispose()
}

var _ SyncLoader = (*TrueTypeLoader)(nil)

// A TrueTypeLoader loads .ttf and .otf files and converts them into
// bitmap fonts. Loaders hold no state between loads, so they can be
// shared.
type TrueTypeLoader struct {
	resolver Resolver
	open     func(generator.Opener) (FontGenerator, error)
}

// Creates a new loader that resolves names through the given resolver
// decorated with a [SizedResolver], so "fonts/arial_s24.ttf" loads
// "fonts/arial.ttf".
func NewTrueTypeLoader(resolver Resolver) *TrueTypeLoader {
	return &TrueTypeLoader{
		resolver: NewSizedResolver(resolver),
		open: openGenerator,
	}
}

func openGenerator(handle generator.Opener) (FontGenerator, error) {
	fontGenerator, err := generator.Open(handle)
	if err != nil { return nil, err }
	return fontGenerator, nil
}

// Satisfies the [SyncLoader] interface.
func (self *TrueTypeLoader) Resolve(filename string) (FileHandle, error) {
	return self.resolver.Resolve(filename)
}

// Opens the given file with a font generator and rasterizes it with the
// given parameters, or the defaults if params is nil. The generator is
// always disposed before returning, even on failure. Errors from the
// generator are returned unchanged. A zero file handle fails with
// [ErrZeroHandle] before anything is opened.
func (self *TrueTypeLoader) Load(_ *Manager, filename string, file FileHandle, params *Parameters) (*generator.BitmapFont, error) {
	if file.IsZero() { return nil, ErrZeroHandle }
	config, err := params.resolve()
	if err != nil { return nil, err }

	fontGenerator, err := self.open(file)
	if err != nil { return nil, err }
	defer fontGenerator.Dispose()

	tracer().Debugf("loader: generating '%s' at %dpx (flip = %t)", filename, config.FontSize, config.Flip)
	return fontGenerator.GenerateFont(config.FontSize, config.Characters, config.Flip)
}

// Satisfies the [SyncLoader] interface. Font files have no dependencies.
func (self *TrueTypeLoader) Dependencies(string, FileHandle, *Parameters) []AssetDescriptor {
	return nil
}

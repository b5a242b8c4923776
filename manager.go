package ttfasset

import "fmt"
import "errors"
import "strings"

import "github.com/tinne26/ttfasset/generator"

// Returned by [Manager.Load]() when no loader matches the asset name.
var ErrNoLoader = errors.New("no loader registered for asset")

// Returned by [Manager.Load]() when a loader reports dependencies.
// The manager doesn't track dependencies between assets.
var ErrDependencies = errors.New("asset dependencies are not supported")

// Returned by [Manager.Load]() when a loader reports success but
// returns no asset.
var ErrNilAsset = errors.New("loader returned a nil asset")

// A minimal synchronous asset manager. It associates loaders with file
// extensions and runs them on demand. Loaded assets are returned to the
// caller and not retained.
//
// Managers are not safe for concurrent use while loaders are being set.
type Manager struct {
	loaders map[string]SyncLoader
}

// Creates a new manager with no loaders.
func NewManager() *Manager {
	return &Manager{ loaders: make(map[string]SyncLoader) }
}

// Sets the loader for the given extension. Extensions are matched
// case-insensitively, with or without the leading dot ("ttf" and ".TTF"
// are equivalent). Multi-part extensions like ".ttf.gz" are allowed.
// A nil loader removes the association.
func (self *Manager) SetLoader(extension string, loader SyncLoader) {
	extension = normalizeExtension(extension)
	if loader == nil {
		delete(self.loaders, extension)
		return
	}
	self.loaders[extension] = loader
}

// Registers a [TrueTypeLoader] over the given resolver for .ttf and
// .otf files, including their gzipped variants.
func (self *Manager) SetFontLoaders(resolver Resolver) {
	loader := NewTrueTypeLoader(resolver)
	for _, extension := range []string{".ttf", ".otf", ".ttf.gz", ".otf.gz"} {
		self.SetLoader(extension, loader)
	}
}

// Returns the loader for the given asset name, or nil if none
// matches. When multiple extensions match, the longest one wins.
func (self *Manager) Loader(filename string) SyncLoader {
	lowerName := strings.ToLower(filename)
	var best SyncLoader
	bestLen := 0
	for extension, loader := range self.loaders {
		if len(extension) > bestLen && strings.HasSuffix(lowerName, extension) {
			best, bestLen = loader, len(extension)
		}
	}
	return best
}

// Resolves and loads the given asset with the matching loader. The
// parameters may be nil.
func (self *Manager) Load(filename string, params *Parameters) (*generator.BitmapFont, error) {
	loader := self.Loader(filename)
	if loader == nil { return nil, fmt.Errorf("%w: '%s'", ErrNoLoader, filename) }

	handle, err := loader.Resolve(filename)
	if err != nil { return nil, err }
	deps := loader.Dependencies(filename, handle, params)
	if len(deps) > 0 {
		return nil, fmt.Errorf("%w: '%s' requires %d assets", ErrDependencies, filename, len(deps))
	}

	font, err := loader.Load(self, filename, handle, params)
	if err != nil { return nil, fmt.Errorf("loading '%s': %w", filename, err) }
	if font == nil { return nil, fmt.Errorf("%w: '%s'", ErrNilAsset, filename) }
	tracer().Infof("loaded '%s' from '%s' (%d glyphs)", filename, handle.Path(), font.NumGlyphs())
	return font, nil
}

func normalizeExtension(extension string) string {
	extension = strings.ToLower(extension)
	if !strings.HasPrefix(extension, ".") { extension = "." + extension }
	return extension
}

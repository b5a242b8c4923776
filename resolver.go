package ttfasset

import "io/fs"
import "errors"
import "regexp"
import "strconv"

// A Resolver maps an asset name to a concrete file handle.
type Resolver interface {
	Resolve(filename string) (FileHandle, error)
}

// Adapter to allow the use of ordinary functions as resolvers.
type ResolverFunc func(filename string) (FileHandle, error)

// Satisfies the [Resolver] interface.
func (self ResolverFunc) Resolve(filename string) (FileHandle, error) {
	return self(filename)
}

// Resolves names as paths inside a filesystem, like an [embed.FS] or
// the result of [os.DirFS](). Names must be valid [fs.FS] paths
// (slash separated, unrooted).
type FSResolver struct {
	fsys fs.FS
}

// Creates a resolver for the given filesystem. If fsys is nil,
// the method will panic.
func NewFSResolver(fsys fs.FS) *FSResolver {
	if fsys == nil { panic("NewFSResolver(nil)") }
	return &FSResolver{ fsys: fsys }
}

// Satisfies the [Resolver] interface. The file is not required
// to exist at resolution time.
func (self *FSResolver) Resolve(filename string) (FileHandle, error) {
	if !fs.ValidPath(filename) {
		return FileHandle{}, &fs.PathError{ Op: "resolve", Path: filename, Err: fs.ErrInvalid }
	}
	return NewFileHandle(self.fsys, filename), nil
}

// Resolves names as OS filesystem paths, exactly as given.
type AbsoluteResolver struct{}

// Satisfies the [Resolver] interface.
func (AbsoluteResolver) Resolve(filename string) (FileHandle, error) {
	return NewFileHandle(nil, filename), nil
}

// ---- sized resolver ----

var sizeSuffixRegexp = regexp.MustCompile(`_s(\d{1,3})`)

// Returned by [SizedResolver.Resolve]() when the filename is empty.
var ErrNilFilename = errors.New("filename must not be empty")

// A SizedResolver decorates another resolver to allow requesting the
// same font file under multiple names, one per configuration. Names like
// "fonts/arial_s24.ttf" are resolved as "fonts/arial.ttf" by the inner
// resolver.
type SizedResolver struct {
	inner Resolver
}

// Creates a new sized resolver that delegates to the given resolver.
// If inner is nil, the method will panic.
func NewSizedResolver(inner Resolver) *SizedResolver {
	if inner == nil { panic("NewSizedResolver(nil)") }
	return &SizedResolver{ inner: inner }
}

// Removes the first size suffix (_s followed by one to three digits)
// from the filename and forwards the result to the inner resolver,
// returning its handle and error unchanged. Names without a size
// suffix are forwarded as they are.
func (self *SizedResolver) Resolve(filename string) (FileHandle, error) {
	if filename == "" { return FileHandle{}, ErrNilFilename }
	parsedFilename := StripSizeSuffix(filename)
	if parsedFilename != filename {
		tracer().Debugf("sized resolver: '%s' -> '%s'", filename, parsedFilename)
	}
	return self.inner.Resolve(parsedFilename)
}

// Returns the filename without its first size suffix. Only the first
// occurrence is removed: "a_s1_s2.ttf" becomes "a_s2.ttf".
func StripSizeSuffix(filename string) string {
	loc := sizeSuffixRegexp.FindStringIndex(filename)
	if loc == nil { return filename }
	return filename[ : loc[0]] + filename[loc[1] : ]
}

// Returns the size embedded in the first size suffix of the filename,
// if any. The returned size may be zero (e.g. "font_s0.ttf").
func SizeFromFilename(filename string) (int, bool) {
	match := sizeSuffixRegexp.FindStringSubmatch(filename)
	if match == nil { return 0, false }
	size, err := strconv.Atoi(match[1])
	if err != nil { return 0, false } // unreachable with 1-3 digits
	return size, true
}

package ttfasset

import "io"
import "os"
import "path"
import "io/fs"
import "strings"

// A FileHandle identifies a concrete file, either within an [fs.FS]
// or in the OS filesystem. Handles are plain values and don't hold
// any open resources.
type FileHandle struct {
	path string
	fsys fs.FS // nil for OS paths
}

// Creates a handle for the given path inside the given filesystem.
// If fsys is nil, the path is interpreted as an OS path.
func NewFileHandle(fsys fs.FS, filepath string) FileHandle {
	return FileHandle{ path: filepath, fsys: fsys }
}

// Returns the path of the file, as given on creation.
func (self FileHandle) Path() string { return self.path }

// Returns the last element of the path.
func (self FileHandle) Name() string {
	if self.fsys == nil { return baseName(self.path) }
	return path.Base(self.path)
}

// Returns the file extension without the leading dot, or an
// empty string if the name has no extension.
func (self FileHandle) Extension() string {
	name := self.Name()
	dot := strings.LastIndexByte(name, '.')
	if dot == -1 { return "" }
	return name[dot + 1 : ]
}

// Returns the file name without its extension.
func (self FileHandle) NameWithoutExtension() string {
	name := self.Name()
	dot := strings.LastIndexByte(name, '.')
	if dot == -1 { return name }
	return name[ : dot]
}

// Returns whether the handle has been initialized with a path.
func (self FileHandle) IsZero() bool { return self.path == "" && self.fsys == nil }

// Opens the file for reading. The caller must close it.
func (self FileHandle) Open() (io.ReadCloser, error) {
	if self.fsys == nil { return os.Open(self.path) }
	return self.fsys.Open(self.path)
}

// Returns whether the file exists and can be stat'ed.
func (self FileHandle) Exists() bool {
	var err error
	if self.fsys == nil {
		_, err = os.Stat(self.path)
	} else {
		_, err = fs.Stat(self.fsys, self.path)
	}
	return err == nil
}

func (self FileHandle) String() string { return self.path }

// Like filepath.Base, but without turning empty paths into ".".
func baseName(filepath string) string {
	cut := strings.LastIndexAny(filepath, "/" + string(os.PathSeparator))
	if cut == -1 { return filepath }
	return filepath[cut + 1 : ]
}

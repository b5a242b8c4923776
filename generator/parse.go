package generator

import "io"
import "bytes"
import "errors"
import "compress/gzip"

import "golang.org/x/image/font/sfnt"

// Anything that can provide the raw bytes of a font file. File handles
// returned by asset resolvers satisfy this interface.
type Opener interface {
	Open() (io.ReadCloser, error)
}

var ErrNotFound = errors.New("font property not found or empty")

// Reads the whole content of the given handle and closes it. Read errors
// take precedence over close errors. Gzipped content is decompressed.
func readAllAndClose(handle Opener) ([]byte, error) {
	file, err := handle.Open()
	if err != nil { return nil, err }

	fontBytes, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	err = file.Close()
	if err != nil { return nil, err }
	if isGzipped(fontBytes) { return gunzip(fontBytes) }
	return fontBytes, nil
}

func isGzipped(data []byte) bool {
	return len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b
}

func gunzip(data []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil { return nil, err }
	plain, err := io.ReadAll(reader)
	if err != nil {
		_ = reader.Close()
		return nil, err
	}
	return plain, reader.Close()
}

// Returns the requested font property. The returned string might be
// empty even when error is nil. If the property is missing, [ErrNotFound]
// will be returned.
func fontProperty(font *sfnt.Font, buffer *sfnt.Buffer, property sfnt.NameID) (string, error) {
	str, err := font.Name(buffer, property)
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	return str, err
}

package generator

// This file contains shared test helpers and fakes.

import "io"
import "bytes"
import "embed"
import "errors"
import "testing"

import "golang.org/x/image/font/gofont/goregular"

// GoKerned.ttf is Go Regular with a GPOS pair kerning lookup added
// for A+V (-300 units) and T+o (-250 units).
//go:embed testdata/GoKerned.ttf
var testfs embed.FS

type bytesOpener struct{ data []byte }
func (self bytesOpener) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(self.data)), nil
}

type failingOpener struct{}
func (failingOpener) Open() (io.ReadCloser, error) {
	return nil, errors.New("fakeOpen")
}

type fakeReadCloser struct{ errOnRead bool }
func (self fakeReadCloser) Read(p []byte) (n int, err error) {
	if self.errOnRead { return 0, errors.New("fakeRead") }
	return 0, io.EOF
}
func (self fakeReadCloser) Close() error {
	return errors.New("fakeClose")
}

type readCloserOpener struct{ rc io.ReadCloser }
func (self readCloserOpener) Open() (io.ReadCloser, error) { return self.rc, nil }

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	generator, err := Open(bytesOpener{ goregular.TTF })
	if err != nil { t.Fatalf("unexpected error opening test font: %s", err) }
	t.Cleanup(generator.Dispose)
	return generator
}

func newKernedTestGenerator(t *testing.T) *Generator {
	t.Helper()
	data, err := testfs.ReadFile("testdata/GoKerned.ttf")
	if err != nil { t.Fatalf("unexpected error reading test font: %s", err) }
	generator, err := OpenBytes(data)
	if err != nil { t.Fatalf("unexpected error opening test font: %s", err) }
	t.Cleanup(generator.Dispose)
	return generator
}

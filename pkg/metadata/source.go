package metadata

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"os"
)

// Source is a readable metadata document.
type Source interface {
	// Name identifies the source in errors and logs.
	Name() string
	// Open returns a reader over the whole document.
	Open(ctx context.Context) (io.ReadCloser, error)
}

// FileSource reads the document at path on the local filesystem.
func FileSource(path string) Source {
	return fileSource(path)
}

type fileSource string

func (s fileSource) Name() string { return string(s) }

func (s fileSource) Open(_ context.Context) (io.ReadCloser, error) {
	return os.Open(string(s))
}

// FSSource reads the named document from fsys.
func FSSource(fsys fs.FS, name string) Source {
	return &fsSource{fsys: fsys, name: name}
}

type fsSource struct {
	fsys fs.FS
	name string
}

func (s *fsSource) Name() string { return s.name }

func (s *fsSource) Open(_ context.Context) (io.ReadCloser, error) {
	return s.fsys.Open(s.name)
}

// BytesSource serves an in-memory document.
func BytesSource(name string, data []byte) Source {
	return &bytesSource{name: name, data: data}
}

type bytesSource struct {
	name string
	data []byte
}

func (s *bytesSource) Name() string { return s.name }

func (s *bytesSource) Open(_ context.Context) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.data)), nil
}

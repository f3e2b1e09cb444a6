// Package streams resolves endpoint names to character streams, wrapping
// compression codecs by file suffix and binding "-" to the standard streams.
package streams

import (
	"io"
	"os"
	"strings"

	bzip2 "github.com/dsnet/compress/bzip2"
	gzip "github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"
)

// Resolver maps endpoint names to streams. Stdin and Stdout back the "-"
// sentinel so callers can redirect without touching process-wide state.
type Resolver struct {
	Stdin  io.Reader
	Stdout io.Writer
}

// Default binds "-" to the process standard streams.
var Default = &Resolver{Stdin: os.Stdin, Stdout: os.Stdout}

// multiCloser closes the codec layer before the underlying file and keeps
// the first error.
type multiCloser struct {
	io.Reader
	io.Writer
	closers []io.Closer
}

func (m *multiCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// OpenRead opens name for reading. "-" yields the resolver's stdin; the
// .gz, .bz2 and .xz suffixes select the matching decompressor; anything
// else is plain UTF-8 text. Errors from the OS or the codec propagate
// unchanged.
func (r *Resolver) OpenRead(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(r.Stdin), nil
	}
	fh, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(name, ".gz"):
		zr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiCloser{Reader: zr, closers: []io.Closer{zr, fh}}, nil
	case strings.HasSuffix(name, ".bz2"):
		zr, err := bzip2.NewReader(fh, nil)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiCloser{Reader: zr, closers: []io.Closer{zr, fh}}, nil
	case strings.HasSuffix(name, ".xz"):
		zr, err := xz.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		// xz readers hold no resources of their own.
		return &multiCloser{Reader: zr, closers: []io.Closer{fh}}, nil
	default:
		return fh, nil
	}
}

// OpenWrite creates name for writing, with codec selection mirroring
// OpenRead. Closing the returned stream flushes the codec and then closes
// the file.
func (r *Resolver) OpenWrite(name string) (io.WriteCloser, error) {
	if name == "-" {
		return nopWriteCloser{r.Stdout}, nil
	}
	fh, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(name, ".gz"):
		zw := gzip.NewWriter(fh)
		return &multiCloser{Writer: zw, closers: []io.Closer{zw, fh}}, nil
	case strings.HasSuffix(name, ".bz2"):
		zw, err := bzip2.NewWriter(fh, nil)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiCloser{Writer: zw, closers: []io.Closer{zw, fh}}, nil
	case strings.HasSuffix(name, ".xz"):
		zw, err := xz.NewWriter(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiCloser{Writer: zw, closers: []io.Closer{zw, fh}}, nil
	default:
		return fh, nil
	}
}

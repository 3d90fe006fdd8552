// Package mapfile maps files into memory so their contents can be
// handed to the codec as plain byte slices.
package mapfile

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/mmap"
)

// File is a read-only memory mapping of a file.
//
// Like mmap.ReaderAt, it is not safe to call Close concurrently
// with other methods.
type File struct {
	name string
	r    *mmap.ReaderAt
}

// Open maps the named file for reading.
func Open(name string) (*File, error) {
	r, err := mmap.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to map %q", name)
	}
	return &File{name: name, r: r}, nil
}

// Name returns the name passed to Open.
func (f *File) Name() string {
	return f.name
}

// Len returns the size of the mapping in bytes.
func (f *File) Len() int {
	if f.r == nil {
		return 0
	}
	return f.r.Len()
}

// Bytes returns a copy of the mapped contents.
//
// The returned slice is owned by the caller and stays valid after
// Close.
func (f *File) Bytes() ([]byte, error) {
	if f.r == nil {
		return nil, errors.Errorf("%q: file already closed", f.name)
	}
	buf := make([]byte, f.r.Len())
	if len(buf) == 0 {
		// An empty file is never mapped, so ReadAt would
		// report it as closed.
		return buf, nil
	}
	if _, err := f.r.ReadAt(buf, 0); err != nil {
		return nil, errors.Wrapf(err, "unable to read %q", f.name)
	}
	return buf, nil
}

// Close unmaps the file. Calling Close more than once is a no-op.
func (f *File) Close() error {
	if f.r == nil {
		return nil
	}
	r := f.r
	f.r = nil
	if err := r.Close(); err != nil {
		return errors.Wrapf(err, "unable to unmap %q", f.name)
	}
	return nil
}

// Load returns the contents of the named file.
func Load(name string) (buf []byte, err error) {
	f, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return f.Bytes()
}

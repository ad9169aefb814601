package mmfile

import (
	"io"
	"os"

	"go.dw1.io/mmapfile"
)

var (
	_ io.Reader   = (*File)(nil)
	_ io.WriterTo = (*File)(nil)
	_ io.Closer   = (*File)(nil)
)

// File wraps either a memory-mapped file (preferred) or a plain os.File.
type File struct {
	mm *mmapfile.MmapFile
	os *os.File
}

// Open maps name read-only when possible; otherwise it falls back to
// os.Open. Non-regular files (pipes, devices) always use the fallback.
func Open(name string) (*File, error) {
	if info, err := os.Stat(name); err == nil && info.Mode().IsRegular() && info.Size() > 0 {
		if mf, err := mmapfile.Open(name); err == nil {
			return &File{mm: mf}, nil
		}
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	return &File{os: f}, nil
}

// Mapped reports whether the file is served from a memory map.
func (f *File) Mapped() bool { return f.mm != nil }

func (f *File) Read(p []byte) (int, error) {
	if f.mm != nil {
		return f.mm.Read(p)
	}

	return f.os.Read(p)
}

// WriteTo writes the remaining file contents to w.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	if f.mm != nil {
		return f.mm.WriteTo(w)
	}

	return io.Copy(w, f.os)
}

// Bytes exposes the mapped region; nil is returned for the os.File fallback.
func (f *File) Bytes() []byte {
	if f.mm != nil {
		return f.mm.Bytes()
	}

	return nil
}

// Stat retrieves file information.
func (f *File) Stat() (os.FileInfo, error) {
	if f.mm != nil {
		return f.mm.Stat()
	}

	return f.os.Stat()
}

// Name returns the original file name.
func (f *File) Name() string {
	if f.mm != nil {
		return f.mm.Name()
	}

	return f.os.Name()
}

// Close releases the map or the file descriptor.
func (f *File) Close() error {
	if f.mm != nil {
		return f.mm.Close()
	}

	return f.os.Close()
}

// Package storage is a small flat file store with a handle table, backed by
// memory, a sqlite database or a host directory.
package storage

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

const (
	MaxOpen      = 16
	MaxFiles     = 30
	MaxNameBytes = 10
	MaxFileBytes = 64 * 256
)

var (
	ErrNotFound    = errors.New("file not found")
	ErrInvalidName = errors.New("invalid file name")
	ErrNameTooLong = errors.New("file name too long")
	ErrCapacity    = errors.New("capacity exceeded")
	ErrIO          = errors.New("i/o error")
)

// Backend persists whole files by name.
type Backend interface {
	List() ([]string, error)
	Load(name string) ([]byte, error)
	Store(name string, data []byte) error
	Close() error
}

// FS is the handle-based API the shell works against.
type FS interface {
	ListDirectory() ([]string, error)
	OpenRead(name string) (Handle, error)
	OpenCreate(name string) (Handle, error)
	Read(h Handle, buf []byte) (int, error)
	Write(h Handle, data []byte) error
	Close(h Handle) error
}

// Handle identifies an open file.
type Handle int

type openFile struct {
	inUse bool
	write bool
	name  string
	data  []byte
	pos   int
}

// FileSystem implements FS on top of a Backend.
type FileSystem struct {
	mu      sync.Mutex
	backend Backend
	open    [MaxOpen]openFile
}

var _ FS = (*FileSystem)(nil)

func NewFileSystem(b Backend) *FileSystem {
	return &FileSystem{backend: b}
}

// Backend returns the underlying store.
func (fs *FileSystem) Backend() Backend { return fs.backend }

// ValidateName checks a file name against the store's naming rules.
func ValidateName(name string) error {
	if name == "" || name == "." || name == ".." || !utf8.ValidString(name) {
		return ErrInvalidName
	}
	if len(name) > MaxNameBytes {
		return ErrNameTooLong
	}
	if strings.ContainsAny(name, `/\`) {
		return ErrInvalidName
	}
	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return ErrInvalidName
		}
	}
	return nil
}

// ListDirectory returns up to MaxFiles names in sorted order.
func (fs *FileSystem) ListDirectory() ([]string, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.list()
}

func (fs *FileSystem) list() ([]string, error) {
	names, err := fs.backend.List()
	if err != nil {
		return nil, fmt.Errorf("%w: list: %v", ErrIO, err)
	}
	out := names[:0:0]
	for _, n := range names {
		if ValidateName(n) == nil {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	if len(out) > MaxFiles {
		out = out[:MaxFiles]
	}
	return out, nil
}

func (fs *FileSystem) alloc() (Handle, error) {
	for i := range fs.open {
		if !fs.open[i].inUse {
			return Handle(i), nil
		}
	}
	return -1, fmt.Errorf("%w: too many open files", ErrCapacity)
}

func (fs *FileSystem) handle(h Handle) (*openFile, error) {
	if h < 0 || int(h) >= MaxOpen || !fs.open[h].inUse {
		return nil, fmt.Errorf("%w: bad handle %d", ErrIO, h)
	}
	return &fs.open[h], nil
}

// OpenRead opens an existing file for reading.
func (fs *FileSystem) OpenRead(name string) (Handle, error) {
	if err := ValidateName(name); err != nil {
		return -1, err
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()
	h, err := fs.alloc()
	if err != nil {
		return -1, err
	}
	data, err := fs.backend.Load(name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return -1, err
		}
		return -1, fmt.Errorf("%w: load %s: %v", ErrIO, name, err)
	}
	fs.open[h] = openFile{inUse: true, name: name, data: data}
	return h, nil
}

// OpenCreate creates name, or truncates it if it exists, and opens it for
// writing. The file is visible in listings immediately.
func (fs *FileSystem) OpenCreate(name string) (Handle, error) {
	if err := ValidateName(name); err != nil {
		return -1, err
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()
	h, err := fs.alloc()
	if err != nil {
		return -1, err
	}
	names, err := fs.backend.List()
	if err != nil {
		return -1, fmt.Errorf("%w: list: %v", ErrIO, err)
	}
	exists := false
	for _, n := range names {
		if n == name {
			exists = true
			break
		}
	}
	if !exists && len(names) >= MaxFiles {
		return -1, fmt.Errorf("%w: directory full", ErrCapacity)
	}
	if err := fs.backend.Store(name, nil); err != nil {
		return -1, fmt.Errorf("%w: create %s: %v", ErrIO, name, err)
	}
	fs.open[h] = openFile{inUse: true, write: true, name: name}
	return h, nil
}

// Read copies the next bytes of the file into buf. It returns 0 at end of file.
func (fs *FileSystem) Read(h Handle, buf []byte) (int, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	f, err := fs.handle(h)
	if err != nil {
		return 0, err
	}
	n := copy(buf, f.data[f.pos:])
	f.pos += n
	return n, nil
}

// Write appends data to a file opened with OpenCreate. A write that would
// exceed MaxFileBytes is rejected whole.
func (fs *FileSystem) Write(h Handle, data []byte) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	f, err := fs.handle(h)
	if err != nil {
		return err
	}
	if !f.write {
		return fmt.Errorf("%w: %s not open for writing", ErrIO, f.name)
	}
	if len(f.data)+len(data) > MaxFileBytes {
		return fmt.Errorf("%w: %s larger than %d bytes", ErrCapacity, f.name, MaxFileBytes)
	}
	f.data = append(f.data, data...)
	return nil
}

// Close releases the handle, flushing written data to the backend.
func (fs *FileSystem) Close(h Handle) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	f, err := fs.handle(h)
	if err != nil {
		return err
	}
	defer func() { *f = openFile{} }()
	if !f.write {
		return nil
	}
	if err := fs.backend.Store(f.name, f.data); err != nil {
		return fmt.Errorf("%w: store %s: %v", ErrIO, f.name, err)
	}
	return nil
}

// ReadFile reads a whole file through the handle API.
func ReadFile(fs FS, name string) ([]byte, error) {
	h, err := fs.OpenRead(name)
	if err != nil {
		return nil, err
	}
	defer fs.Close(h)
	var out []byte
	buf := make([]byte, 256)
	for {
		n, err := fs.Read(h, buf)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return out, nil
		}
		out = append(out, buf[:n]...)
	}
}

// WriteFile creates or truncates name and writes data to it.
func WriteFile(fs FS, name string, data []byte) error {
	h, err := fs.OpenCreate(name)
	if err != nil {
		return err
	}
	if err := fs.Write(h, data); err != nil {
		fs.Close(h)
		return err
	}
	return fs.Close(h)
}

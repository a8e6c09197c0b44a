package filestore

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

var ErrNotFound = errors.New("file not found")

// Saved describes an upload already written to the store.
type Saved struct {
	Filename string
	Path     string
	Mimetype string
	Size     int64
}

// Store keeps uploaded files flat in one directory.
type Store struct {
	Dir string
	Now func() time.Time
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}
	return &Store{Dir: dir, Now: time.Now}, nil
}

// Save writes the upload as <field>-<unix millis><ext>.
func (s *Store) Save(field string, fh *multipart.FileHeader) (Saved, error) {
	src, err := fh.Open()
	if err != nil {
		return Saved{}, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	mt, err := mimetype.DetectReader(src)
	if err != nil {
		return Saved{}, fmt.Errorf("detect mimetype: %w", err)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return Saved{}, fmt.Errorf("rewind upload: %w", err)
	}

	dst, name, err := s.create(field, filepath.Ext(fh.Filename))
	if err != nil {
		return Saved{}, err
	}

	size, err := io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(filepath.Join(s.Dir, name))
		return Saved{}, fmt.Errorf("write upload: %w", err)
	}

	return Saved{
		Filename: name,
		Path:     filepath.Join(s.Dir, name),
		Mimetype: mt.String(),
		Size:     size,
	}, nil
}

func (s *Store) create(field, ext string) (*os.File, string, error) {
	ts := s.Now().UnixMilli()
	for i := 0; i < 100; i++ {
		name := field + "-" + strconv.FormatInt(ts+int64(i), 10) + ext
		f, err := os.OpenFile(filepath.Join(s.Dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, name, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, "", fmt.Errorf("create file: %w", err)
		}
	}
	return nil, "", fmt.Errorf("create file: no free name for %s", field)
}

// Path resolves a stored file by name. Directory parts of name are dropped.
func (s *Store) Path(name string) (string, error) {
	base := filepath.Base(filepath.Clean("/" + name))
	if base == "/" || base == "." {
		return "", ErrNotFound
	}
	p := filepath.Join(s.Dir, base)
	info, err := os.Stat(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", err
	}
	if info.IsDir() {
		return "", ErrNotFound
	}
	return p, nil
}

func (s *Store) Remove(name string) error {
	p, err := s.Path(name)
	if err != nil {
		return err
	}
	return os.Remove(p)
}

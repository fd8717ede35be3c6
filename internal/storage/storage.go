// Package storage loads and saves documents as plain "\n"-delimited text.
package storage

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

var (
	// ErrLoad marks a document that could not be read.
	ErrLoad = errors.New("load failure")
	// ErrSave marks a document that could not be written.
	ErrSave = errors.New("save failure")
)

const fileMode os.FileMode = 0o644

// FileStore reads and writes whole documents on an afero filesystem.
type FileStore struct {
	fs afero.Fs
}

// NewFileStore returns a store over fs. A nil fs means the OS filesystem.
func NewFileStore(fs afero.Fs) *FileStore {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FileStore{fs: fs}
}

// Load returns the full text at path.
//
// Errors wrap both ErrLoad and the underlying cause, so callers can test
// for fs.ErrNotExist.
func (s *FileStore) Load(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrLoad)
	}
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}
	log.Debug().Str("path", path).Int("bytes", len(data)).Msg("document loaded")
	return string(data), nil
}

// Save replaces the file at path with text, byte for byte.
func (s *FileStore) Save(path, text string) error {
	if path == "" {
		return fmt.Errorf("%w: no file name", ErrSave)
	}
	if err := afero.WriteFile(s.fs, path, []byte(text), fileMode); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSave, path, err)
	}
	log.Debug().Str("path", path).Int("bytes", len(text)).Msg("document saved")
	return nil
}

package services

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	apperrors "financebook/internal/errors"
)

// iconService stores category icons on the local filesystem under a single
// directory. Filenames are restricted to bare names so a request can never
// reach outside the icon directory.
type iconService struct {
	dir string
}

// NewIconService creates a new IconServicer storing files under dir.
func NewIconService(dir string) IconServicer {
	return &iconService{dir: dir}
}

// SaveIcon writes an uploaded icon and returns the stored filename.
func (s *iconService) SaveIcon(filename string, src io.Reader) (string, error) {
	name, err := sanitizeFilename(filename)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return name, nil
}

// IconPath resolves a stored icon filename to its path on disk.
func (s *iconService) IconPath(filename string) (string, error) {
	name, err := sanitizeFilename(filename)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", apperrors.ErrFileNotFound
		}
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return path, nil
}

func sanitizeFilename(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", apperrors.ErrInvalidFilename
	}
	return name, nil
}

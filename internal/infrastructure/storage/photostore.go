package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// allowedPhotoExtensions is the whitelist of accepted photo file extensions.
var allowedPhotoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// PhotoStore persists uploaded complaint photos on the local filesystem.
// Stored files get random names so original filenames never reach disk.
type PhotoStore struct {
	dir        string
	maxBytes   int64
	publicPath string
}

func NewPhotoStore(dir string, maxSizeMB int, publicPath string) (*PhotoStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &PhotoStore{
		dir:        dir,
		maxBytes:   int64(maxSizeMB) * 1024 * 1024,
		publicPath: strings.TrimSuffix(publicPath, "/"),
	}, nil
}

// Save writes the photo to disk and returns its public path.
func (s *PhotoStore) Save(originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedPhotoExtensions[ext] {
		return "", fmt.Errorf("unsupported photo type: %s", ext)
	}

	name := uuid.NewString() + ext
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create photo file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write photo file: %w", err)
	}
	if s.maxBytes > 0 && written > s.maxBytes {
		os.Remove(path)
		return "", fmt.Errorf("photo exceeds the %d byte limit", s.maxBytes)
	}

	return s.publicPath + "/" + name, nil
}

// Remove deletes a previously stored photo by its public path.
// Missing files are not treated as errors.
func (s *PhotoStore) Remove(publicPath string) error {
	name := filepath.Base(publicPath)
	if name == "." || name == "/" || name == "" {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove photo file: %w", err)
	}

	return nil
}

// Dir returns the directory photos are stored in. The HTTP layer serves
// it as static content under the public path.
func (s *PhotoStore) Dir() string {
	return s.dir
}

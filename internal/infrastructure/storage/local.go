// Package storage persists uploaded profile pictures on the local filesystem.
package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/picode11/user-admin-api/internal/core/domain"
)

// allowedExtensions is the image extension allowlist.
var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
}

// LocalStore writes uploads into a single directory under randomized names.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

// Store writes src into the upload directory under a collision-resistant
// name. Only the extension of the original filename survives, so a crafted
// name cannot escape the directory.
func (s *LocalStore) Store(src io.Reader, originalFilename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalFilename)))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", domain.ErrUnsupportedFileType
	}

	name, err := randomName(ext)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return name, nil
}

// randomName returns 16 hex characters of entropy plus the extension.
func randomName(ext string) (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate filename: %w", err)
	}
	return hex.EncodeToString(b) + ext, nil
}

package ports

import "io"

// ImageStore persists uploaded profile pictures under collision-resistant
// names and returns the stored filename. Callers persist the association onto
// the owning user record.
type ImageStore interface {
	// Store writes src to storage under a randomized name that preserves the
	// original file's extension. Disallowed extensions fail with
	// domain.ErrUnsupportedFileType.
	Store(src io.Reader, originalFilename string) (string, error)
}

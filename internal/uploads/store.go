// Package uploads persists listing images on the local file system and
// serves them back by filename.
package uploads

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// Store writes uploaded files into a single directory. Colliding filenames
// overwrite the previous file; there is no dedup or orphan cleanup.
type Store struct {
	Dir string
}

// NewStore creates the upload directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{Dir: dir}, nil
}

// Allowed reports whether the filename carries an accepted image extension.
// The check is case-insensitive and extension-only; file contents are not
// inspected.
func Allowed(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return allowedExtensions[ext]
}

// Sanitize strips directory components and replaces unsafe characters so the
// name is usable as a flat filename.
func Sanitize(filename string) string {
	name := filepath.Base(filepath.ToSlash(filename))
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeChars.ReplaceAllString(name, "")
	name = strings.Trim(name, "._")
	return name
}

// Save writes the file under the sanitized name and returns the stored path.
func (s *Store) Save(src io.Reader, filename string) (string, error) {
	path := filepath.Join(s.Dir, Sanitize(filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return path, nil
}

// Path returns the storage path for a stored filename.
func (s *Store) Path(filename string) string {
	return filepath.Join(s.Dir, Sanitize(filename))
}

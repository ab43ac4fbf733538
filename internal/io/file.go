// Package ioutils provides file system utilities for the vehicle catalog.
//
// This package contains functions for:
//   - Opening text files with UTF-8 validation
//   - File writing
//   - Filename sanitization
//   - Directory creation
package ioutils

import (
	"context"
	"io"
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// ErrInvalidUTF8 is returned by readers from OpenUTF8 on the first byte
// sequence that is not valid UTF-8.
var ErrInvalidUTF8 = encoding.ErrInvalidUTF8

// utf8File couples a validating reader with the file it reads from.
type utf8File struct {
	io.Reader
	file *os.File
}

func (f *utf8File) Close() error {
	return f.file.Close()
}

// OpenUTF8 opens a text file whose content must be valid UTF-8.
//
// Reads fail with ErrInvalidUTF8 as soon as an invalid sequence is met,
// instead of silently substituting replacement characters. The caller
// must Close the returned reader.
//
// Example:
//
//	r, err := OpenUTF8("cars.csv")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
func OpenUTF8(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	return &utf8File{
		Reader: NewUTF8Reader(file),
		file:   file,
	}, nil
}

// NewUTF8Reader wraps r so that reading invalid UTF-8 fails with ErrInvalidUTF8.
func NewUTF8Reader(r io.Reader) io.Reader {
	return transform.NewReader(r, encoding.UTF8Validator)
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
//
// Parameters:
//   - ctx: Context for cancellation (currently unused but reserved for future use)
//   - path: File path to write to
//   - data: Bytes to write
func WriteFile(ctx context.Context, path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

var (
	invalidChars  = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots  = regexp.MustCompile(`\.+$`)
	repeatedSpace = regexp.MustCompile(`\s+`)
)

// SanitizeFileName removes or replaces characters that are invalid in file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Leading and trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("MAN TGS 26.440")   // Returns "MAN TGS 26.440"
//	SanitizeFileName("Liebherr: LTM/1")  // Returns "Liebherr_ LTM_1"
func SanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = repeatedSpace.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// Package fsutil provides the file I/O collaborators of typscii: reading and
// validating source files, normalising their text, and writing rendered
// output atomically.
package fsutil

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-enry/go-enry/v2"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrInvalidUTF8 indicates the content is not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

	// ErrBinaryInput indicates the content looks like binary data.
	ErrBinaryInput = errors.New("input appears to be binary")
)

// FileInfo captures the state of a source file when it was read.
type FileInfo struct {
	// Path is the path the file was read from.
	Path string

	// Mode is the file's permission and mode bits.
	Mode os.FileMode

	// ModTime is the file's modification time.
	ModTime time.Time

	// Size is the file size in bytes.
	Size int64

	// Hash is the SHA-256 hash of the file content.
	Hash [32]byte
}

// ReadFile reads a file and returns its content along with metadata.
// Failures are categorised with ErrNotFound, ErrPermissionDenied and
// ErrIsDirectory.
func ReadFile(ctx context.Context, path string) ([]byte, *FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, categorize(path, err)
	}
	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, categorize(path, err)
	}

	info := &FileInfo{
		Path:    path,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
		Hash:    sha256.Sum256(content),
	}

	return content, info, nil
}

func categorize(path string, err error) error {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("read %s: %w", path, err)
	}
}

// ValidateInput rejects content that cannot be rendered as text:
// binary data (as detected by enry) and invalid UTF-8.
func ValidateInput(content []byte) error {
	if enry.IsBinary(content) {
		return ErrBinaryInput
	}
	if !utf8.Valid(content) {
		return fmt.Errorf("%w (first invalid byte at offset %d)", ErrInvalidUTF8, firstInvalidUTF8(content))
	}
	return nil
}

func firstInvalidUTF8(content []byte) int {
	for offset := 0; offset < len(content); {
		r, size := utf8.DecodeRune(content[offset:])
		if r == utf8.RuneError && size <= 1 {
			return offset
		}
		offset += size
	}
	return -1
}

// utf8BOM is the byte order mark some editors prepend to UTF-8 files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// NormalizeNewlines strips a leading UTF-8 byte order mark and converts
// CRLF and lone CR line endings to LF.
func NormalizeNewlines(content []byte) string {
	content = bytes.TrimPrefix(content, utf8BOM)
	if bytes.IndexByte(content, '\r') < 0 {
		return string(content)
	}
	s := strings.ReplaceAll(string(content), "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

package security

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	domainerrors "github.com/khanhnv2901/ssllint/internal/shared/errors"
)

// ErrNotRegularFile indicates the input path points at a directory, device or socket.
var ErrNotRegularFile = errors.New("not a regular file")

// ResolveInputFile cleans the provided path, makes it absolute and ensures it refers to
// a regular file no larger than maxBytes. The returned path is absolute.
func ResolveInputFile(path string, maxBytes int64) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New("input path is required")
	}
	if strings.ContainsRune(path, 0) {
		return "", fmt.Errorf("input path %q contains a NUL byte", path)
	}

	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("resolve input path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("stat input file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s", ErrNotRegularFile, abs)
	}
	if maxBytes > 0 && info.Size() > maxBytes {
		return "", fmt.Errorf("%w: %s is %d bytes (limit %d)", domainerrors.ErrInputTooLarge, abs, info.Size(), maxBytes)
	}

	return abs, nil
}

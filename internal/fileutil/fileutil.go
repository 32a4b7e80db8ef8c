// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrEmptyPath    = errors.New("path cannot be empty")
	ErrPathIsDir    = errors.New("path is a directory")
	ErrNullBytePath = errors.New("path contains null byte")
)

// tempPattern names in-flight files so a crashed write is recognizable.
const tempPattern = ".svg2png-*.tmp"

// WriteFileAtomic writes data to path through a temp file in the same
// directory followed by a rename. Readers never observe a truncated file;
// an existing file at path is replaced.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	if err := validatePath(path); err != nil {
		return err
	}
	if DirExists(path) {
		return fmt.Errorf("%w: %s", ErrPathIsDir, path)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), tempPattern)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmpFile.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if chmodErr := os.Chmod(tmpPath, perm); chmodErr != nil {
		return fmt.Errorf("setting permissions: %w", chmodErr)
	}

	if renameErr := os.Rename(tmpPath, path); renameErr != nil {
		return fmt.Errorf("replacing %s: %w", path, renameErr)
	}
	return nil
}

// ReplaceExt swaps the extension of path when it ends with from.
// Paths that do not end with from get to appended.
func ReplaceExt(path, from, to string) string {
	return strings.TrimSuffix(path, from) + to
}

// validatePath rejects empty paths and embedded null bytes.
func validatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if strings.ContainsRune(path, 0) {
		return ErrNullBytePath
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "svg2png" -> false (name)
//   - "./svg2png.yaml" -> true (relative path)
//   - "/etc/svg2png.yaml" -> true (absolute)
//   - "C:\config\svg2png.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

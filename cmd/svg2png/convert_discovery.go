package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	svg2png "github.com/alnah/go-svg2png"
	"github.com/alnah/go-svg2png/internal/fileutil"
)

// Sentinel errors for file discovery. Both abort the run before any
// conversion is attempted.
var (
	ErrMissingDirectory = errors.New("asset directory not found")
	ErrEmptyInput       = errors.New("no .svg files found")
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles lists the .svg files directly inside dir, in directory
// listing order. Matching is case-sensitive and does not recurse.
// The job list is computed once; files added later are not picked up.
func discoverFiles(dir, outputDir string) ([]FileToConvert, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingDirectory, dir)
		}
		return nil, fmt.Errorf("checking %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrMissingDirectory, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	var files []FileToConvert
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), svg2png.SourceExt) || isDirEntryDir(dir, e) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		files = append(files, FileToConvert{
			InputPath:  path,
			OutputPath: resolveOutputPath(path, outputDir),
		})
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrEmptyInput, dir)
	}
	return files, nil
}

// isDirEntryDir reports whether e is a directory, following symlinks.
func isDirEntryDir(dir string, e fs.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&fs.ModeSymlink != 0 {
		return fileutil.DirExists(filepath.Join(dir, e.Name()))
	}
	return false
}

// resolveOutputPath derives the PNG path for a source file: same base name
// with .svg replaced by .png, next to the source unless outputDir is set.
func resolveOutputPath(inputPath, outputDir string) string {
	name := fileutil.ReplaceExt(filepath.Base(inputPath), svg2png.SourceExt, svg2png.TargetExt)
	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), name)
	}
	return filepath.Join(outputDir, name)
}

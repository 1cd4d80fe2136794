// Package fileutil materializes input files as text for the comparison
// pipeline and enumerates candidate files for directory scans.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"plagcheck/internal/faults"
)

// TextReader reads whole files as text. The zero value is ready to use.
type TextReader struct{}

// Read implements compare.Reader.
func (TextReader) Read(path string) (string, error) {
	return ReadText(path)
}

// ReadText returns the contents of the regular file at path. Directories fail
// with faults.ErrIsDirectory; anything else that is not a readable regular
// file fails with faults.ErrNotFound. Both errors name the path.
func ReadText(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", faults.Wrap(faults.ErrNotFound, "read", "", fmt.Sprintf("%s was not found", path), unwrapPathError(err))
	}
	if info.IsDir() {
		return "", faults.Wrap(faults.ErrIsDirectory, "read", "", fmt.Sprintf("%s is a directory", path), nil)
	}
	if !info.Mode().IsRegular() {
		return "", faults.Wrap(faults.ErrNotFound, "read", "", fmt.Sprintf("%s is not a regular file", path), nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", faults.Wrap(faults.ErrNotFound, "read", "", fmt.Sprintf("%s could not be read", path), unwrapPathError(err))
	}
	return string(data), nil
}

// ListFiles returns the regular files directly inside dir whose extension
// matches one of extensions (case-insensitive), sorted by name. An empty
// extension list accepts every file. Subdirectories are not descended.
func ListFiles(dir string, extensions []string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, faults.Wrap(faults.ErrNotFound, "list", "", fmt.Sprintf("%s was not found", dir), unwrapPathError(err))
	}
	if !info.IsDir() {
		return nil, faults.Wrap(faults.ErrIO, "list", "", fmt.Sprintf("%s is not a directory", dir), nil)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, faults.Wrap(faults.ErrIO, "list", "", dir, unwrapPathError(err))
	}

	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed[ext] = struct{}{}
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		// Follow symlinks to regular files, skip everything else.
		target, err := os.Stat(path)
		if err != nil || !target.Mode().IsRegular() {
			continue
		}
		if len(allowed) > 0 {
			if _, ok := allowed[strings.ToLower(filepath.Ext(entry.Name()))]; !ok {
				continue
			}
		}
		files = append(files, path)
	}
	sort.Strings(files)
	return files, nil
}

// unwrapPathError drops the *fs.PathError wrapper so the path is not repeated
// in messages that already name it.
func unwrapPathError(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}

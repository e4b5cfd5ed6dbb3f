// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// BoardsExtension is the file extension of board sources.
const BoardsExtension = ".boards"

// FindFilesByExtension recursively searches the given root path for all files ending
// with the specified extension. Paths are returned in lexical order.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// CollectSources expands paths into a list of source files. A file is taken
// as is, whatever its extension; a directory contributes every file with
// extension below it. Duplicates are dropped, first occurrence wins.
func CollectSources(paths []string, extension string) ([]string, error) {
	var out []string
	seen := make(map[string]struct{})
	add := func(p string) {
		key := filepath.Clean(p)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", p, err)
		}
		if !info.IsDir() {
			add(p)
			continue
		}

		found, err := FindFilesByExtension(p, extension)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", p, err)
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("no %s files found in %s", extension, p)
		}
		for _, f := range found {
			add(f)
		}
	}
	return out, nil
}

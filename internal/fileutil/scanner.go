// Package fileutil discovers skill documents on disk. Results are sorted so
// scan order, and therefore report output, is deterministic across runs.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DiscoverOptions configures corpus discovery.
type DiscoverOptions struct {
	// Extensions lists file extensions to include. Defaults to markdown.
	Extensions []string
	// ExcludeDirs lists directory names skipped during the walk. Hidden
	// directories are always skipped.
	ExcludeDirs []string
}

// DefaultDiscoverOptions returns discovery defaults for a skill corpus.
func DefaultDiscoverOptions() DiscoverOptions {
	return DiscoverOptions{
		Extensions:  []string{".md", ".markdown"},
		ExcludeDirs: []string{"node_modules", "vendor", "dist"},
	}
}

// Discover returns the sorted absolute paths of all corpus files under
// root. A root that is itself a file returns a single-element list without
// extension filtering, so explicit single-file invocations always scan.
func Discover(root string, opts DiscoverOptions) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}

	if !info.IsDir() {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %s: %w", root, err)
		}
		return []string{abs}, nil
	}

	extMap := make(map[string]bool)
	for _, ext := range opts.Extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extMap[strings.ToLower(ext)] = true
	}
	excludeMap := make(map[string]bool)
	for _, dir := range opts.ExcludeDirs {
		excludeMap[dir] = true
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			if excludeMap[d.Name()] || strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if len(extMap) > 0 && !extMap[strings.ToLower(filepath.Ext(d.Name()))] {
			return nil
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", path, err)
		}
		files = append(files, abs)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", root, err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no skill documents found under %s", root)
	}

	sort.Strings(files)
	return files, nil
}

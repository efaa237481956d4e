// Package adapter contains parsing, filesystem and export adapters for the
// codeflash CLI.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "github.com/codeflash-sh/codeflash/internal/model"
)

const pythonFileExt = ".py"

// Directories that never contain user source worth analyzing.
var skippedDirNames = map[string]struct{}{
	".git":         {},
	"__pycache__":  {},
	".venv":        {},
	"venv":         {},
	".tox":         {},
	"node_modules": {},
}

// SourceFSAdapter abstracts filesystem operations the domain layer relies on
// when resolving the file set for a run. It hides direct `os` access so the
// workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Get expands the provided roots (files or directories, directories
	// recursively) into a sorted, deduplicated list of Python source files.
	Get(roots []m.Path) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path so callers can distinguish files
	// from directories and detect invalid roots up front.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// LocalSourceFSAdapter is the concrete SourceFSAdapter backed by the local
// filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter ready to be
// wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects Python source files for the provided roots. An invalid root
// is a configuration error and aborts resolution; unreadable individual
// files are left for the per-unit skip handling during analysis.
func (a *LocalSourceFSAdapter) Get(roots []m.Path) ([]m.Path, error) {
	seen := make(map[string]struct{})

	var files []m.Path

	for _, root := range roots {
		rootPath, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("invalid path %s: %w", root, err)
		}

		if !info.IsDir() {
			if filepath.Ext(rootPath) != pythonFileExt {
				return nil, fmt.Errorf("not a Python source file: %s", root)
			}

			appendUnique(&files, seen, rootPath)

			continue
		}

		err = filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				if _, skip := skippedDirNames[filepath.Base(path)]; skip && path != rootPath {
					return filepath.SkipDir
				}

				return nil
			}

			if filepath.Ext(path) != pythonFileExt {
				return nil
			}

			appendUnique(&files, seen, path)

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", root, err)
		}
	}

	// Sorted order keeps runs deterministic regardless of walk interleaving.
	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

func appendUnique(files *[]m.Path, seen map[string]struct{}, path string) {
	if _, exists := seen[path]; exists {
		return
	}

	seen[path] = struct{}{}
	*files = append(*files, m.Path(path))
}

func normalizeRootPath(root string) (string, error) {
	if strings.HasPrefix(root, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		suffix := strings.TrimPrefix(root, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		root = filepath.Join(home, suffix)
	}

	if root == "" {
		root = "."
	}

	return filepath.Abs(root)
}

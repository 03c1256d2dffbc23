// Package discovery finds Python source files under a root directory using
// glob include and ignore patterns.
package discovery

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// compiledPattern holds both the pattern string and compiled glob.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// FileDiscovery walks a directory tree and matches files against include
// and ignore patterns.
type FileDiscovery struct {
	rootDir        string
	includes       []compiledPattern
	ignorePatterns []compiledPattern
}

// New compiles the given glob patterns for the root directory.
func New(rootDir string, includes, ignores []string) (*FileDiscovery, error) {
	fd := &FileDiscovery{rootDir: rootDir}

	for _, pattern := range includes {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		fd.includes = append(fd.includes, compiledPattern{pattern: pattern, glob: g})
	}
	for _, pattern := range ignores {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		fd.ignorePatterns = append(fd.ignorePatterns, compiledPattern{pattern: pattern, glob: g})
	}
	return fd, nil
}

// Discover returns every matching file path under the root, in walk order.
func (fd *FileDiscovery) Discover() ([]string, error) {
	files := []string{}

	err := filepath.Walk(fd.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(fd.rootDir, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if fd.shouldIgnore(relPath) {
			return nil
		}
		if fd.matchesAny(relPath, fd.includes) {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}

// shouldIgnore checks a relative path against the ignore patterns, matching
// directories the way a trailing /** would.
func (fd *FileDiscovery) shouldIgnore(relPath string) bool {
	if strings.HasPrefix(relPath, ".docsmith/") || relPath == ".docsmith" {
		return true
	}
	if fd.matchesAny(relPath, fd.ignorePatterns) {
		return true
	}
	for _, p := range fd.ignorePatterns {
		if dir, ok := strings.CutSuffix(p.pattern, "/**"); ok {
			if relPath == dir || strings.HasPrefix(relPath, dir+"/") {
				return true
			}
		}
	}
	return false
}

func (fd *FileDiscovery) matchesAny(relPath string, patterns []compiledPattern) bool {
	for _, p := range patterns {
		if p.glob.Match(relPath) {
			return true
		}
		// "**/*.py" style patterns should also match files at the root.
		if strings.HasPrefix(p.pattern, "**/") {
			if g, err := glob.Compile(strings.TrimPrefix(p.pattern, "**/"), '/'); err == nil && g.Match(relPath) {
				return true
			}
		}
	}
	return false
}

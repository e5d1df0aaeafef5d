package stylegen

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// loadGitIgnore compiles the .gitignore at the root of sourceDir.
// A missing .gitignore is fine and yields nil.
func loadGitIgnore(sourceDir string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(sourceDir, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

// ScanFiles finds all style documents under sourceDir matching includes.
// Matches are returned in pattern order, sorted within a pattern and
// deduplicated, without directories and without files ignored by
// sourceDir/.gitignore.
func ScanFiles(sourceDir string, includes []string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}
	gi := loadGitIgnore(sourceDir)

	for _, pattern := range includes {
		// Use doublestar for ** glob support
		matches, err := doublestar.FilepathGlob(filepath.Join(sourceDir, pattern))
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}
		sort.Strings(matches)

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(gi, sourceDir, match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	return files, stats, nil
}

// shouldSkipFile reports whether path is ignored by gi. Paths are matched
// relative to sourceDir.
func shouldSkipFile(gi *ignore.GitIgnore, sourceDir, path string) bool {
	if gi == nil {
		return false
	}
	rel, err := filepath.Rel(sourceDir, path)
	if err != nil {
		return false
	}
	return gi.MatchesPath(filepath.ToSlash(rel))
}

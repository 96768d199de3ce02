// internal/catalog/catalog.go

// Package catalog resolves theme names against the theme directory.
//
// A theme is a kitty *.conf file; its name is the base filename without
// the extension. Name matching is case-insensitive throughout.
package catalog

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/csand/kittytheme/internal/config"
	"github.com/csand/kittytheme/internal/logger"
)

// ErrThemeNotFound is returned when a requested name has no matching file.
var ErrThemeNotFound = errors.New("theme not found")

// ErrNoThemes is returned when a random pick is needed but the theme
// directory is empty or missing.
var ErrNoThemes = errors.New("no themes found")

// Stem returns the theme name for a theme file path.
func Stem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), config.ThemeExt)
}

// themeFiles returns the sorted filenames of theme files in themeDir.
// A missing directory yields an empty slice, same as an empty one.
func themeFiles(themeDir string) ([]string, error) {
	entries, err := os.ReadDir(themeDir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debugf("theme directory does not exist: %s", themeDir)
			return nil, nil
		}
		return nil, fmt.Errorf("reading theme directory %s: %w", themeDir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), config.ThemeExt) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// List returns the names of all available themes, sorted case-insensitively
// ascending. An empty or missing directory yields an empty list, not an
// error.
func List(themeDir string) ([]string, error) {
	files, err := themeFiles(themeDir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, Stem(f))
	}
	sort.SliceStable(names, func(i, j int) bool {
		li, lj := strings.ToLower(names[i]), strings.ToLower(names[j])
		if li != lj {
			return li < lj
		}
		return names[i] < names[j]
	})
	return names, nil
}

// Resolve finds the theme file for a name, matching case-insensitively.
// When several files match, the lexicographically first one wins.
func Resolve(themeDir, name string) (string, error) {
	files, err := themeFiles(themeDir)
	if err != nil {
		return "", err
	}
	for _, f := range files {
		if strings.EqualFold(Stem(f), name) {
			path := filepath.Join(themeDir, f)
			logger.Debugf("resolved theme %q to %s", name, path)
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %q (use --list to see available themes)", ErrThemeNotFound, name)
}

// Random picks a uniformly random theme file from themeDir.
func Random(themeDir string) (string, error) {
	files, err := themeFiles(themeDir)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("%w in %s", ErrNoThemes, themeDir)
	}
	return filepath.Join(themeDir, files[rand.IntN(len(files))]), nil
}

// internal/links/links.go

// Package links owns the three symlinks kittytheme maintains: the active
// theme link that kitty includes, and the light and dark default links it
// toggles between.
package links

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/csand/kittytheme/internal/catalog"
	"github.com/csand/kittytheme/internal/config"
	"github.com/csand/kittytheme/internal/logger"
)

// maxLinkDepth bounds symlink chain resolution.
const maxLinkDepth = 40

// Active identifies which default the active link currently matches.
type Active int

const (
	// ActiveNeither means the active link matches neither default; the
	// state is degraded and toggle resets it to dark.
	ActiveNeither Active = iota
	ActiveDark
	ActiveLight
)

func (a Active) String() string {
	switch a {
	case ActiveDark:
		return "dark"
	case ActiveLight:
		return "light"
	default:
		return "neither"
	}
}

// State is a snapshot of the three links, resolved to theme names.
type State struct {
	Dark   string // dark default theme name
	Light  string // light default theme name
	Active Active
}

// ToggleResult reports what a toggle did.
type ToggleResult struct {
	Now      Active // which default the active link points at afterwards
	Degraded bool   // the previous state matched neither default
}

// Manager mutates the symlink triple described by the configuration.
type Manager struct {
	themeDir   string
	activeLink string
	lightLink  string
	darkLink   string
}

// NewManager builds a Manager from the loaded configuration.
func NewManager(cfg config.Config) *Manager {
	return &Manager{
		themeDir:   cfg.ThemeDir,
		activeLink: cfg.ThemeLink,
		lightLink:  cfg.LightThemeLink,
		darkLink:   cfg.DarkThemeLink,
	}
}

// EnsureInitialized creates any missing links: the dark and light defaults
// each point at a random theme file, then the active link points at the
// dark link. Existing links are never touched, whatever their target, so
// calling this again is a no-op.
func (m *Manager) EnsureInitialized() error {
	for _, link := range []string{m.darkLink, m.lightLink} {
		if exists(link) {
			continue
		}
		target, err := catalog.Random(m.themeDir)
		if err != nil {
			return err
		}
		logger.Infof("initializing %s -> %s", link, target)
		if err := os.Symlink(target, link); err != nil {
			return fmt.Errorf("creating %s: %w", link, err)
		}
	}
	if !exists(m.activeLink) {
		logger.Infof("initializing %s -> %s", m.activeLink, m.darkLink)
		if err := os.Symlink(m.darkLink, m.activeLink); err != nil {
			return fmt.Errorf("creating %s: %w", m.activeLink, err)
		}
	}
	return nil
}

// State resolves all three links and reports which default is active.
func (m *Manager) State() (State, error) {
	dark, err := resolve(m.darkLink)
	if err != nil {
		return State{}, fmt.Errorf("resolving %s: %w", m.darkLink, err)
	}
	light, err := resolve(m.lightLink)
	if err != nil {
		return State{}, fmt.Errorf("resolving %s: %w", m.lightLink, err)
	}

	st := State{
		Dark:   catalog.Stem(dark),
		Light:  catalog.Stem(light),
		Active: ActiveNeither,
	}
	active, err := resolve(m.activeLink)
	if err != nil {
		logger.Debugf("active link unresolvable: %v", err)
		return st, nil
	}
	switch active {
	case light:
		st.Active = ActiveLight
	case dark:
		st.Active = ActiveDark
	}
	return st, nil
}

// Toggle switches the active link to the other default. When the active
// link matches neither default it is reset to dark and the result reports
// the state as degraded.
func (m *Manager) Toggle() (ToggleResult, error) {
	st, err := m.State()
	if err != nil {
		return ToggleResult{}, err
	}

	switch st.Active {
	case ActiveLight:
		logger.Debugf("light theme configured, enabling dark theme")
		if err := m.relink(m.activeLink, m.darkLink); err != nil {
			return ToggleResult{}, err
		}
		return ToggleResult{Now: ActiveDark}, nil
	case ActiveDark:
		logger.Debugf("dark theme configured, enabling light theme")
		if err := m.relink(m.activeLink, m.lightLink); err != nil {
			return ToggleResult{}, err
		}
		return ToggleResult{Now: ActiveLight}, nil
	default:
		logger.Warnf("active link matches neither default, resetting to dark")
		if err := m.relink(m.activeLink, m.darkLink); err != nil {
			return ToggleResult{}, err
		}
		return ToggleResult{Now: ActiveDark, Degraded: true}, nil
	}
}

// SetDark repoints the dark default at the named theme. The active link is
// left untouched even when it currently points at the dark link.
func (m *Manager) SetDark(name string) error {
	return m.setDefault(m.darkLink, name)
}

// SetLight repoints the light default at the named theme. The active link
// is left untouched even when it currently points at the light link.
func (m *Manager) SetLight(name string) error {
	return m.setDefault(m.lightLink, name)
}

func (m *Manager) setDefault(link, name string) error {
	target, err := catalog.Resolve(m.themeDir, name)
	if err != nil {
		return err
	}
	if old, err := resolve(link); err == nil {
		logger.Debugf("existing target of %s: %s", link, old)
	}
	logger.Infof("changing %s -> %s", link, target)
	return m.relink(link, target)
}

// relink replaces link with a symlink to target. This is unlink-then-relink,
// not an atomic rename; a crash in between leaves the link missing, which
// EnsureInitialized recovers on the next run.
func (m *Manager) relink(link, target string) error {
	if err := os.Remove(link); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("unlinking %s: %w", link, err)
	}
	if err := os.Symlink(target, link); err != nil {
		return fmt.Errorf("linking %s -> %s: %w", link, target, err)
	}
	return nil
}

// exists reports whether path exists as a link or file, without following
// a final symlink.
func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// resolve follows a chain of symlinks to its ultimate target. A dangling
// final target is returned as-is rather than treated as an error, so that
// comparisons against it still work.
func resolve(path string) (string, error) {
	for i := 0; i < maxLinkDepth; i++ {
		fi, err := os.Lstat(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return path, nil
			}
			return "", err
		}
		if fi.Mode()&os.ModeSymlink == 0 {
			return path, nil
		}
		target, err := os.Readlink(path)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(path), target)
		}
		path = target
	}
	return "", fmt.Errorf("too many levels of symbolic links: %s", path)
}

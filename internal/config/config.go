// internal/config/config.go

// Package config loads and validates the kittytheme configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/csand/kittytheme/internal/logger"
)

// ErrConfigInvalid marks a fatal configuration problem. It is reported
// before any action runs.
var ErrConfigInvalid = errors.New("invalid configuration")

// Config holds the paths and the control socket kittytheme works with.
// It is constructed once per invocation and read-only afterwards.
type Config struct {
	ThemeDir       string `toml:"theme_dir"`
	ConfDir        string `toml:"conf_dir"`
	ThemeLink      string `toml:"theme_link"`
	LightThemeLink string `toml:"light_theme_link"`
	DarkThemeLink  string `toml:"dark_theme_link"`
	Socket         string `toml:"socket"`
}

// Default returns the built-in configuration. Link paths are derived from
// the conf dir unless the config file overrides them individually.
func Default() Config {
	themeDir := ExpandUser("~/storage/lib/kitty-themes/themes")
	confDir := ExpandUser("~/.config/kitty")
	return Config{
		ThemeDir:       themeDir,
		ConfDir:        confDir,
		ThemeLink:      filepath.Join(confDir, DefaultThemeLinkName),
		LightThemeLink: filepath.Join(confDir, DefaultLightLinkName),
		DarkThemeLink:  filepath.Join(confDir, DefaultDarkLinkName),
		Socket:         "unix:/tmp/kittysocket",
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ConfigDirName, DefaultConfigFileName), nil
}

// Load reads the TOML config file at path over the defaults. A missing file
// is not an error: the defaults stand. A file that cannot be parsed, or a
// merged configuration with any required field left empty, is
// ErrConfigInvalid.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		defPath, err := DefaultPath()
		if err != nil {
			logger.Warnf("cannot determine user config dir: %v", err)
			return cfg, cfg.validate()
		}
		path = defPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debugf("config file not found: %s, using defaults", path)
			return cfg, cfg.validate()
		}
		return cfg, fmt.Errorf("%w: reading %s: %v", ErrConfigInvalid, path, err)
	}

	var file Config
	metadata, err := toml.Decode(string(data), &file)
	if err != nil {
		return cfg, fmt.Errorf("%w: parsing %s: %v", ErrConfigInvalid, path, err)
	}
	if len(metadata.Undecoded()) > 0 {
		logger.Warnf("config file %s: unrecognized keys: %v", path, metadata.Undecoded())
	}

	cfg.merge(file)
	logger.Debugf("loaded configuration from: %s", path)
	return cfg, cfg.validate()
}

// merge overlays the fields set in the file onto the defaults. A conf_dir
// override moves the three links with it unless they are overridden too.
func (c *Config) merge(file Config) {
	if file.ConfDir != "" {
		c.ConfDir = ExpandUser(file.ConfDir)
		c.ThemeLink = filepath.Join(c.ConfDir, DefaultThemeLinkName)
		c.LightThemeLink = filepath.Join(c.ConfDir, DefaultLightLinkName)
		c.DarkThemeLink = filepath.Join(c.ConfDir, DefaultDarkLinkName)
	}
	if file.ThemeDir != "" {
		c.ThemeDir = ExpandUser(file.ThemeDir)
	}
	if file.ThemeLink != "" {
		c.ThemeLink = ExpandUser(file.ThemeLink)
	}
	if file.LightThemeLink != "" {
		c.LightThemeLink = ExpandUser(file.LightThemeLink)
	}
	if file.DarkThemeLink != "" {
		c.DarkThemeLink = ExpandUser(file.DarkThemeLink)
	}
	if file.Socket != "" {
		c.Socket = file.Socket
	}
}

// validate checks that every required field made it through the merge.
func (c *Config) validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"theme_dir", c.ThemeDir},
		{"conf_dir", c.ConfDir},
		{"theme_link", c.ThemeLink},
		{"light_theme_link", c.LightThemeLink},
		{"dark_theme_link", c.DarkThemeLink},
		{"socket", c.Socket},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("%w: required field %q is empty", ErrConfigInvalid, f.name)
		}
	}
	return nil
}

// ExpandUser expands a path starting with ~ to the user's home.
func ExpandUser(p string) string {
	if p == "" || p[0] != '~' {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	if p == "~" {
		return home
	}
	return filepath.Join(home, p[2:])
}

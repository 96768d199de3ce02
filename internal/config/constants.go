package config

// Base application details
const AppName = "kittytheme"
const ConfigDirName = "kittytheme"
const DefaultConfigFileName = "config.toml"

// Version is printed by --version.
const Version = "0.1"

// ThemeExt is the file extension kitty theme files carry.
const ThemeExt = ".conf"

// Default link names under the kitty config directory.
const (
	DefaultThemeLinkName = "theme.conf"
	DefaultLightLinkName = "light-theme.conf"
	DefaultDarkLinkName  = "dark-theme.conf"
)

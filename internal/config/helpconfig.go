package config

// HelpConfig returns the setup instructions printed by --help-config.
func HelpConfig() string {
	return `kittytheme setup
================

1. Get a collection of kitty theme files (one palette per *.conf file),
   for example: git clone https://github.com/dexpota/kitty-themes

2. Write ~/.config/kittytheme/config.toml (every field optional,
   defaults shown):

     theme_dir = "~/storage/lib/kitty-themes/themes"
     conf_dir = "~/.config/kitty"
     socket = "unix:/tmp/kittysocket"

   The three symlinks theme.conf, light-theme.conf and dark-theme.conf
   are kept under conf_dir; override theme_link, light_theme_link or
   dark_theme_link to move them individually.

3. Add to ~/.config/kitty/kitty.conf:

     include theme.conf
     allow_remote_control yes
     listen_on unix:/tmp/kittysocket

   The include makes kitty load whatever the theme.conf symlink points
   at; the socket lets kittytheme recolor running sessions (--test,
   --live).

4. Restart kitty, then run kittytheme --list to see the available
   themes. The symlinks are created on first use.
`
}

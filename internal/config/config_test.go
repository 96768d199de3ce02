package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestExpandUser(t *testing.T) {
	home, _ := os.UserHomeDir()
	tests := []struct {
		input string
		want  string
	}{
		{"~/themes", filepath.Join(home, "themes")},
		{"~", home},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ExpandUser(tt.input); got != tt.want {
				t.Errorf("ExpandUser(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDefaultLinksLiveUnderConfDir(t *testing.T) {
	cfg := Default()
	for _, l := range []string{cfg.ThemeLink, cfg.LightThemeLink, cfg.DarkThemeLink} {
		if filepath.Dir(l) != cfg.ConfDir {
			t.Errorf("link %q not under conf dir %q", l, cfg.ConfDir)
		}
	}
	if cfg.Socket == "" {
		t.Error("default socket is empty")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadPartialOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `theme_dir = "/opt/kitty-themes"
socket = "unix:/run/user/1000/kitty.sock"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.ThemeDir != "/opt/kitty-themes" {
		t.Errorf("ThemeDir = %q, want %q", cfg.ThemeDir, "/opt/kitty-themes")
	}
	if cfg.Socket != "unix:/run/user/1000/kitty.sock" {
		t.Errorf("Socket = %q, want the configured socket", cfg.Socket)
	}
	// Fields absent from the file keep their defaults.
	if cfg.ConfDir != Default().ConfDir {
		t.Errorf("ConfDir changed unexpectedly: %q", cfg.ConfDir)
	}
}

func TestLoadConfDirMovesLinks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `conf_dir = "/etc/kitty"
dark_theme_link = "/elsewhere/dark.conf"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.ThemeLink != "/etc/kitty/theme.conf" {
		t.Errorf("ThemeLink = %q, want it under the new conf dir", cfg.ThemeLink)
	}
	if cfg.LightThemeLink != "/etc/kitty/light-theme.conf" {
		t.Errorf("LightThemeLink = %q, want it under the new conf dir", cfg.LightThemeLink)
	}
	// An explicit link override wins over the conf_dir derivation.
	if cfg.DarkThemeLink != "/elsewhere/dark.conf" {
		t.Errorf("DarkThemeLink = %q, want the explicit override", cfg.DarkThemeLink)
	}
}

func TestLoadTildeExpansion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`theme_dir = "~/my-themes"`+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if cfg.ThemeDir != filepath.Join(home, "my-themes") {
		t.Errorf("ThemeDir = %q, want tilde expanded", cfg.ThemeDir)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed toml", "theme_dir = \n"},
		{"wrong type", "socket = 42\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if !errors.Is(err, ErrConfigInvalid) {
				t.Fatalf("Load() error = %v, want ErrConfigInvalid", err)
			}
		})
	}
}

func TestValidateEmptyField(t *testing.T) {
	cfg := Default()
	cfg.Socket = ""
	if err := cfg.validate(); !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("validate() error = %v, want ErrConfigInvalid", err)
	}
}

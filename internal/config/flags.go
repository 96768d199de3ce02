// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
)

// Flags holds values parsed from command-line flags. The action flags are
// independent booleans: more than one action may be requested per run.
type Flags struct {
	List     bool
	Show     bool
	Test     bool
	Toggle   bool
	SetDark  bool
	SetLight bool
	Live     bool

	Verbose    bool
	Debug      bool
	Version    bool
	HelpConfig bool
	ConfigPath string

	// Theme is the positional THEME argument consumed by --test, --setd
	// and --setl.
	Theme string
}

// Define sets up the command-line flags on the given FlagSet. Short and
// long spellings are bound to the same field.
func (f *Flags) Define(fs *flag.FlagSet) {
	fs.BoolVar(&f.List, "l", false, "List available themes.")
	fs.BoolVar(&f.List, "list", false, "List available themes.")
	fs.BoolVar(&f.Show, "s", false, "Show the current configuration.")
	fs.BoolVar(&f.Show, "show", false, "Show the current configuration.")
	fs.BoolVar(&f.Test, "test", false, "Test THEME in the current kitty session.")
	fs.BoolVar(&f.Toggle, "t", false, "Toggle between the dark and light themes.")
	fs.BoolVar(&f.Toggle, "toggle", false, "Toggle between the dark and light themes.")
	fs.BoolVar(&f.SetDark, "setd", false, "Set THEME as the dark default.")
	fs.BoolVar(&f.SetLight, "setl", false, "Set THEME as the light default.")
	fs.BoolVar(&f.Live, "L", false, "Update existing kitty sessions to use the config.")
	fs.BoolVar(&f.Live, "live", false, "Update existing kitty sessions to use the config.")
	fs.BoolVar(&f.Verbose, "v", false, "Enable verbose output.")
	fs.BoolVar(&f.Verbose, "verbose", false, "Enable verbose output.")
	fs.BoolVar(&f.Debug, "d", false, "Enable debugging output.")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debugging output.")
	fs.BoolVar(&f.Version, "version", false, "Print the version and exit.")
	fs.BoolVar(&f.HelpConfig, "help-config", false, "Print configuration setup instructions and exit.")
	fs.StringVar(&f.ConfigPath, "config", "",
		fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", ConfigDirName, DefaultConfigFileName))
}

// Parse parses the command line into the Flags struct. The first non-flag
// argument becomes the THEME name.
func (f *Flags) Parse(fs *flag.FlagSet, args []string) error {
	f.Define(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		f.Theme = fs.Arg(0)
	}
	return nil
}

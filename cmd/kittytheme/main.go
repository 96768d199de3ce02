// Command kittytheme sets and switches kitty terminal themes.
//
// It keeps three symlinks under the kitty config directory: theme.conf
// (the one kitty includes), light-theme.conf and dark-theme.conf. Actions
// on the command line list themes, show or toggle the current state, move
// the defaults, and push the result to running kitty sessions over the
// remote-control socket.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/csand/kittytheme/internal/action"
	"github.com/csand/kittytheme/internal/catalog"
	"github.com/csand/kittytheme/internal/config"
	"github.com/csand/kittytheme/internal/logger"
)

// Exit codes. Interrupts get their own code so scripts can tell a ^C from
// a failed run.
const (
	exitOK          = 0
	exitError       = 1
	exitUsage       = 2
	exitInterrupted = 130
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var flags config.Flags
	fs := flag.NewFlagSet(config.AppName, flag.ExitOnError)
	if err := flags.Parse(fs, args); err != nil {
		return exitUsage
	}

	if flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		return exitOK
	}
	if flags.HelpConfig {
		fmt.Print(config.HelpConfig())
		return exitOK
	}

	// Logging defaults to warnings only; -v and -d raise it.
	level := slog.LevelWarn
	if flags.Verbose {
		level = slog.LevelInfo
	}
	if flags.Debug {
		level = slog.LevelDebug
	}
	logger.Init(level, os.Stderr)

	// Match the traditional ^C behavior: a short notice and a distinct
	// exit code, wherever the run happens to be blocked.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		fmt.Fprintln(os.Stderr, "...interrupted by user, exiting.")
		os.Exit(exitInterrupted)
	}()

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		return exitError
	}
	logger.Debugf("theme dir: %s", cfg.ThemeDir)
	logger.Debugf("active link: %s", cfg.ThemeLink)

	dispatcher := action.NewDispatcher(cfg, os.Stdout)
	if err := dispatcher.Run(action.FromFlags(flags)); err != nil {
		return report(fs, err, flags.Debug)
	}
	return exitOK
}

// report prints an error the way its kind demands and picks the exit code.
func report(fs *flag.FlagSet, err error, debug bool) int {
	switch {
	case errors.Is(err, action.ErrUsage):
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		fs.Usage()
		return exitUsage
	case errors.Is(err, catalog.ErrThemeNotFound),
		errors.Is(err, catalog.ErrNoThemes),
		errors.Is(err, config.ErrConfigInvalid):
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		return exitError
	default:
		if debug {
			fmt.Fprintf(os.Stderr, "%s: unhandled error: %+v\n", config.AppName, err)
		} else {
			fmt.Fprintf(os.Stderr, "%s: unhandled error: %v (rerun with --debug for details)\n", config.AppName, err)
		}
		return exitError
	}
}

// Package kitty invokes kitty's remote-control interface to recolor
// running sessions.
package kitty

import (
	"os/exec"
	"strings"

	"github.com/csand/kittytheme/internal/logger"
)

// Bridge runs `kitty @ set-colors` against the configured control socket.
type Bridge struct {
	socket string
	run    func(name string, args ...string) error
}

// New returns a Bridge talking to the given socket address.
func New(socket string) *Bridge {
	return &Bridge{socket: socket, run: runCommand}
}

func runCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	return cmd.Run()
}

// args builds the argument vector for one apply call.
func (b *Bridge) args(themeFile string, allWindows bool) []string {
	args := []string{"@", "--to=" + b.socket, "set-colors"}
	if allWindows {
		args = append(args, "--all")
	}
	return append(args, themeFile)
}

// Apply pushes a theme file to the current kitty window, or to all windows.
// The call blocks until kitty returns; its exit status is not interpreted,
// a failure is only logged.
func (b *Bridge) Apply(themeFile string, allWindows bool) {
	args := b.args(themeFile, allWindows)
	logger.Debugf("executing: kitty %s", strings.Join(args, " "))
	if err := b.run("kitty", args...); err != nil {
		logger.Warnf("kitty set-colors failed: %v", err)
	}
}

// internal/action/action.go

// Package action validates and dispatches the actions requested on the
// command line.
package action

import (
	"errors"
	"fmt"
	"io"

	"github.com/csand/kittytheme/internal/catalog"
	"github.com/csand/kittytheme/internal/config"
	"github.com/csand/kittytheme/internal/kitty"
	"github.com/csand/kittytheme/internal/links"
	"github.com/csand/kittytheme/internal/logger"
)

// ErrUsage marks an invalid action combination or a missing argument. It is
// reported before any action executes.
var ErrUsage = errors.New("usage error")

// Request is the set of actions asked for in one invocation. The actions
// are independent booleans; several may be combined.
type Request struct {
	List     bool
	Show     bool
	Test     bool
	Toggle   bool
	SetDark  bool
	SetLight bool
	Live     bool

	// Theme is the name argument consumed by Test, SetDark and SetLight.
	Theme string
}

// FromFlags builds a Request from the parsed command-line flags.
func FromFlags(f config.Flags) Request {
	return Request{
		List:     f.List,
		Show:     f.Show,
		Test:     f.Test,
		Toggle:   f.Toggle,
		SetDark:  f.SetDark,
		SetLight: f.SetLight,
		Live:     f.Live,
		Theme:    f.Theme,
	}
}

// none reports whether no action was requested at all.
func (r Request) none() bool {
	return !r.List && !r.Show && !r.Test && !r.Toggle && !r.SetDark && !r.SetLight && !r.Live
}

// needsLinks reports whether any requested action reads or writes the
// symlink triple. List and Test only touch the catalog.
func (r Request) needsLinks() bool {
	return r.Show || r.Toggle || r.SetDark || r.SetLight || r.Live
}

// Validate enforces the usage rules before anything runs: actions taking a
// theme name must have one, and --test cannot be combined with --live.
func (r Request) Validate() error {
	if r.Theme == "" {
		for _, a := range []struct {
			set  bool
			name string
		}{
			{r.Test, "--test"},
			{r.SetDark, "--setd"},
			{r.SetLight, "--setl"},
		} {
			if a.set {
				return fmt.Errorf("%w: the %s action requires a theme name", ErrUsage, a.name)
			}
		}
	}
	if r.Test && r.Live {
		return fmt.Errorf("%w: --test and --live cannot be combined", ErrUsage)
	}
	return nil
}

// applier pushes a theme file to running kitty sessions.
type applier interface {
	Apply(themeFile string, allWindows bool)
}

// Dispatcher executes requested actions in a fixed order.
type Dispatcher struct {
	cfg   config.Config
	links *links.Manager
	kitty applier
	out   io.Writer
}

// NewDispatcher wires a Dispatcher from the loaded configuration. Output
// meant for the user goes to out.
func NewDispatcher(cfg config.Config, out io.Writer) *Dispatcher {
	return &Dispatcher{
		cfg:   cfg,
		links: links.NewManager(cfg),
		kitty: kitty.New(cfg.Socket),
		out:   out,
	}
}

// Run validates the request and executes each requested action exactly
// once, in the fixed order list, setd, setl, show, test, toggle, live.
// With no action requested, show runs.
func (d *Dispatcher) Run(req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if req.none() {
		logger.Debugf("no action requested, defaulting to show")
		req.Show = true
	}

	if req.needsLinks() {
		if err := d.links.EnsureInitialized(); err != nil {
			return err
		}
	}

	if req.List {
		if err := d.list(); err != nil {
			return err
		}
	}
	if req.SetDark {
		if err := d.links.SetDark(req.Theme); err != nil {
			return err
		}
	}
	if req.SetLight {
		if err := d.links.SetLight(req.Theme); err != nil {
			return err
		}
	}
	if req.Show {
		if err := d.show(); err != nil {
			return err
		}
	}
	if req.Test {
		if err := d.test(req.Theme); err != nil {
			return err
		}
	}
	if req.Toggle {
		if err := d.toggle(); err != nil {
			return err
		}
	}
	if req.Live {
		d.live()
	}
	return nil
}

// list prints all available theme names.
func (d *Dispatcher) list() error {
	logger.Debugf("looking for themes in: %s", d.cfg.ThemeDir)
	names, err := catalog.List(d.cfg.ThemeDir)
	if err != nil {
		return err
	}
	fmt.Fprintln(d.out, headingStyle.Render("Available Kitty Themes:"))
	for _, name := range names {
		fmt.Fprintf(d.out, "  %s\n", name)
	}
	return nil
}

// show prints the dark and light defaults, marking the one the active link
// matches.
func (d *Dispatcher) show() error {
	st, err := d.links.State()
	if err != nil {
		return err
	}
	fmt.Fprintln(d.out, headingStyle.Render("Configured kitty themes:"))
	fmt.Fprintf(d.out, "  dark:  %s%s\n", st.Dark, marker(st.Active == links.ActiveDark))
	fmt.Fprintf(d.out, "  light: %s%s\n", st.Light, marker(st.Active == links.ActiveLight))
	if st.Active == links.ActiveNeither {
		fmt.Fprintln(d.out, dimStyle.Render("  active theme matches neither default"))
	}
	return nil
}

func marker(active bool) string {
	if !active {
		return ""
	}
	return " " + activeStyle.Render("*")
}

// test applies a theme to the current kitty window without touching any
// symlink.
func (d *Dispatcher) test(name string) error {
	themeFile, err := catalog.Resolve(d.cfg.ThemeDir, name)
	if err != nil {
		return err
	}
	logger.Infof("changing theme of current kitty window to: %s", catalog.Stem(themeFile))
	d.kitty.Apply(themeFile, false)
	return nil
}

// toggle flips the active link between the two defaults.
func (d *Dispatcher) toggle() error {
	logger.Infof("toggling configured theme between light and dark")
	res, err := d.links.Toggle()
	if err != nil {
		return err
	}
	if res.Degraded {
		fmt.Fprintln(d.out, noticeStyle.Render(
			"Active theme link matched neither the light nor the dark default. Theme set to dark."))
	}
	logger.Infof("active theme is now the %s default", res.Now)
	return nil
}

// live pushes the active link to every running kitty window. kitty follows
// the symlink itself, so the link path is passed as-is.
func (d *Dispatcher) live() {
	logger.Infof("changing theme of all running kitty windows to: %s", d.cfg.ThemeLink)
	d.kitty.Apply(d.cfg.ThemeLink, true)
}

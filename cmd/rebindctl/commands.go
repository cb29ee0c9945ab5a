package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/MarkMcCaskey/rebind/internal/actions"
	"github.com/MarkMcCaskey/rebind/internal/button"
	"github.com/MarkMcCaskey/rebind/internal/config"
	"github.com/MarkMcCaskey/rebind/internal/errmsg"
	"github.com/MarkMcCaskey/rebind/internal/keymap"
	"github.com/MarkMcCaskey/rebind/internal/state"
)

var (
	errUsage      = errors.New("usage")
	errNoStore    = errors.New("persistence is disabled in the config")
	errNoProfile  = errors.New("no such profile")
	headerStyle   = lipgloss.NewStyle().Bold(true)
	conflictStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f1a208"))
)

const columnWidth = 16

type cli struct {
	cfg    *config.Config
	store  state.Interface // nil when persistence is off
	out    io.Writer
	logger *log.Logger
}

func (c *cli) dispatch(args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "list":
		return c.list()
	case "conflicts":
		return c.conflicts()
	case "translate":
		if len(rest) == 0 {
			return errUsage
		}
		return c.translate(rest)
	case "profiles":
		return c.profiles()
	case "export":
		if len(rest) > 1 {
			return errUsage
		}
		name := c.cfg.Profile
		if len(rest) == 1 {
			name = rest[0]
		}
		return c.export(name)
	case "delete":
		if len(rest) != 1 {
			return errUsage
		}
		return c.delete(rest[0])
	}
	return errUsage
}

// keymap returns the active profile, falling back to the config file when
// nothing has been saved.
func (c *cli) keymap() (*state.Keymap, error) {
	km, err := c.cfg.Keymap()
	if err != nil {
		return nil, errors.New(errmsg.Format(errmsg.OpKeymapLoad, err))
	}
	if c.store == nil {
		return km, nil
	}

	saved, err := c.store.LoadProfile(c.cfg.Profile)
	if err != nil {
		return nil, errors.New(errmsg.FormatWith(errmsg.OpProfileLoad, c.cfg.Profile, err))
	}
	if saved == nil {
		c.logger.Debug("profile not saved, using config", "profile", c.cfg.Profile)
		return km, nil
	}
	return saved, nil
}

func (c *cli) list() error {
	km, err := c.keymap()
	if err != nil {
		return err
	}

	shared := make(map[button.Button]bool)
	for _, conflict := range km.Conflicts() {
		shared[conflict.Button] = true
	}

	c.row(headerStyle, "ACTION", "SLOT 1", "SLOT 2", "SLOT 3")
	for _, a := range km.Actions() {
		set, _ := km.Bindings(a)
		cells := []string{string(a)}
		for _, slot := range set.Slots() {
			switch {
			case !slot.OK:
				cells = append(cells, "-")
			case shared[slot.Button]:
				cells = append(cells, slot.Button.String()+"*")
			default:
				cells = append(cells, slot.Button.String())
			}
		}
		c.row(lipgloss.NewStyle(), cells...)
	}

	fmt.Fprintf(c.out, "\naxes: motion x=%t y=%t, scroll x=%t y=%t\n",
		km.InvertMotionX(), km.InvertMotionY(), km.InvertScrollX(), km.InvertScrollY())
	if len(shared) > 0 {
		fmt.Fprintln(c.out, conflictStyle.Render("* bound to more than one action, see `rebindctl conflicts`"))
	}
	return nil
}

func (c *cli) conflicts() error {
	km, err := c.keymap()
	if err != nil {
		return err
	}

	conflicts := km.Conflicts()
	if len(conflicts) == 0 {
		fmt.Fprintln(c.out, "no shared buttons")
		return nil
	}

	c.row(headerStyle, "BUTTON", "WINNER", "ACTIONS")
	for _, conflict := range conflicts {
		names := make([]string, len(conflict.Actions))
		for i, a := range conflict.Actions {
			names[i] = string(a)
		}
		c.row(conflictStyle, conflict.Button.String(), string(conflict.Winner()), strings.Join(names, ", "))
	}
	return nil
}

func (c *cli) translate(names []string) error {
	km, err := c.keymap()
	if err != nil {
		return err
	}
	tr := keymap.ToTranslator(km)

	var errs []error
	for _, name := range names {
		b, err := button.Parse(name)
		if err != nil {
			errs = append(errs, errors.New(errmsg.FormatWith(errmsg.OpParse, name, err)))
			continue
		}
		a, ok := tr.Lookup(b)
		if !ok {
			c.row(lipgloss.NewStyle(), b.String(), "(unbound)")
			continue
		}
		c.row(lipgloss.NewStyle(), b.String(), string(a))
	}
	return errors.Join(errs...)
}

func (c *cli) profiles() error {
	if c.store == nil {
		return errNoStore
	}

	profiles, err := c.store.ListProfiles()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpProfileList, err))
	}
	if len(profiles) == 0 {
		fmt.Fprintln(c.out, "no saved profiles")
		return nil
	}

	c.row(headerStyle, "PROFILE", "UPDATED")
	for _, p := range profiles {
		name := p.Name
		if name == c.cfg.Profile {
			name += " (active)"
		}
		c.row(lipgloss.NewStyle(), name, humanize.Time(p.UpdatedAt))
	}
	return nil
}

func (c *cli) export(name string) error {
	var km *state.Keymap
	if c.store != nil {
		saved, err := c.store.LoadProfile(name)
		if err != nil {
			return errors.New(errmsg.FormatWith(errmsg.OpProfileLoad, name, err))
		}
		km = saved
	}
	if km == nil {
		if name != c.cfg.Profile {
			return errors.New(errmsg.FormatWith(errmsg.OpExport, name, errNoProfile))
		}
		var err error
		if km, err = c.keymap(); err != nil {
			return err
		}
	}

	data, err := config.Export(name, km)
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpExport, name, err))
	}
	_, err = c.out.Write(data)
	return err
}

func (c *cli) delete(name string) error {
	if c.store == nil {
		return errNoStore
	}
	if err := c.store.DeleteProfile(name); err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpProfileDelete, name, err))
	}
	c.logger.Info("deleted profile", "profile", name)
	return nil
}

// row prints cells padded to a fixed column width. The last cell is not
// padded.
func (c *cli) row(style lipgloss.Style, cells ...string) {
	var b strings.Builder
	for i, cell := range cells {
		if i == len(cells)-1 {
			b.WriteString(cell)
			break
		}
		cell = runewidth.Truncate(cell, columnWidth-1, "…")
		b.WriteString(runewidth.FillRight(cell, columnWidth))
	}
	fmt.Fprintln(c.out, style.Render(b.String()))
}

// Command rebindctl inspects and exports binding profiles without starting
// the TUI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/MarkMcCaskey/rebind/internal/config"
	"github.com/MarkMcCaskey/rebind/internal/errmsg"
	"github.com/MarkMcCaskey/rebind/internal/state"
)

const usage = `usage: rebindctl [-config file] [-profile name] <command> [args]

commands:
  list                 show every action and its buttons
  conflicts            show buttons bound to more than one action
  translate <button>…  show the action each button triggers
  profiles             list saved profiles
  export [profile]     print a profile as a config file
  delete <profile>     remove a saved profile
`

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "rebindctl"})

	if err := run(os.Args[1:], logger); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		logger.Error(err)
		os.Exit(1)
	}
}

func run(args []string, logger *log.Logger) error {
	fs := flag.NewFlagSet("rebindctl", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(fs.Output(), usage) }
	configPath := fs.String("config", "", "config file (default: search the usual locations)")
	profile := fs.String("profile", "", "profile name (default: from config)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	if *profile != "" {
		cfg.Profile = *profile
	}

	var store state.Interface
	if cfg.ShouldPersist() {
		mgr, err := openState(cfg.StateDB)
		if err != nil {
			return errors.New(errmsg.Format(errmsg.OpInitialize, err))
		}
		defer mgr.Close()
		store = mgr
	}

	c := &cli{cfg: cfg, store: store, out: os.Stdout, logger: logger}
	return c.dispatch(fs.Args())
}

func openState(path string) (*state.Manager, error) {
	if path != "" {
		return state.OpenPath(path)
	}
	return state.Open()
}
